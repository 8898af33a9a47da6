package service

import (
	"context"
	"encoding/json"
	"strings"

	"levelcert/internal/domain"
	"levelcert/internal/dto"
	"levelcert/internal/repository"
	"levelcert/internal/util"
)

// AllSubjects is the sentinel a client sends to list every subject.
const AllSubjects = "ALL"

// ReviewService owns the wrong-question bank and user notes.
type ReviewService interface {
	ListWrongQuestions(ctx context.Context, userID int64, employeeID, subject string) ([]dto.WrongQuestionItem, error)
	UpsertWrongQuestion(ctx context.Context, req *dto.UpsertWrongQuestionRequest) error
	DeleteWrongQuestion(ctx context.Context, req *dto.DeleteWrongQuestionRequest) error
	ListNotes(ctx context.Context, userID int64, employeeID string) ([]dto.NoteItem, error)
	UpsertNote(ctx context.Context, req *dto.UpsertNoteRequest) (int64, error)
	DeleteNote(ctx context.Context, req *dto.DeleteNoteRequest) error
}

type reviewService struct {
	users          repository.UserRepository
	wrongQuestions repository.WrongQuestionRepository
	notes          repository.NoteRepository
}

func NewReviewService(
	users repository.UserRepository,
	wrongQuestions repository.WrongQuestionRepository,
	notes repository.NoteRepository,
) ReviewService {
	return &reviewService{
		users:          users,
		wrongQuestions: wrongQuestions,
		notes:          notes,
	}
}

func (s *reviewService) ListWrongQuestions(ctx context.Context, userID int64, employeeID, subject string) ([]dto.WrongQuestionItem, error) {
	user, err := resolveUser(ctx, s.users, userID, employeeID)
	if err != nil {
		return nil, err
	}

	filter := subject
	if filter == AllSubjects {
		filter = ""
	}

	rows, err := s.wrongQuestions.List(ctx, user.ID, filter)
	if err != nil {
		return nil, domain.NewInternalError(domain.MsgQueryFailed, err)
	}

	items := make([]dto.WrongQuestionItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.WrongQuestionItem{
			ID:            row.ID,
			Subject:       row.Subject,
			QuestionText:  row.QuestionText,
			Options:       parseOptions(row.OptionsJSON.String),
			CorrectAnswer: util.NullStringValue(row.CorrectAnswer),
			UserAnswer:    util.NullStringValue(row.UserAnswer),
			Source:        util.NullStringValue(row.Source),
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		})
	}
	return items, nil
}

func (s *reviewService) UpsertWrongQuestion(ctx context.Context, req *dto.UpsertWrongQuestionRequest) error {
	user, err := resolveUser(ctx, s.users, req.UserID, req.EmployeeID)
	if err != nil {
		return err
	}

	subject := strings.TrimSpace(req.Subject)
	questionText := strings.TrimSpace(req.QuestionText)
	if subject == "" || questionText == "" {
		return domain.NewInvalidInputError(domain.MsgMissingParams)
	}

	err = s.wrongQuestions.Upsert(ctx, user.ID,
		subject,
		questionText,
		normalizeOptions(req.Options),
		strings.TrimSpace(req.CorrectAnswer),
		strings.TrimSpace(req.UserAnswer),
		strings.TrimSpace(req.Source),
	)
	if err != nil {
		return domain.NewInternalError(domain.MsgSaveFailed, err)
	}
	return nil
}

func (s *reviewService) DeleteWrongQuestion(ctx context.Context, req *dto.DeleteWrongQuestionRequest) error {
	user, err := resolveUser(ctx, s.users, req.UserID, req.EmployeeID)
	if err != nil {
		return err
	}
	if req.WrongID == 0 {
		return domain.NewInvalidInputError(domain.MsgMissingWrongID)
	}

	// Ownership lives in the WHERE clause; deleting someone else's row is
	// a silent no-op.
	if err := s.wrongQuestions.Delete(ctx, req.WrongID, user.ID); err != nil {
		return domain.NewInternalError(domain.MsgDeleteFailed, err)
	}
	return nil
}

func (s *reviewService) ListNotes(ctx context.Context, userID int64, employeeID string) ([]dto.NoteItem, error) {
	user, err := resolveUser(ctx, s.users, userID, employeeID)
	if err != nil {
		return nil, err
	}

	rows, err := s.notes.List(ctx, user.ID)
	if err != nil {
		return nil, domain.NewInternalError(domain.MsgQueryFailed, err)
	}

	items := make([]dto.NoteItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.NoteItem{
			ID:        row.ID,
			Title:     row.Title,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return items, nil
}

func (s *reviewService) UpsertNote(ctx context.Context, req *dto.UpsertNoteRequest) (int64, error) {
	user, err := resolveUser(ctx, s.users, req.UserID, req.EmployeeID)
	if err != nil {
		return 0, err
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return 0, domain.NewInvalidInputError(domain.MsgNoteEmpty)
	}

	if req.NoteID != 0 {
		rows, err := s.notes.Update(ctx, req.NoteID, user.ID, title, content)
		if err != nil {
			return 0, domain.NewInternalError(domain.MsgSaveFailed, err)
		}
		if rows == 0 {
			return 0, domain.NewNotFoundError(domain.MsgNoteNotFound)
		}
		return req.NoteID, nil
	}

	id, err := s.notes.Insert(ctx, user.ID, title, content)
	if err != nil {
		return 0, domain.NewInternalError(domain.MsgSaveFailed, err)
	}
	return id, nil
}

func (s *reviewService) DeleteNote(ctx context.Context, req *dto.DeleteNoteRequest) error {
	user, err := resolveUser(ctx, s.users, req.UserID, req.EmployeeID)
	if err != nil {
		return err
	}
	if req.NoteID == 0 {
		return domain.NewInvalidInputError(domain.MsgMissingNoteID)
	}

	if err := s.notes.Delete(ctx, req.NoteID, user.ID); err != nil {
		return domain.NewInternalError(domain.MsgDeleteFailed, err)
	}
	return nil
}

// normalizeOptions keeps only JSON arrays; anything else is stored as [].
func normalizeOptions(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "[]"
	}
	var opts []any
	if err := json.Unmarshal(raw, &opts); err != nil || opts == nil {
		return "[]"
	}
	b, err := json.Marshal(opts)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// parseOptions turns the stored option JSON back into a list, empty on
// NULL or garbage.
func parseOptions(stored string) []any {
	if stored == "" {
		return []any{}
	}
	var opts []any
	if err := json.Unmarshal([]byte(stored), &opts); err != nil || opts == nil {
		return []any{}
	}
	return opts
}
