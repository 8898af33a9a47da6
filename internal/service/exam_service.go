package service

import (
	"context"

	"levelcert/internal/config"
	"levelcert/internal/domain"
	"levelcert/internal/dto"
	"levelcert/internal/logger"
	"levelcert/internal/repository"
	"levelcert/internal/repository/models"
	"levelcert/internal/util"
	"levelcert/internal/validation"

	"go.uber.org/zap"
)

// ExamService persists exam submissions and serves exam history.
type ExamService interface {
	SaveExam(ctx context.Context, req *dto.SaveExamRequest) (*dto.SaveExamResponse, error)
	ListUserExams(ctx context.Context, userID int64, employeeID string) ([]dto.ExamRecordItem, error)
	GetExamHistory(ctx context.Context, examRecordID int64) (*dto.ExamDetail, error)
}

type examService struct {
	users     repository.UserRepository
	exams     repository.ExamRepository
	txm       domain.TransactionManager
	validator *validation.Validator
	passScore float64
}

func NewExamService(
	users repository.UserRepository,
	exams repository.ExamRepository,
	txm domain.TransactionManager,
	cfg *config.Config,
) ExamService {
	return &examService{
		users:     users,
		exams:     exams,
		txm:       txm,
		validator: validation.NewValidator(),
		passScore: cfg.Exam.PassScore,
	}
}

// SaveExam inserts the exam record and its wrong answers atomically, then
// recomputes the user's best score for the subject.
func (s *examService) SaveExam(ctx context.Context, req *dto.SaveExamRequest) (*dto.SaveExamResponse, error) {
	if err := s.validator.ValidateSaveExam(req); err != nil {
		return nil, err
	}

	user, err := resolveUser(ctx, s.users, req.UserID, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	var examRecordID int64
	err = s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		examRecordID, err = s.exams.InsertRecord(ctx, &models.ExamRecord{
			UserID:         user.ID,
			Subject:        req.Subject,
			Score:          *req.Score,
			TotalQuestions: req.TotalQuestions,
			CorrectCount:   req.CorrectCount,
			TimeSpent:      req.TimeSpent,
		})
		if err != nil {
			return err
		}
		for _, wrong := range req.WrongAnswers {
			if err := s.exams.InsertWrongAnswer(ctx, examRecordID, wrong.QuestionNumber, wrong.QuestionText, wrong.UserAnswer, wrong.CorrectAnswer); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewInternalError(domain.MsgSaveFailed, err)
	}

	bestScore, err := s.exams.BestScore(ctx, user.ID, req.Subject)
	if err != nil {
		return nil, domain.NewInternalError(domain.MsgSaveFailed, err)
	}

	message := domain.MsgExamFailed
	if *req.Score >= s.passScore {
		message = domain.MsgExamPassed
	}

	logger.Get().Info("exam saved",
		zap.Int64("user_id", user.ID),
		zap.String("subject", req.Subject),
		zap.Float64("score", *req.Score),
		zap.Int("wrong_answers", len(req.WrongAnswers)),
	)

	return &dto.SaveExamResponse{
		Success:      true,
		ExamRecordID: examRecordID,
		BestScore:    bestScore,
		Message:      message,
	}, nil
}

func (s *examService) ListUserExams(ctx context.Context, userID int64, employeeID string) ([]dto.ExamRecordItem, error) {
	user, err := resolveUser(ctx, s.users, userID, employeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.exams.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, domain.NewInternalError(domain.MsgQueryFailed, err)
	}

	items := make([]dto.ExamRecordItem, 0, len(records))
	for _, rec := range records {
		items = append(items, dto.ExamRecordItem{
			ID:             rec.ID,
			Subject:        rec.Subject,
			Score:          rec.Score,
			TotalQuestions: rec.TotalQuestions,
			CorrectCount:   rec.CorrectCount,
			TimeSpent:      rec.TimeSpent,
			ExamDate:       rec.ExamDate,
			BestScore:      rec.BestScore,
		})
	}
	return items, nil
}

// GetExamHistory returns any exam record by id. The caller is deliberately
// not checked for ownership.
func (s *examService) GetExamHistory(ctx context.Context, examRecordID int64) (*dto.ExamDetail, error) {
	detail, err := s.exams.GetDetail(ctx, examRecordID)
	if err != nil {
		return nil, domain.NewInternalError(domain.MsgQueryFailed, err)
	}
	if detail == nil {
		return nil, domain.NewNotFoundError(domain.MsgExamNotFound)
	}

	answers, err := s.exams.ListWrongAnswers(ctx, examRecordID)
	if err != nil {
		return nil, domain.NewInternalError(domain.MsgQueryFailed, err)
	}

	wrongAnswers := make([]dto.ExamWrongAnswer, 0, len(answers))
	for _, wa := range answers {
		wrongAnswers = append(wrongAnswers, dto.ExamWrongAnswer{
			QuestionNumber: wa.QuestionNumber,
			QuestionText:   wa.QuestionText,
			UserAnswer:     util.NullStringValue(wa.UserAnswer),
			CorrectAnswer:  util.NullStringValue(wa.CorrectAnswer),
			CreatedAt:      wa.CreatedAt,
		})
	}

	return &dto.ExamDetail{
		ID:             detail.ID,
		UserID:         detail.UserID,
		Subject:        detail.Subject,
		Score:          detail.Score,
		TotalQuestions: detail.TotalQuestions,
		CorrectCount:   detail.CorrectCount,
		TimeSpent:      detail.TimeSpent,
		ExamDate:       detail.ExamDate,
		Name:           detail.Name,
		EmployeeID:     detail.EmployeeID,
		WrongAnswers:   wrongAnswers,
	}, nil
}
