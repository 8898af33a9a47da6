package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"levelcert/internal/dto"
	"levelcert/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// newTestApp builds a fiber app with the production error handler so the
// tests observe real status codes and error bodies.
func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	return body.Error
}

// Service mocks with overridable func fields.

type mockAuthService struct {
	LoginFunc         func(ctx context.Context, req *dto.LoginRequest) (*dto.UserPayload, error)
	RegisterFunc      func(ctx context.Context, req *dto.RegisterRequest) (*dto.UserPayload, error)
	DeleteAccountFunc func(ctx context.Context, req *dto.DeleteAccountRequest) error
}

func (m *mockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserPayload, error) {
	return m.LoginFunc(ctx, req)
}

func (m *mockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserPayload, error) {
	return m.RegisterFunc(ctx, req)
}

func (m *mockAuthService) DeleteAccount(ctx context.Context, req *dto.DeleteAccountRequest) error {
	return m.DeleteAccountFunc(ctx, req)
}

type mockExamService struct {
	SaveExamFunc       func(ctx context.Context, req *dto.SaveExamRequest) (*dto.SaveExamResponse, error)
	ListUserExamsFunc  func(ctx context.Context, userID int64, employeeID string) ([]dto.ExamRecordItem, error)
	GetExamHistoryFunc func(ctx context.Context, examRecordID int64) (*dto.ExamDetail, error)
}

func (m *mockExamService) SaveExam(ctx context.Context, req *dto.SaveExamRequest) (*dto.SaveExamResponse, error) {
	return m.SaveExamFunc(ctx, req)
}

func (m *mockExamService) ListUserExams(ctx context.Context, userID int64, employeeID string) ([]dto.ExamRecordItem, error) {
	return m.ListUserExamsFunc(ctx, userID, employeeID)
}

func (m *mockExamService) GetExamHistory(ctx context.Context, examRecordID int64) (*dto.ExamDetail, error) {
	return m.GetExamHistoryFunc(ctx, examRecordID)
}

type mockReviewService struct {
	ListWrongQuestionsFunc  func(ctx context.Context, userID int64, employeeID, subject string) ([]dto.WrongQuestionItem, error)
	UpsertWrongQuestionFunc func(ctx context.Context, req *dto.UpsertWrongQuestionRequest) error
	DeleteWrongQuestionFunc func(ctx context.Context, req *dto.DeleteWrongQuestionRequest) error
	ListNotesFunc           func(ctx context.Context, userID int64, employeeID string) ([]dto.NoteItem, error)
	UpsertNoteFunc          func(ctx context.Context, req *dto.UpsertNoteRequest) (int64, error)
	DeleteNoteFunc          func(ctx context.Context, req *dto.DeleteNoteRequest) error
}

func (m *mockReviewService) ListWrongQuestions(ctx context.Context, userID int64, employeeID, subject string) ([]dto.WrongQuestionItem, error) {
	return m.ListWrongQuestionsFunc(ctx, userID, employeeID, subject)
}

func (m *mockReviewService) UpsertWrongQuestion(ctx context.Context, req *dto.UpsertWrongQuestionRequest) error {
	return m.UpsertWrongQuestionFunc(ctx, req)
}

func (m *mockReviewService) DeleteWrongQuestion(ctx context.Context, req *dto.DeleteWrongQuestionRequest) error {
	return m.DeleteWrongQuestionFunc(ctx, req)
}

func (m *mockReviewService) ListNotes(ctx context.Context, userID int64, employeeID string) ([]dto.NoteItem, error) {
	return m.ListNotesFunc(ctx, userID, employeeID)
}

func (m *mockReviewService) UpsertNote(ctx context.Context, req *dto.UpsertNoteRequest) (int64, error) {
	return m.UpsertNoteFunc(ctx, req)
}

func (m *mockReviewService) DeleteNote(ctx context.Context, req *dto.DeleteNoteRequest) error {
	return m.DeleteNoteFunc(ctx, req)
}

type mockStatsService struct {
	UserStatsFunc    func(ctx context.Context, userID string) ([]dto.UserSubjectStat, error)
	SubjectStatsFunc func(ctx context.Context, subject string) (*dto.SubjectStatsPayload, error)
	GlobalStatsFunc  func(ctx context.Context) (*dto.GlobalStatsPayload, error)
}

func (m *mockStatsService) UserStats(ctx context.Context, userID string) ([]dto.UserSubjectStat, error) {
	return m.UserStatsFunc(ctx, userID)
}

func (m *mockStatsService) SubjectStats(ctx context.Context, subject string) (*dto.SubjectStatsPayload, error) {
	return m.SubjectStatsFunc(ctx, subject)
}

func (m *mockStatsService) GlobalStats(ctx context.Context) (*dto.GlobalStatsPayload, error) {
	return m.GlobalStatsFunc(ctx)
}
