package service

import (
	"context"

	"levelcert/internal/repository/models"
)

// Hand-written mocks with overridable func fields, one per repository
// interface. Unset fields panic so a test only stubs what it exercises.

type mockUserRepository struct {
	GetByEmployeeIDFunc  func(ctx context.Context, employeeID string) (*models.User, error)
	GetByCredentialsFunc func(ctx context.Context, id int64, employeeID string) (*models.User, error)
	CreateFunc           func(ctx context.Context, employeeID, name string) (int64, error)
	GetAvatarFunc        func(ctx context.Context, userID int64) (*string, error)
	UpsertAvatarFunc     func(ctx context.Context, userID int64, avatar string) error
	DeleteFunc           func(ctx context.Context, id int64, employeeID string) error
	DeleteProfileFunc    func(ctx context.Context, userID int64) error
}

func (m *mockUserRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*models.User, error) {
	return m.GetByEmployeeIDFunc(ctx, employeeID)
}

func (m *mockUserRepository) GetByCredentials(ctx context.Context, id int64, employeeID string) (*models.User, error) {
	return m.GetByCredentialsFunc(ctx, id, employeeID)
}

func (m *mockUserRepository) Create(ctx context.Context, employeeID, name string) (int64, error) {
	return m.CreateFunc(ctx, employeeID, name)
}

func (m *mockUserRepository) GetAvatar(ctx context.Context, userID int64) (*string, error) {
	return m.GetAvatarFunc(ctx, userID)
}

func (m *mockUserRepository) UpsertAvatar(ctx context.Context, userID int64, avatar string) error {
	return m.UpsertAvatarFunc(ctx, userID, avatar)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64, employeeID string) error {
	return m.DeleteFunc(ctx, id, employeeID)
}

func (m *mockUserRepository) DeleteProfile(ctx context.Context, userID int64) error {
	return m.DeleteProfileFunc(ctx, userID)
}

type mockExamRepository struct {
	InsertRecordFunc             func(ctx context.Context, rec *models.ExamRecord) (int64, error)
	InsertWrongAnswerFunc        func(ctx context.Context, examRecordID int64, questionNumber int, questionText, userAnswer, correctAnswer string) error
	BestScoreFunc                func(ctx context.Context, userID int64, subject string) (float64, error)
	ListByUserFunc               func(ctx context.Context, userID int64) ([]models.ExamSummary, error)
	GetDetailFunc                func(ctx context.Context, examRecordID int64) (*models.ExamDetail, error)
	ListWrongAnswersFunc         func(ctx context.Context, examRecordID int64) ([]models.WrongAnswer, error)
	DeleteWrongAnswersByUserFunc func(ctx context.Context, userID int64) error
	DeleteRecordsByUserFunc      func(ctx context.Context, userID int64) error
}

func (m *mockExamRepository) InsertRecord(ctx context.Context, rec *models.ExamRecord) (int64, error) {
	return m.InsertRecordFunc(ctx, rec)
}

func (m *mockExamRepository) InsertWrongAnswer(ctx context.Context, examRecordID int64, questionNumber int, questionText, userAnswer, correctAnswer string) error {
	return m.InsertWrongAnswerFunc(ctx, examRecordID, questionNumber, questionText, userAnswer, correctAnswer)
}

func (m *mockExamRepository) BestScore(ctx context.Context, userID int64, subject string) (float64, error) {
	return m.BestScoreFunc(ctx, userID, subject)
}

func (m *mockExamRepository) ListByUser(ctx context.Context, userID int64) ([]models.ExamSummary, error) {
	return m.ListByUserFunc(ctx, userID)
}

func (m *mockExamRepository) GetDetail(ctx context.Context, examRecordID int64) (*models.ExamDetail, error) {
	return m.GetDetailFunc(ctx, examRecordID)
}

func (m *mockExamRepository) ListWrongAnswers(ctx context.Context, examRecordID int64) ([]models.WrongAnswer, error) {
	return m.ListWrongAnswersFunc(ctx, examRecordID)
}

func (m *mockExamRepository) DeleteWrongAnswersByUser(ctx context.Context, userID int64) error {
	return m.DeleteWrongAnswersByUserFunc(ctx, userID)
}

func (m *mockExamRepository) DeleteRecordsByUser(ctx context.Context, userID int64) error {
	return m.DeleteRecordsByUserFunc(ctx, userID)
}

type mockWrongQuestionRepository struct {
	UpsertFunc       func(ctx context.Context, userID int64, subject, questionText, optionsJSON, correctAnswer, userAnswer, source string) error
	ListFunc         func(ctx context.Context, userID int64, subject string) ([]models.WrongQuestion, error)
	DeleteFunc       func(ctx context.Context, id, userID int64) error
	DeleteByUserFunc func(ctx context.Context, userID int64) error
}

func (m *mockWrongQuestionRepository) Upsert(ctx context.Context, userID int64, subject, questionText, optionsJSON, correctAnswer, userAnswer, source string) error {
	return m.UpsertFunc(ctx, userID, subject, questionText, optionsJSON, correctAnswer, userAnswer, source)
}

func (m *mockWrongQuestionRepository) List(ctx context.Context, userID int64, subject string) ([]models.WrongQuestion, error) {
	return m.ListFunc(ctx, userID, subject)
}

func (m *mockWrongQuestionRepository) Delete(ctx context.Context, id, userID int64) error {
	return m.DeleteFunc(ctx, id, userID)
}

func (m *mockWrongQuestionRepository) DeleteByUser(ctx context.Context, userID int64) error {
	return m.DeleteByUserFunc(ctx, userID)
}

type mockNoteRepository struct {
	InsertFunc       func(ctx context.Context, userID int64, title, content string) (int64, error)
	UpdateFunc       func(ctx context.Context, id, userID int64, title, content string) (int64, error)
	ListFunc         func(ctx context.Context, userID int64) ([]models.Note, error)
	DeleteFunc       func(ctx context.Context, id, userID int64) error
	DeleteByUserFunc func(ctx context.Context, userID int64) error
}

func (m *mockNoteRepository) Insert(ctx context.Context, userID int64, title, content string) (int64, error) {
	return m.InsertFunc(ctx, userID, title, content)
}

func (m *mockNoteRepository) Update(ctx context.Context, id, userID int64, title, content string) (int64, error) {
	return m.UpdateFunc(ctx, id, userID, title, content)
}

func (m *mockNoteRepository) List(ctx context.Context, userID int64) ([]models.Note, error) {
	return m.ListFunc(ctx, userID)
}

func (m *mockNoteRepository) Delete(ctx context.Context, id, userID int64) error {
	return m.DeleteFunc(ctx, id, userID)
}

func (m *mockNoteRepository) DeleteByUser(ctx context.Context, userID int64) error {
	return m.DeleteByUserFunc(ctx, userID)
}

type mockStatsRepository struct {
	UserSubjectProgressFunc func(ctx context.Context, userID int64) ([]models.SubjectProgress, error)
	SubjectAggregateFunc    func(ctx context.Context, subject string, passScore float64) (*models.SubjectAggregate, error)
	CountUsersFunc          func(ctx context.Context) (int64, error)
	CountExamsFunc          func(ctx context.Context) (int64, error)
	PassRateFunc            func(ctx context.Context, passScore float64) (float64, error)
	SubjectBreakdownFunc    func(ctx context.Context) ([]models.SubjectStat, error)
}

func (m *mockStatsRepository) UserSubjectProgress(ctx context.Context, userID int64) ([]models.SubjectProgress, error) {
	return m.UserSubjectProgressFunc(ctx, userID)
}

func (m *mockStatsRepository) SubjectAggregate(ctx context.Context, subject string, passScore float64) (*models.SubjectAggregate, error) {
	return m.SubjectAggregateFunc(ctx, subject, passScore)
}

func (m *mockStatsRepository) CountUsers(ctx context.Context) (int64, error) {
	return m.CountUsersFunc(ctx)
}

func (m *mockStatsRepository) CountExams(ctx context.Context) (int64, error) {
	return m.CountExamsFunc(ctx)
}

func (m *mockStatsRepository) PassRate(ctx context.Context, passScore float64) (float64, error) {
	return m.PassRateFunc(ctx, passScore)
}

func (m *mockStatsRepository) SubjectBreakdown(ctx context.Context) ([]models.SubjectStat, error) {
	return m.SubjectBreakdownFunc(ctx)
}

// mockTransactionManager runs the callback directly, no transaction.
type mockTransactionManager struct {
	calls int
}

func (m *mockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}
