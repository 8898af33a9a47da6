package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"levelcert/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// ExamRepository defines the interface for exam record persistence.
type ExamRepository interface {
	InsertRecord(ctx context.Context, rec *models.ExamRecord) (int64, error)
	InsertWrongAnswer(ctx context.Context, examRecordID int64, questionNumber int, questionText, userAnswer, correctAnswer string) error
	// BestScore returns the user's highest score for the subject, 0 when the
	// user has no records there.
	BestScore(ctx context.Context, userID int64, subject string) (float64, error)
	ListByUser(ctx context.Context, userID int64) ([]models.ExamSummary, error)
	GetDetail(ctx context.Context, examRecordID int64) (*models.ExamDetail, error)
	ListWrongAnswers(ctx context.Context, examRecordID int64) ([]models.WrongAnswer, error)
	DeleteWrongAnswersByUser(ctx context.Context, userID int64) error
	DeleteRecordsByUser(ctx context.Context, userID int64) error
}

const examListLimit = 50

type sqlxExamRepository struct {
	db DBTX
}

func NewSQLXExamRepository(db *sqlx.DB) ExamRepository {
	return &sqlxExamRepository{db: db}
}

func (r *sqlxExamRepository) InsertRecord(ctx context.Context, rec *models.ExamRecord) (int64, error) {
	exec := GetExecutor(ctx, r.db)
	query := `INSERT INTO exam_records (user_id, subject, score, total_questions, correct_count, time_spent)
	          VALUES (:user_id, :subject, :score, :total_questions, :correct_count, :time_spent)`

	result, err := exec.NamedExecContext(ctx, query, rec)
	if err != nil {
		return 0, fmt.Errorf("failed to insert exam record: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get exam record id: %w", err)
	}
	return id, nil
}

func (r *sqlxExamRepository) InsertWrongAnswer(ctx context.Context, examRecordID int64, questionNumber int, questionText, userAnswer, correctAnswer string) error {
	exec := GetExecutor(ctx, r.db)
	query := `INSERT INTO wrong_answers (exam_record_id, question_number, question_text, user_answer, correct_answer)
	          VALUES (?, ?, ?, ?, ?)`

	if _, err := exec.ExecContext(ctx, query, examRecordID, questionNumber, questionText, userAnswer, correctAnswer); err != nil {
		return fmt.Errorf("failed to insert wrong answer: %w", err)
	}
	return nil
}

func (r *sqlxExamRepository) BestScore(ctx context.Context, userID int64, subject string) (float64, error) {
	exec := GetExecutor(ctx, r.db)
	var best sql.NullFloat64
	query := `SELECT MAX(score) FROM exam_records WHERE user_id = ? AND subject = ?`

	if err := exec.GetContext(ctx, &best, query, userID, subject); err != nil {
		return 0, fmt.Errorf("failed to get best score: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return best.Float64, nil
}

func (r *sqlxExamRepository) ListByUser(ctx context.Context, userID int64) ([]models.ExamSummary, error) {
	exec := GetExecutor(ctx, r.db)
	records := []models.ExamSummary{}
	query := `SELECT
	            er.id,
	            er.subject,
	            er.score,
	            er.total_questions,
	            er.correct_count,
	            er.time_spent,
	            datetime(er.exam_date, '+8 hours') AS exam_date,
	            (SELECT MAX(score) FROM exam_records WHERE user_id = ? AND subject = er.subject) AS best_score
	          FROM exam_records er
	          WHERE er.user_id = ?
	          ORDER BY er.exam_date DESC
	          LIMIT ?`

	if err := exec.SelectContext(ctx, &records, query, userID, userID, examListLimit); err != nil {
		return nil, fmt.Errorf("failed to list exam records: %w", err)
	}
	return records, nil
}

func (r *sqlxExamRepository) GetDetail(ctx context.Context, examRecordID int64) (*models.ExamDetail, error) {
	exec := GetExecutor(ctx, r.db)
	var detail models.ExamDetail
	query := `SELECT
	            er.id,
	            er.user_id,
	            er.subject,
	            er.score,
	            er.total_questions,
	            er.correct_count,
	            er.time_spent,
	            datetime(er.exam_date, '+8 hours') AS exam_date,
	            u.name,
	            u.employee_id
	          FROM exam_records er
	          JOIN users u ON er.user_id = u.id
	          WHERE er.id = ?`

	err := exec.GetContext(ctx, &detail, query, examRecordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exam detail: %w", err)
	}
	return &detail, nil
}

func (r *sqlxExamRepository) ListWrongAnswers(ctx context.Context, examRecordID int64) ([]models.WrongAnswer, error) {
	exec := GetExecutor(ctx, r.db)
	answers := []models.WrongAnswer{}
	query := `SELECT
	            question_number,
	            question_text,
	            user_answer,
	            correct_answer,
	            datetime(created_at, '+8 hours') AS created_at
	          FROM wrong_answers
	          WHERE exam_record_id = ?
	          ORDER BY question_number`

	if err := exec.SelectContext(ctx, &answers, query, examRecordID); err != nil {
		return nil, fmt.Errorf("failed to list wrong answers: %w", err)
	}
	return answers, nil
}

func (r *sqlxExamRepository) DeleteWrongAnswersByUser(ctx context.Context, userID int64) error {
	exec := GetExecutor(ctx, r.db)
	query := `DELETE FROM wrong_answers WHERE exam_record_id IN (SELECT id FROM exam_records WHERE user_id = ?)`

	if _, err := exec.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete wrong answers: %w", err)
	}
	return nil
}

func (r *sqlxExamRepository) DeleteRecordsByUser(ctx context.Context, userID int64) error {
	exec := GetExecutor(ctx, r.db)
	query := `DELETE FROM exam_records WHERE user_id = ?`

	if _, err := exec.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete exam records: %w", err)
	}
	return nil
}
