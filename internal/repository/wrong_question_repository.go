package repository

import (
	"context"
	"fmt"

	"levelcert/internal/repository/models"
	"levelcert/internal/util"

	"github.com/jmoiron/sqlx"
)

// WrongQuestionRepository persists the per-user wrong-question bank.
type WrongQuestionRepository interface {
	// Upsert inserts the question or, when (user_id, subject, question_text)
	// already exists, refreshes the answer fields and updated_at while
	// leaving created_at untouched.
	Upsert(ctx context.Context, userID int64, subject, questionText, optionsJSON, correctAnswer, userAnswer, source string) error
	// List returns the newest-updated questions, all subjects when subject
	// is empty.
	List(ctx context.Context, userID int64, subject string) ([]models.WrongQuestion, error)
	// Delete removes the question only when it belongs to userID.
	Delete(ctx context.Context, id, userID int64) error
	DeleteByUser(ctx context.Context, userID int64) error
}

const wrongQuestionListLimit = 200

type sqlxWrongQuestionRepository struct {
	db DBTX
}

func NewSQLXWrongQuestionRepository(db *sqlx.DB) WrongQuestionRepository {
	return &sqlxWrongQuestionRepository{db: db}
}

func (r *sqlxWrongQuestionRepository) Upsert(ctx context.Context, userID int64, subject, questionText, optionsJSON, correctAnswer, userAnswer, source string) error {
	exec := GetExecutor(ctx, r.db)
	query := `INSERT INTO user_wrong_questions (user_id, subject, question_text, options_json, correct_answer, user_answer, source)
	          VALUES (?, ?, ?, ?, ?, ?, ?)
	          ON CONFLICT(user_id, subject, question_text) DO UPDATE SET
	            options_json = excluded.options_json,
	            correct_answer = excluded.correct_answer,
	            user_answer = excluded.user_answer,
	            source = excluded.source,
	            updated_at = CURRENT_TIMESTAMP`

	// Empty answer fields are stored as NULL, not "".
	_, err := exec.ExecContext(ctx, query, userID, subject, questionText,
		optionsJSON,
		util.StringToNullString(correctAnswer),
		util.StringToNullString(userAnswer),
		util.StringToNullString(source),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert wrong question: %w", err)
	}
	return nil
}

func (r *sqlxWrongQuestionRepository) List(ctx context.Context, userID int64, subject string) ([]models.WrongQuestion, error) {
	exec := GetExecutor(ctx, r.db)
	items := []models.WrongQuestion{}

	query := `SELECT
	            id,
	            subject,
	            question_text,
	            options_json,
	            correct_answer,
	            user_answer,
	            source,
	            datetime(created_at, '+8 hours') AS created_at,
	            datetime(updated_at, '+8 hours') AS updated_at
	          FROM user_wrong_questions
	          WHERE user_id = ?`
	args := []interface{}{userID}
	if subject != "" {
		query += ` AND subject = ?`
		args = append(args, subject)
	}
	query += ` ORDER BY updated_at DESC LIMIT ?`
	args = append(args, wrongQuestionListLimit)

	if err := exec.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list wrong questions: %w", err)
	}
	return items, nil
}

func (r *sqlxWrongQuestionRepository) Delete(ctx context.Context, id, userID int64) error {
	exec := GetExecutor(ctx, r.db)
	query := `DELETE FROM user_wrong_questions WHERE id = ? AND user_id = ?`

	if _, err := exec.ExecContext(ctx, query, id, userID); err != nil {
		return fmt.Errorf("failed to delete wrong question: %w", err)
	}
	return nil
}

func (r *sqlxWrongQuestionRepository) DeleteByUser(ctx context.Context, userID int64) error {
	exec := GetExecutor(ctx, r.db)
	query := `DELETE FROM user_wrong_questions WHERE user_id = ?`

	if _, err := exec.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete wrong questions: %w", err)
	}
	return nil
}
