package repository

import (
	"context"
	"fmt"

	"levelcert/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// NoteRepository persists free-form user notes.
type NoteRepository interface {
	Insert(ctx context.Context, userID int64, title, content string) (int64, error)
	// Update changes a note scoped to its owner and reports how many rows
	// were touched; 0 means the note is missing or owned by someone else.
	Update(ctx context.Context, id, userID int64, title, content string) (int64, error)
	List(ctx context.Context, userID int64) ([]models.Note, error)
	Delete(ctx context.Context, id, userID int64) error
	DeleteByUser(ctx context.Context, userID int64) error
}

const noteListLimit = 200

type sqlxNoteRepository struct {
	db DBTX
}

func NewSQLXNoteRepository(db *sqlx.DB) NoteRepository {
	return &sqlxNoteRepository{db: db}
}

func (r *sqlxNoteRepository) Insert(ctx context.Context, userID int64, title, content string) (int64, error) {
	exec := GetExecutor(ctx, r.db)
	query := `INSERT INTO user_notes (user_id, title, content) VALUES (?, ?, ?)`

	result, err := exec.ExecContext(ctx, query, userID, title, content)
	if err != nil {
		return 0, fmt.Errorf("failed to insert note: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get note id: %w", err)
	}
	return id, nil
}

func (r *sqlxNoteRepository) Update(ctx context.Context, id, userID int64, title, content string) (int64, error) {
	exec := GetExecutor(ctx, r.db)
	query := `UPDATE user_notes SET title = ?, content = ?, updated_at = CURRENT_TIMESTAMP
	          WHERE id = ? AND user_id = ?`

	result, err := exec.ExecContext(ctx, query, title, content, id, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to update note: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

func (r *sqlxNoteRepository) List(ctx context.Context, userID int64) ([]models.Note, error) {
	exec := GetExecutor(ctx, r.db)
	notes := []models.Note{}
	query := `SELECT
	            id,
	            title,
	            content,
	            datetime(created_at, '+8 hours') AS created_at,
	            datetime(updated_at, '+8 hours') AS updated_at
	          FROM user_notes
	          WHERE user_id = ?
	          ORDER BY updated_at DESC
	          LIMIT ?`

	if err := exec.SelectContext(ctx, &notes, query, userID, noteListLimit); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func (r *sqlxNoteRepository) Delete(ctx context.Context, id, userID int64) error {
	exec := GetExecutor(ctx, r.db)
	query := `DELETE FROM user_notes WHERE id = ? AND user_id = ?`

	if _, err := exec.ExecContext(ctx, query, id, userID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

func (r *sqlxNoteRepository) DeleteByUser(ctx context.Context, userID int64) error {
	exec := GetExecutor(ctx, r.db)
	query := `DELETE FROM user_notes WHERE user_id = ?`

	if _, err := exec.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete notes: %w", err)
	}
	return nil
}
