package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"levelcert/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// UserRepository defines the interface for user and profile data operations.
type UserRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (*models.User, error)
	// GetByCredentials looks a user up by the (id, employee_id) conjunction.
	// Both values must belong to the same row; this is the authorization
	// check every authenticated handler relies on.
	GetByCredentials(ctx context.Context, id int64, employeeID string) (*models.User, error)
	Create(ctx context.Context, employeeID, name string) (int64, error)
	GetAvatar(ctx context.Context, userID int64) (*string, error)
	UpsertAvatar(ctx context.Context, userID int64, avatar string) error
	Delete(ctx context.Context, id int64, employeeID string) error
	DeleteProfile(ctx context.Context, userID int64) error
}

// sqlxUserRepository implements UserRepository using sqlx.
type sqlxUserRepository struct {
	db DBTX
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) UserRepository {
	return &sqlxUserRepository{db: db}
}

func (r *sqlxUserRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*models.User, error) {
	exec := GetExecutor(ctx, r.db)
	var user models.User
	query := `SELECT id, employee_id, name FROM users WHERE employee_id = ?`

	err := exec.GetContext(ctx, &user, query, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found, services decide what that means
		}
		return nil, fmt.Errorf("failed to get user by employee_id: %w", err)
	}
	return &user, nil
}

func (r *sqlxUserRepository) GetByCredentials(ctx context.Context, id int64, employeeID string) (*models.User, error) {
	exec := GetExecutor(ctx, r.db)
	var user models.User
	query := `SELECT id, employee_id, name FROM users WHERE id = ? AND employee_id = ?`

	err := exec.GetContext(ctx, &user, query, id, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by credentials: %w", err)
	}
	return &user, nil
}

func (r *sqlxUserRepository) Create(ctx context.Context, employeeID, name string) (int64, error) {
	exec := GetExecutor(ctx, r.db)
	query := `INSERT INTO users (employee_id, name) VALUES (?, ?)`

	result, err := exec.ExecContext(ctx, query, employeeID, name)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get created user id: %w", err)
	}
	return id, nil
}

func (r *sqlxUserRepository) GetAvatar(ctx context.Context, userID int64) (*string, error) {
	exec := GetExecutor(ctx, r.db)
	var avatar sql.NullString
	query := `SELECT avatar FROM user_profiles WHERE user_id = ?`

	err := exec.GetContext(ctx, &avatar, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // No profile row yet
		}
		return nil, fmt.Errorf("failed to get avatar: %w", err)
	}
	if !avatar.Valid {
		return nil, nil
	}
	return &avatar.String, nil
}

func (r *sqlxUserRepository) UpsertAvatar(ctx context.Context, userID int64, avatar string) error {
	exec := GetExecutor(ctx, r.db)
	query := `INSERT INTO user_profiles (user_id, avatar) VALUES (?, ?)
	          ON CONFLICT(user_id) DO UPDATE SET avatar = excluded.avatar, updated_at = CURRENT_TIMESTAMP`

	if _, err := exec.ExecContext(ctx, query, userID, avatar); err != nil {
		return fmt.Errorf("failed to upsert avatar: %w", err)
	}
	return nil
}

func (r *sqlxUserRepository) Delete(ctx context.Context, id int64, employeeID string) error {
	exec := GetExecutor(ctx, r.db)
	query := `DELETE FROM users WHERE id = ? AND employee_id = ?`

	if _, err := exec.ExecContext(ctx, query, id, employeeID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *sqlxUserRepository) DeleteProfile(ctx context.Context, userID int64) error {
	exec := GetExecutor(ctx, r.db)
	query := `DELETE FROM user_profiles WHERE user_id = ?`

	if _, err := exec.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete user profile: %w", err)
	}
	return nil
}
