package repository

import (
	"context"
	"database/sql"
	"fmt"

	"levelcert/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// StatsRepository serves the read-only aggregate queries behind /api/stats.
type StatsRepository interface {
	UserSubjectProgress(ctx context.Context, userID int64) ([]models.SubjectProgress, error)
	SubjectAggregate(ctx context.Context, subject string, passScore float64) (*models.SubjectAggregate, error)
	CountUsers(ctx context.Context) (int64, error)
	CountExams(ctx context.Context) (int64, error)
	// PassRate is the share of exams at or above passScore, scaled to 0-100.
	PassRate(ctx context.Context, passScore float64) (float64, error)
	SubjectBreakdown(ctx context.Context) ([]models.SubjectStat, error)
}

type sqlxStatsRepository struct {
	db DBTX
}

func NewSQLXStatsRepository(db *sqlx.DB) StatsRepository {
	return &sqlxStatsRepository{db: db}
}

func (r *sqlxStatsRepository) UserSubjectProgress(ctx context.Context, userID int64) ([]models.SubjectProgress, error) {
	exec := GetExecutor(ctx, r.db)
	stats := []models.SubjectProgress{}
	query := `SELECT
	            subject,
	            COUNT(*) AS exam_count,
	            AVG(score) AS avg_score,
	            MAX(score) AS best_score,
	            datetime(MAX(exam_date), '+8 hours') AS last_exam_date
	          FROM exam_records
	          WHERE user_id = ?
	          GROUP BY subject`

	if err := exec.SelectContext(ctx, &stats, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get user subject progress: %w", err)
	}
	return stats, nil
}

func (r *sqlxStatsRepository) SubjectAggregate(ctx context.Context, subject string, passScore float64) (*models.SubjectAggregate, error) {
	exec := GetExecutor(ctx, r.db)
	var agg models.SubjectAggregate
	query := `SELECT
	            COUNT(*) AS total_exams,
	            AVG(score) AS avg_score,
	            COUNT(CASE WHEN score >= ? THEN 1 END) AS pass_count,
	            COUNT(CASE WHEN score < ? THEN 1 END) AS fail_count
	          FROM exam_records
	          WHERE subject = ?`

	if err := exec.GetContext(ctx, &agg, query, passScore, passScore, subject); err != nil {
		return nil, fmt.Errorf("failed to get subject aggregate: %w", err)
	}
	return &agg, nil
}

func (r *sqlxStatsRepository) CountUsers(ctx context.Context) (int64, error) {
	exec := GetExecutor(ctx, r.db)
	var count int64
	if err := exec.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *sqlxStatsRepository) CountExams(ctx context.Context) (int64, error) {
	exec := GetExecutor(ctx, r.db)
	var count int64
	if err := exec.GetContext(ctx, &count, `SELECT COUNT(*) FROM exam_records`); err != nil {
		return 0, fmt.Errorf("failed to count exams: %w", err)
	}
	return count, nil
}

func (r *sqlxStatsRepository) PassRate(ctx context.Context, passScore float64) (float64, error) {
	exec := GetExecutor(ctx, r.db)
	var rate sql.NullFloat64
	query := `SELECT AVG(CASE WHEN score >= ? THEN 100.0 ELSE 0 END) FROM exam_records`

	if err := exec.GetContext(ctx, &rate, query, passScore); err != nil {
		return 0, fmt.Errorf("failed to get pass rate: %w", err)
	}
	if !rate.Valid {
		return 0, nil
	}
	return rate.Float64, nil
}

func (r *sqlxStatsRepository) SubjectBreakdown(ctx context.Context) ([]models.SubjectStat, error) {
	exec := GetExecutor(ctx, r.db)
	stats := []models.SubjectStat{}
	query := `SELECT subject, total_exams, avg_score, best_score, pass_count FROM subject_stats`

	if err := exec.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to get subject breakdown: %w", err)
	}
	return stats, nil
}
