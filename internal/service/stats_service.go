package service

import (
	"context"
	"strconv"

	"levelcert/internal/config"
	"levelcert/internal/domain"
	"levelcert/internal/dto"
	"levelcert/internal/repository"

	"golang.org/x/sync/errgroup"
)

// StatsService serves the three mutually exclusive /api/stats modes.
type StatsService interface {
	UserStats(ctx context.Context, userID string) ([]dto.UserSubjectStat, error)
	SubjectStats(ctx context.Context, subject string) (*dto.SubjectStatsPayload, error)
	GlobalStats(ctx context.Context) (*dto.GlobalStatsPayload, error)
}

type statsService struct {
	stats     repository.StatsRepository
	passScore float64
}

func NewStatsService(stats repository.StatsRepository, cfg *config.Config) StatsService {
	return &statsService{
		stats:     stats,
		passScore: cfg.Exam.PassScore,
	}
}

func (s *statsService) UserStats(ctx context.Context, userID string) ([]dto.UserSubjectStat, error) {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		// A non-numeric id matches no rows, same as the old binding did.
		return []dto.UserSubjectStat{}, nil
	}

	rows, err := s.stats.UserSubjectProgress(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError(domain.MsgStatsFailed, err)
	}

	items := make([]dto.UserSubjectStat, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.UserSubjectStat{
			Subject:      row.Subject,
			ExamCount:    row.ExamCount,
			AvgScore:     row.AvgScore,
			BestScore:    row.BestScore,
			LastExamDate: row.LastExamDate,
		})
	}
	return items, nil
}

func (s *statsService) SubjectStats(ctx context.Context, subject string) (*dto.SubjectStatsPayload, error) {
	agg, err := s.stats.SubjectAggregate(ctx, subject, s.passScore)
	if err != nil {
		return nil, domain.NewInternalError(domain.MsgStatsFailed, err)
	}

	return &dto.SubjectStatsPayload{
		TotalExams: agg.TotalExams,
		AvgScore:   agg.AvgScore.Float64,
		PassCount:  agg.PassCount,
		FailCount:  agg.FailCount,
	}, nil
}

// GlobalStats fans the independent aggregates out concurrently.
func (s *statsService) GlobalStats(ctx context.Context) (*dto.GlobalStatsPayload, error) {
	var (
		totalUsers int64
		totalExams int64
		passRate   float64
		breakdown  []dto.SubjectBreakdownItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalUsers, err = s.stats.CountUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalExams, err = s.stats.CountExams(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		passRate, err = s.stats.PassRate(gctx, s.passScore)
		return err
	})
	g.Go(func() error {
		rows, err := s.stats.SubjectBreakdown(gctx)
		if err != nil {
			return err
		}
		breakdown = make([]dto.SubjectBreakdownItem, 0, len(rows))
		for _, row := range rows {
			breakdown = append(breakdown, dto.SubjectBreakdownItem{
				Subject:    row.Subject,
				TotalExams: row.TotalExams,
				AvgScore:   row.AvgScore,
				BestScore:  row.BestScore,
				PassCount:  row.PassCount,
			})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError(domain.MsgStatsFailed, err)
	}

	return &dto.GlobalStatsPayload{
		TotalUsers: totalUsers,
		TotalExams: totalExams,
		PassRate:   passRate,
		BySubject:  breakdown,
	}, nil
}
