package handler

import (
	"levelcert/internal/dto"
	"levelcert/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler serves aggregate statistics.
type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats picks one of three modes by which query parameters are present:
// userId → per-user, subject → per-subject, neither → global.
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	userID := c.Query("userId")
	subject := c.Query("subject")

	var (
		stats any
		err   error
	)
	switch {
	case userID != "":
		stats, err = h.statsService.UserStats(c.Context(), userID)
	case subject != "":
		stats, err = h.statsService.SubjectStats(c.Context(), subject)
	default:
		stats, err = h.statsService.GlobalStats(c.Context())
	}
	if err != nil {
		return err
	}

	return c.JSON(dto.StatsResponse{Success: true, Stats: stats})
}
