package handler

import (
	"time"

	"levelcert/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// Health is the liveness probe. It never touches storage.
func Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UnixMilli(),
	})
}
