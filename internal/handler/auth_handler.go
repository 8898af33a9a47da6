package handler

import (
	"levelcert/internal/domain"
	"levelcert/internal/dto"
	"levelcert/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles login, registration and account deletion.
type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login resolves an existing account by employee id and exact name match.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError(domain.MsgMissingParams)
	}

	user, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{Success: true, User: *user})
}

// Register creates a new account, enforcing employee-id uniqueness.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError(domain.MsgMissingParams)
	}

	user, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{Success: true, User: *user})
}

// DeleteAccount removes the account and all data it owns.
func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	var req dto.DeleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError(domain.MsgMissingParams)
	}

	if err := h.authService.DeleteAccount(c.Context(), &req); err != nil {
		return err
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}
