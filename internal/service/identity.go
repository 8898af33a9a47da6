package service

import (
	"context"
	"strings"

	"levelcert/internal/domain"
	"levelcert/internal/repository"
	"levelcert/internal/repository/models"
	"levelcert/internal/validation"
)

// resolveUser re-derives the caller's identity from the supplied id and
// employee id on every request. Both values must jointly match one stored
// row; anything else resolves to 401. No session state exists.
func resolveUser(ctx context.Context, users repository.UserRepository, userID int64, employeeID string) (*models.User, error) {
	employeeID = strings.TrimSpace(employeeID)
	if userID <= 0 || !validation.IsEmployeeID(employeeID) {
		return nil, domain.NewUnauthorizedError(domain.MsgInvalidUser)
	}

	user, err := users.GetByCredentials(ctx, userID, employeeID)
	if err != nil {
		return nil, domain.NewInternalError(domain.MsgQueryFailed, err)
	}
	if user == nil {
		return nil, domain.NewUnauthorizedError(domain.MsgInvalidUser)
	}
	return user, nil
}
