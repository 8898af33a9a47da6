package service

import (
	"context"
	"strings"

	"levelcert/internal/domain"
	"levelcert/internal/dto"
	"levelcert/internal/logger"
	"levelcert/internal/repository"
	"levelcert/internal/validation"

	"go.uber.org/zap"
)

// AuthService owns login, registration and account deletion.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserPayload, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserPayload, error)
	DeleteAccount(ctx context.Context, req *dto.DeleteAccountRequest) error
}

type authService struct {
	users          repository.UserRepository
	exams          repository.ExamRepository
	wrongQuestions repository.WrongQuestionRepository
	notes          repository.NoteRepository
	txm            domain.TransactionManager
	validator      *validation.Validator
}

func NewAuthService(
	users repository.UserRepository,
	exams repository.ExamRepository,
	wrongQuestions repository.WrongQuestionRepository,
	notes repository.NoteRepository,
	txm domain.TransactionManager,
) AuthService {
	return &authService{
		users:          users,
		exams:          exams,
		wrongQuestions: wrongQuestions,
		notes:          notes,
		txm:            txm,
		validator:      validation.NewValidator(),
	}
}

// Login requires a pre-existing account whose stored name exactly matches
// the submitted one.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserPayload, error) {
	employeeID := strings.TrimSpace(req.EmployeeID)
	name := strings.TrimSpace(req.Name)

	if err := s.validator.ValidateCredentials(employeeID, name); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, domain.NewInternalError(domain.MsgLoginFailed, err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(domain.MsgAccountNotFound)
	}
	if strings.TrimSpace(user.Name) != name {
		return nil, domain.NewForbiddenError(domain.MsgNameMismatch)
	}

	avatar, err := s.users.GetAvatar(ctx, user.ID)
	if err != nil {
		return nil, domain.NewInternalError(domain.MsgLoginFailed, err)
	}

	logger.Get().Info("user logged in", zap.Int64("user_id", user.ID))

	return &dto.UserPayload{
		ID:         user.ID,
		EmployeeID: user.EmployeeID,
		Name:       user.Name,
		Avatar:     avatar,
	}, nil
}

// Register creates the account, rejecting duplicate employee ids, and
// stores the optional avatar via profile upsert.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserPayload, error) {
	employeeID := strings.TrimSpace(req.EmployeeID)
	name := strings.TrimSpace(req.Name)
	avatar := strings.TrimSpace(req.Avatar)

	if err := s.validator.ValidateCredentials(employeeID, name); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, domain.NewInternalError(domain.MsgRegisterFailed, err)
	}
	if existing != nil {
		return nil, domain.NewConflictError(domain.MsgAccountExists)
	}

	id, err := s.users.Create(ctx, employeeID, name)
	if err != nil {
		return nil, domain.NewInternalError(domain.MsgRegisterFailed, err)
	}

	if avatar != "" {
		if err := s.users.UpsertAvatar(ctx, id, avatar); err != nil {
			return nil, domain.NewInternalError(domain.MsgRegisterFailed, err)
		}
	}

	stored, err := s.users.GetAvatar(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError(domain.MsgRegisterFailed, err)
	}

	logger.Get().Info("user registered", zap.Int64("user_id", id))

	return &dto.UserPayload{
		ID:         id,
		EmployeeID: employeeID,
		Name:       name,
		Avatar:     stored,
	}, nil
}

// DeleteAccount removes the user and everything they own inside one
// transaction, child tables first so the foreign keys hold.
func (s *authService) DeleteAccount(ctx context.Context, req *dto.DeleteAccountRequest) error {
	if err := s.validator.ValidateDeleteAccount(req); err != nil {
		return err
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	name := strings.TrimSpace(req.Name)

	user, err := s.users.GetByCredentials(ctx, req.UserID, employeeID)
	if err != nil {
		return domain.NewInternalError(domain.MsgDeleteFailed, err)
	}
	if user == nil {
		return domain.NewNotFoundError(domain.MsgUserNotFound)
	}
	if strings.TrimSpace(user.Name) != name {
		return domain.NewForbiddenError(domain.MsgUserInfoMismatch)
	}

	err = s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.exams.DeleteWrongAnswersByUser(ctx, user.ID); err != nil {
			return err
		}
		if err := s.exams.DeleteRecordsByUser(ctx, user.ID); err != nil {
			return err
		}
		if err := s.wrongQuestions.DeleteByUser(ctx, user.ID); err != nil {
			return err
		}
		if err := s.notes.DeleteByUser(ctx, user.ID); err != nil {
			return err
		}
		if err := s.users.DeleteProfile(ctx, user.ID); err != nil {
			return err
		}
		return s.users.Delete(ctx, user.ID, employeeID)
	})
	if err != nil {
		return domain.NewInternalError(domain.MsgDeleteFailed, err)
	}

	logger.Get().Info("account deleted", zap.Int64("user_id", user.ID))
	return nil
}
