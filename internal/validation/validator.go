package validation

import (
	"regexp"
	"strings"

	"levelcert/internal/domain"
	"levelcert/internal/dto"
)

var employeeIDPattern = regexp.MustCompile(`^\d{7}$`)

// IsEmployeeID reports whether s is a 7-digit employee id.
func IsEmployeeID(s string) bool {
	return employeeIDPattern.MatchString(s)
}

// Validator provides request validation functionality
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCredentials checks the employeeId/name pair shared by login and
// registration. Runs before any storage access.
func (v *Validator) ValidateCredentials(employeeID, name string) *domain.DomainError {
	if employeeID == "" || name == "" {
		return domain.NewInvalidInputError(domain.MsgMissingParams)
	}
	if !IsEmployeeID(employeeID) {
		return domain.NewInvalidInputError(domain.MsgEmployeeIDFormat)
	}
	return nil
}

// ValidateDeleteAccount checks the identity triple of account deletion.
func (v *Validator) ValidateDeleteAccount(req *dto.DeleteAccountRequest) *domain.DomainError {
	if req.UserID <= 0 || strings.TrimSpace(req.EmployeeID) == "" || strings.TrimSpace(req.Name) == "" {
		return domain.NewInvalidInputError(domain.MsgMissingParams)
	}
	if !IsEmployeeID(strings.TrimSpace(req.EmployeeID)) {
		return domain.NewInvalidInputError(domain.MsgEmployeeIDFormat)
	}
	return nil
}

// ValidateSaveExam checks the required exam fields. Zero counts are treated
// as missing, matching the observed contract.
func (v *Validator) ValidateSaveExam(req *dto.SaveExamRequest) *domain.DomainError {
	if req.UserID == 0 || req.EmployeeID == "" || req.Subject == "" ||
		req.Score == nil || req.TotalQuestions == 0 || req.CorrectCount == 0 {
		return domain.NewInvalidInputError(domain.MsgMissingParams)
	}
	return nil
}
