package dto

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
}

// RegisterRequest is the body of POST /api/register. Avatar is optional.
type RegisterRequest struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
}

// DeleteAccountRequest is the body of POST /api/delete-account. All three
// fields must match the stored record.
type DeleteAccountRequest struct {
	UserID     int64  `json:"userId"`
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
}

// UserPayload mirrors the user object returned by login and register.
type UserPayload struct {
	ID         int64   `json:"id"`
	EmployeeID string  `json:"employeeId"`
	Name       string  `json:"name"`
	Avatar     *string `json:"avatar"`
}

// AuthResponse wraps a resolved user.
type AuthResponse struct {
	Success bool        `json:"success"`
	User    UserPayload `json:"user"`
}

// SuccessResponse is the bare acknowledgement body.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}
