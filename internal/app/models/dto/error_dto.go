package dto

import "time"

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	ErrorCodeUnauthorized   ErrorCode = "AUTH_UNAUTHORIZED"
	ErrorCodeInvalidToken   ErrorCode = "AUTH_INVALID_TOKEN"
	ErrorCodeExpiredToken   ErrorCode = "AUTH_EXPIRED_TOKEN"
	ErrorCodeForbidden      ErrorCode = "FORBIDDEN"
	ErrorCodeNotVerified    ErrorCode = "PENDING_VERIFICATION"
	ErrorCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrorCodeBadRequest     ErrorCode = "BAD_REQUEST"
	ErrorCodeConflict       ErrorCode = "CONFLICT"
	ErrorCodeValidation     ErrorCode = "VALIDATION_FAILED"
	ErrorCodeInternalServer ErrorCode = "INTERNAL_SERVER_ERROR"
)

// ErrorResponse is the JSON body for every failed request. Message is the
// human-readable field clients display; the SPA reads data.message.
type ErrorResponse struct {
	Success   bool      `json:"success" example:"false"`
	Message   string    `json:"message" example:"Post not found"`
	Code      ErrorCode `json:"code,omitempty" example:"NOT_FOUND"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(code ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Message:   message,
		Code:      code,
		Timestamp: time.Now(),
	}
}
