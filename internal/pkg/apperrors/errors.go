package apperrors

import "errors"

// Authentication errors
var (
	ErrNoToken            = errors.New("not authorized, no token")
	ErrTokenInvalid       = errors.New("not authorized, token failed")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Authorization errors
var (
	ErrWrongRole   = errors.New("wrong role for this operation")
	ErrNotOwner    = errors.New("not the owner of this resource")
	ErrForbidden   = errors.New("permission denied")
	ErrNotVerified = errors.New("account pending verification")
)

// Resource errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrBadRequest         = errors.New("bad request")
	ErrConflict           = errors.New("conflict")
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// ErrAssistantUnavailable is returned when the chat assistant backend is
// not configured or unreachable.
var ErrAssistantUnavailable = errors.New("assistant unavailable")

// CustomError carries a human-readable message on top of a sentinel error
// so handlers can match with errors.Is while responses keep the message
// the client expects.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap makes errors.Is see the underlying sentinel.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError wraps ErrNotFound with a message naming the entity.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewBadRequestError wraps ErrBadRequest with a message.
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewNotOwnerError wraps ErrNotOwner with a message.
func NewNotOwnerError(message string) error {
	return &CustomError{Err: ErrNotOwner, Message: message}
}

// NewForbiddenError wraps ErrForbidden with a message.
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrForbidden, Message: message}
}
