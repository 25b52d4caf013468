package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kadirhan/alumniport/internal/app/models/dto"
	"github.com/kadirhan/alumniport/internal/pkg/apperrors"
)

// HandleAPIError maps a service error to the HTTP response. The message
// shown to the client is err.Error(), which services control through
// apperrors.CustomError; the sentinel picks the status code.
func HandleAPIError(c *gin.Context, err error) {
	status, code := classify(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Never leak wrapped driver errors to clients.
		message = "Internal server error"
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(code, message))
}

func classify(err error) (int, dto.ErrorCode) {
	switch {
	case errors.Is(err, apperrors.ErrNoToken),
		errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeUnauthorized
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.ErrorCodeExpiredToken
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidToken
	case errors.Is(err, apperrors.ErrNotOwner):
		// Ownership denials surface as 401 to match the established
		// client contract, not 403.
		return http.StatusUnauthorized, dto.ErrorCodeUnauthorized
	case errors.Is(err, apperrors.ErrNotVerified):
		return http.StatusForbidden, dto.ErrorCodeNotVerified
	case errors.Is(err, apperrors.ErrWrongRole),
		errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, dto.ErrorCodeForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, dto.ErrorCodeNotFound
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.ErrorCodeBadRequest
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.ErrorCodeConflict
	case errors.Is(err, apperrors.ErrAssistantUnavailable):
		return http.StatusServiceUnavailable, dto.ErrorCodeInternalServer
	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer
	}
}

// HandleValidationError reports a request binding failure as a 400.
func HandleValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest,
		dto.NewErrorResponse(dto.ErrorCodeValidation, "Invalid request: "+err.Error()))
}
