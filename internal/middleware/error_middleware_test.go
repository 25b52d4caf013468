package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kadirhan/alumniport/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"no token", apperrors.ErrNoToken, http.StatusUnauthorized, "not authorized, no token"},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{"not owner wrapped", apperrors.NewNotOwnerError("Not authorized to delete this post"), http.StatusUnauthorized, "Not authorized to delete this post"},
		{"wrong role", &apperrors.CustomError{Err: apperrors.ErrWrongRole, Message: "Not authorized as an Alumni"}, http.StatusForbidden, "Not authorized as an Alumni"},
		{"not verified", apperrors.ErrNotVerified, http.StatusForbidden, "account pending verification"},
		{"not found", apperrors.NewNotFoundError("Post not found"), http.StatusNotFound, "Post not found"},
		{"bad request", apperrors.NewBadRequestError("Invalid job type"), http.StatusBadRequest, "Invalid job type"},
		{"email exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict, "email already registered"},
		{"assistant down", apperrors.ErrAssistantUnavailable, http.StatusServiceUnavailable, "assistant unavailable"},
		{"unknown error hidden", errors.New("pq: column does not exist"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if body.Success {
				t.Fatal("error responses must set success=false")
			}
			if body.Message != tt.wantMsg {
				t.Fatalf("message = %q, want %q", body.Message, tt.wantMsg)
			}
		})
	}
}
