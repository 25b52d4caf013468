package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authz "github.com/kadirhan/alumniport/internal/app/auth"
	"github.com/kadirhan/alumniport/internal/app/models"
	"github.com/kadirhan/alumniport/internal/app/models/dto"
	"github.com/kadirhan/alumniport/internal/app/repositories"
	"github.com/kadirhan/alumniport/internal/pkg/auth"
)

// actorKey is the gin context key the authenticated user is stored under.
const actorKey = "actor"

// AuthMiddleware authenticates requests and loads the acting user.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   repositories.IUserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo repositories.IUserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// JWTAuth validates the bearer token and loads the user it names into
// the request context. The database read makes role and verification
// checks reflect the current account state, not the state at token
// issue time.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Not authorized, no token")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Not authorized, token failed")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Not authorized, token failed")
			return
		}

		user, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Not authorized, token failed")
			return
		}

		c.Set(actorKey, user)
		c.Next()
	}
}

// VerifiedRequired gates dashboard routes on account verification.
// Must run after JWTAuth.
func (m *AuthMiddleware) VerifiedRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := CurrentActor(c)
		if err := authz.RequireVerified(actor); err != nil {
			HandleAPIError(c, err)
			return
		}
		c.Next()
	}
}

// CurrentActor returns the authenticated user loaded by JWTAuth, or nil.
func CurrentActor(c *gin.Context) *models.User {
	value, exists := c.Get(actorKey)
	if !exists {
		return nil
	}
	actor, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return actor
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
}
