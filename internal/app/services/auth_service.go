package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kadirhan/alumniport/internal/app/models"
	"github.com/kadirhan/alumniport/internal/app/models/dto"
	"github.com/kadirhan/alumniport/internal/app/repositories"
	"github.com/kadirhan/alumniport/internal/pkg/apperrors"
	"github.com/kadirhan/alumniport/internal/pkg/auth"
)

// AuthService handles registration and login.
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates an account and signs the user in. New Student and
// Alumni accounts start unverified; the remaining self-service roles do
// not need admin review. Institute_Admin and Super_Admin accounts cannot
// be self-registered.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, apperrors.NewBadRequestError("Invalid role")
	}
	if role == models.RoleInstituteAdmin || role == models.RoleSuperAdmin {
		return nil, apperrors.NewBadRequestError("This role cannot be self-registered")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Password:   hashed,
		Role:       role,
		IsVerified: role != models.RoleStudent && role != models.RoleAlumni,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info().Int64("userId", id).Str("role", string(role)).Msg("User registered")
	return s.issueToken(user)
}

// Login verifies credentials and returns a fresh token.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		// Do not reveal whether the email exists.
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Debug().Int64("userId", user.ID).Msg("User logged in")
	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &dto.AuthResponse{Token: token, ExpiresIn: expiresIn, User: user}, nil
}
