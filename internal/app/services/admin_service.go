package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kadirhan/alumniport/internal/app/auth"
	"github.com/kadirhan/alumniport/internal/app/models"
	"github.com/kadirhan/alumniport/internal/app/repositories"
)

// AdminService handles the institute admin's verification queue.
type AdminService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(userRepo repositories.IUserRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{userRepo: userRepo, logger: logger}
}

// ListUnverified returns students and alumni awaiting verification.
func (s *AdminService) ListUnverified(ctx context.Context, actor *models.User) ([]models.User, error) {
	if err := auth.CanVerifyUsers(actor); err != nil {
		return nil, err
	}
	return s.userRepo.FindUnverified(ctx)
}

// Verify marks a user verified. Verifying an already verified user is a
// no-op that still succeeds.
func (s *AdminService) Verify(ctx context.Context, actor *models.User, userID int64) (*models.User, error) {
	if err := auth.CanVerifyUsers(actor); err != nil {
		return nil, err
	}

	if err := s.userRepo.Verify(ctx, userID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", userID).Int64("adminId", actor.ID).Msg("User verified")
	return user, nil
}
