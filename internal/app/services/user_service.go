package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kadirhan/alumniport/internal/app/models"
	"github.com/kadirhan/alumniport/internal/app/models/dto"
	"github.com/kadirhan/alumniport/internal/app/repositories"
)

// UserService handles profile reads and updates plus the alumni directory.
type UserService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// GetProfile returns a user by ID.
func (s *UserService) GetProfile(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies a partial update to the actor's own profile.
// Role-specific fields only stick when the actor has the matching role;
// an alumni cannot set a major and a student cannot set a company.
func (s *UserService) UpdateProfile(ctx context.Context, actor *models.User, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Headline != nil {
		user.Profile.Headline = *req.Headline
	}
	if req.Bio != nil {
		user.Profile.Bio = *req.Bio
	}
	if req.Location != nil {
		user.Profile.Location = *req.Location
	}

	if user.Role == models.RoleAlumni {
		if req.GraduationYear != nil {
			user.Profile.GraduationYear = req.GraduationYear
		}
		if req.Company != nil {
			user.Profile.Company = req.Company
		}
		if req.JobTitle != nil {
			user.Profile.JobTitle = req.JobTitle
		}
	}
	if user.Role == models.RoleStudent {
		if req.Major != nil {
			user.Profile.Major = req.Major
		}
		if req.ExpectedGraduationYear != nil {
			user.Profile.ExpectedGraduationYear = req.ExpectedGraduationYear
		}
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("userId", user.ID).Msg("Profile updated")
	return user, nil
}

// ListAlumni returns the verified alumni directory used by the mentorship
// browse page.
func (s *UserService) ListAlumni(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindVerifiedAlumni(ctx)
}
