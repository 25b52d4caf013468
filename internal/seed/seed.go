// Package seed creates the accounts the application cannot function
// without: a Super_Admin and an Institute_Admin. Both are created
// verified, since nobody exists yet to verify them.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/kadirhan/alumniport/internal/app/models"
	"github.com/kadirhan/alumniport/internal/app/repositories"
	"github.com/kadirhan/alumniport/internal/pkg/auth"
)

const defaultAdminPassword = "changeme123"

// CreateDefaultData seeds the admin accounts if they do not exist yet.
// Existing accounts are left untouched, so re-running on every startup
// is safe.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
	}

	admins := []models.User{
		{
			Name:       "Super Admin",
			Email:      "superadmin@alumniport.app",
			Role:       models.RoleSuperAdmin,
			IsVerified: true,
		},
		{
			Name:       "Institute Admin",
			Email:      "admin@alumniport.app",
			Role:       models.RoleInstituteAdmin,
			IsVerified: true,
		},
	}

	for i := range admins {
		admin := &admins[i]

		exists, err := userRepo.EmailExists(ctx, admin.Email)
		if err != nil {
			return fmt.Errorf("failed to check seed account %s: %w", admin.Email, err)
		}
		if exists {
			continue
		}

		hashed, err := auth.HashPassword(password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		admin.Password = hashed

		if _, err := userRepo.Create(ctx, admin); err != nil {
			return fmt.Errorf("failed to create seed account %s: %w", admin.Email, err)
		}
		lgr.Info().Str("email", admin.Email).Str("role", string(admin.Role)).Msg("Seed account created")
	}
	return nil
}
