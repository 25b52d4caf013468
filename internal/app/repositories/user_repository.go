package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kadirhan/alumniport/internal/app/models"
	"github.com/kadirhan/alumniport/internal/pkg/apperrors"
)

const userColumns = `id, name, email, password, role, is_verified,
		headline, bio, profile_picture, location,
		graduation_year, company, job_title, major, expected_graduation_year,
		created_at, updated_at`

// IUserRepository defines the user store operations consumed by services
// and middleware.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	FindUnverified(ctx context.Context) ([]models.User, error)
	FindVerifiedAlumni(ctx context.Context) ([]models.User, error)
	Verify(ctx context.Context, id int64) error
}

// UserRepository handles database operations for users.
type UserRepository struct {
	db *pgxpool.Pool
}

var _ IUserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. Email uniqueness is checked first so callers
// get apperrors.ErrEmailAlreadyExists instead of a driver error.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	exists, err := r.EmailExists(ctx, user.Email)
	if err != nil {
		return 0, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}

	var id int64
	err = r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, password, role, is_verified, profile_picture)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		user.Name, user.Email, user.Password, user.Role, user.IsVerified, user.Profile.ProfilePicture).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// EmailExists checks if an email is already registered.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// UpdateProfile persists the mutable profile fields of a user.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET
			name = $2, headline = $3, bio = $4, location = $5,
			graduation_year = $6, company = $7, job_title = $8,
			major = $9, expected_graduation_year = $10,
			updated_at = NOW()
		WHERE id = $1`,
		user.ID, user.Name, user.Profile.Headline, user.Profile.Bio, user.Profile.Location,
		user.Profile.GraduationYear, user.Profile.Company, user.Profile.JobTitle,
		user.Profile.Major, user.Profile.ExpectedGraduationYear)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("User not found")
	}
	return nil
}

// FindUnverified returns unverified students and alumni awaiting admin
// verification.
func (r *UserRepository) FindUnverified(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE is_verified = false AND role IN ($1, $2)
		ORDER BY created_at`,
		models.RoleStudent, models.RoleAlumni)
	if err != nil {
		return nil, fmt.Errorf("error listing unverified users: %w", err)
	}
	defer rows.Close()
	return collectUsers(rows)
}

// FindVerifiedAlumni returns the verified alumni directory.
func (r *UserRepository) FindVerifiedAlumni(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE role = $1 AND is_verified = true
		ORDER BY name`,
		models.RoleAlumni)
	if err != nil {
		return nil, fmt.Errorf("error listing alumni: %w", err)
	}
	defer rows.Close()
	return collectUsers(rows)
}

// Verify sets is_verified unconditionally.
func (r *UserRepository) Verify(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET is_verified = true, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error verifying user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("User not found")
	}
	return nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.IsVerified,
		&user.Profile.Headline, &user.Profile.Bio, &user.Profile.ProfilePicture, &user.Profile.Location,
		&user.Profile.GraduationYear, &user.Profile.Company, &user.Profile.JobTitle,
		&user.Profile.Major, &user.Profile.ExpectedGraduationYear,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return user, nil
}

func collectUsers(rows pgx.Rows) ([]models.User, error) {
	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}
