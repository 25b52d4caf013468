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

// IMentorshipRepository defines the mentorship-request store operations
// consumed by the mentorship service.
type IMentorshipRepository interface {
	Create(ctx context.Context, request *models.MentorshipRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.MentorshipRequest, error)
	FindByAlumni(ctx context.Context, alumniID int64) ([]models.MentorshipRequest, error)
	FindByStudent(ctx context.Context, studentID int64) ([]models.MentorshipRequest, error)
	UpdateStatus(ctx context.Context, id int64, status models.MentorshipStatus) (bool, error)
}

// MentorshipRepository handles database operations for mentorship requests.
type MentorshipRepository struct {
	db *pgxpool.Pool
}

var _ IMentorshipRepository = (*MentorshipRepository)(nil)

// NewMentorshipRepository creates a new MentorshipRepository.
func NewMentorshipRepository(db *pgxpool.Pool) *MentorshipRepository {
	return &MentorshipRepository{db: db}
}

// Create inserts a new mentorship request with status Pending.
func (r *MentorshipRepository) Create(ctx context.Context, request *models.MentorshipRequest) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO mentorship_requests (student_id, alumni_id, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		request.StudentID, request.AlumniID, request.Message, request.Status).
		Scan(&id, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating mentorship request: %w", err)
	}
	request.ID = id
	return id, nil
}

// GetByID retrieves a mentorship request by ID.
func (r *MentorshipRepository) GetByID(ctx context.Context, id int64) (*models.MentorshipRequest, error) {
	request := &models.MentorshipRequest{}
	err := r.db.QueryRow(ctx, `
		SELECT id, student_id, alumni_id, message, status, created_at, updated_at
		FROM mentorship_requests WHERE id = $1`, id).Scan(
		&request.ID, &request.StudentID, &request.AlumniID, &request.Message,
		&request.Status, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("Request not found or not authorized")
		}
		return nil, fmt.Errorf("error getting mentorship request: %w", err)
	}
	return request, nil
}

// FindByAlumni returns the requests addressed to an alumni, newest first,
// with the requesting student resolved.
func (r *MentorshipRepository) FindByAlumni(ctx context.Context, alumniID int64) ([]models.MentorshipRequest, error) {
	return r.find(ctx, `
		SELECT m.id, m.student_id, m.alumni_id, m.message, m.status, m.created_at, m.updated_at,
			s.name, s.headline, s.profile_picture, a.name
		FROM mentorship_requests m
		JOIN users s ON s.id = m.student_id
		JOIN users a ON a.id = m.alumni_id
		WHERE m.alumni_id = $1
		ORDER BY m.created_at DESC`, alumniID)
}

// FindByStudent returns the requests a student has sent, newest first.
func (r *MentorshipRepository) FindByStudent(ctx context.Context, studentID int64) ([]models.MentorshipRequest, error) {
	return r.find(ctx, `
		SELECT m.id, m.student_id, m.alumni_id, m.message, m.status, m.created_at, m.updated_at,
			s.name, s.headline, s.profile_picture, a.name
		FROM mentorship_requests m
		JOIN users s ON s.id = m.student_id
		JOIN users a ON a.id = m.alumni_id
		WHERE m.student_id = $1
		ORDER BY m.created_at DESC`, studentID)
}

func (r *MentorshipRepository) find(ctx context.Context, query string, args ...any) ([]models.MentorshipRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing mentorship requests: %w", err)
	}
	defer rows.Close()

	requests := []models.MentorshipRequest{}
	for rows.Next() {
		var request models.MentorshipRequest
		student := &models.User{}
		alumni := &models.User{}
		err := rows.Scan(
			&request.ID, &request.StudentID, &request.AlumniID, &request.Message,
			&request.Status, &request.CreatedAt, &request.UpdatedAt,
			&student.Name, &student.Profile.Headline, &student.Profile.ProfilePicture,
			&alumni.Name)
		if err != nil {
			return nil, fmt.Errorf("error scanning mentorship request: %w", err)
		}
		student.ID = request.StudentID
		alumni.ID = request.AlumniID
		request.Student = student
		request.Alumni = alumni
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentorship requests: %w", err)
	}
	return requests, nil
}

// UpdateStatus transitions a request out of Pending. The guard in the
// WHERE clause makes the transition single-shot even under concurrent
// responses; false means the request was no longer pending.
func (r *MentorshipRepository) UpdateStatus(ctx context.Context, id int64, status models.MentorshipStatus) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE mentorship_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3`,
		id, status, models.MentorshipPending)
	if err != nil {
		return false, fmt.Errorf("error updating mentorship request: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
