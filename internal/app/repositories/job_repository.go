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

// IJobRepository defines the job store operations consumed by the job
// service.
type IJobRepository interface {
	Create(ctx context.Context, job *models.Job) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	GetAll(ctx context.Context) ([]models.Job, error)
	Delete(ctx context.Context, id int64) error
}

// JobRepository handles database operations for job postings.
type JobRepository struct {
	db *pgxpool.Pool
}

var _ IJobRepository = (*JobRepository)(nil)

// NewJobRepository creates a new JobRepository.
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a new job posting.
func (r *JobRepository) Create(ctx context.Context, job *models.Job) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO jobs (title, company, location, description, job_type, apply_link, posted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		job.Title, job.Company, job.Location, job.Description, job.JobType, job.ApplyLink, job.PostedByID).
		Scan(&id, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating job: %w", err)
	}
	job.ID = id
	return id, nil
}

// GetByID retrieves a job posting by ID.
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	job := &models.Job{}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, company, location, description, job_type, apply_link, posted_by, created_at, updated_at
		FROM jobs WHERE id = $1`, id).Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.Description,
		&job.JobType, &job.ApplyLink, &job.PostedByID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("Job not found")
		}
		return nil, fmt.Errorf("error getting job: %w", err)
	}
	return job, nil
}

// GetAll returns every job posting, newest first, with the poster's name
// and current company resolved.
func (r *JobRepository) GetAll(ctx context.Context) ([]models.Job, error) {
	rows, err := r.db.Query(ctx, `
		SELECT j.id, j.title, j.company, j.location, j.description, j.job_type, j.apply_link,
			j.posted_by, j.created_at, j.updated_at,
			u.name, u.company
		FROM jobs j
		JOIN users u ON u.id = j.posted_by
		ORDER BY j.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		var job models.Job
		poster := &models.User{}
		err := rows.Scan(
			&job.ID, &job.Title, &job.Company, &job.Location, &job.Description, &job.JobType,
			&job.ApplyLink, &job.PostedByID, &job.CreatedAt, &job.UpdatedAt,
			&poster.Name, &poster.Profile.Company)
		if err != nil {
			return nil, fmt.Errorf("error scanning job: %w", err)
		}
		poster.ID = job.PostedByID
		job.PostedBy = poster
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating jobs: %w", err)
	}
	return jobs, nil
}

// Delete removes a job posting.
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Job not found")
	}
	return nil
}
