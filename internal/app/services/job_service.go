package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kadirhan/alumniport/internal/app/auth"
	"github.com/kadirhan/alumniport/internal/app/models"
	"github.com/kadirhan/alumniport/internal/app/models/dto"
	"github.com/kadirhan/alumniport/internal/app/repositories"
	"github.com/kadirhan/alumniport/internal/pkg/apperrors"
)

// JobService handles the job board.
type JobService struct {
	jobRepo repositories.IJobRepository
	logger  zerolog.Logger
}

// NewJobService creates a new JobService.
func NewJobService(jobRepo repositories.IJobRepository, logger zerolog.Logger) *JobService {
	return &JobService{jobRepo: jobRepo, logger: logger}
}

// Create posts a job. Alumni only.
func (s *JobService) Create(ctx context.Context, actor *models.User, req *dto.CreateJobRequest) (*models.Job, error) {
	if err := auth.CanCreateJob(actor); err != nil {
		return nil, err
	}

	jobType := models.JobType(req.JobType)
	if !jobType.Valid() {
		return nil, apperrors.NewBadRequestError("Invalid job type")
	}

	job := &models.Job{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		JobType:     jobType,
		ApplyLink:   req.ApplyLink,
		PostedByID:  actor.ID,
	}
	if _, err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	job.PostedBy = actor

	s.logger.Debug().Int64("jobId", job.ID).Int64("userId", actor.ID).Msg("Job posted")
	return job, nil
}

// GetAll returns every job posting, newest first.
func (s *JobService) GetAll(ctx context.Context) ([]models.Job, error) {
	return s.jobRepo.GetAll(ctx)
}

// Delete removes a job. Only the posting alumni may delete it.
func (s *JobService) Delete(ctx context.Context, actor *models.User, jobID int64) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if err := auth.CanDeleteJob(actor, job); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return err
	}
	s.logger.Info().Int64("jobId", jobID).Int64("actorId", actor.ID).Msg("Job deleted")
	return nil
}
