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

// MentorshipService handles mentorship requests between students and
// alumni.
type MentorshipService struct {
	mentorshipRepo repositories.IMentorshipRepository
	userRepo       repositories.IUserRepository
	logger         zerolog.Logger
}

// NewMentorshipService creates a new MentorshipService.
func NewMentorshipService(
	mentorshipRepo repositories.IMentorshipRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) *MentorshipService {
	return &MentorshipService{
		mentorshipRepo: mentorshipRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// Send creates a pending request from the acting student to an alumni.
// The target must exist and actually hold the Alumni role.
func (s *MentorshipService) Send(ctx context.Context, actor *models.User, req *dto.SendMentorshipRequest) (*models.MentorshipRequest, error) {
	if err := auth.CanSendMentorshipRequest(actor); err != nil {
		return nil, err
	}

	target, err := s.userRepo.GetByID(ctx, req.AlumniID)
	if err != nil || target.Role != models.RoleAlumni {
		return nil, apperrors.NewNotFoundError("Alumni not found")
	}

	request := &models.MentorshipRequest{
		StudentID: actor.ID,
		AlumniID:  target.ID,
		Message:   req.Message,
		Status:    models.MentorshipPending,
	}
	if _, err := s.mentorshipRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("requestId", request.ID).
		Int64("studentId", actor.ID).
		Int64("alumniId", target.ID).
		Msg("Mentorship request sent")
	return request, nil
}

// List returns the actor's side of the mentorship relation: requests
// they sent for students, requests addressed to them for alumni.
func (s *MentorshipService) List(ctx context.Context, actor *models.User) ([]models.MentorshipRequest, error) {
	if err := auth.CanListMentorshipRequests(actor); err != nil {
		return nil, err
	}

	if actor.Role == models.RoleStudent {
		return s.mentorshipRepo.FindByStudent(ctx, actor.ID)
	}
	return s.mentorshipRepo.FindByAlumni(ctx, actor.ID)
}

// Respond transitions a pending request to Accepted or Rejected. Only
// the alumni named on the request may respond, and a request that
// already reached a terminal state cannot transition again.
func (s *MentorshipService) Respond(ctx context.Context, actor *models.User, requestID int64, req *dto.RespondMentorshipRequest) (*models.MentorshipRequest, error) {
	status := models.MentorshipStatus(req.Status)
	if status != models.MentorshipAccepted && status != models.MentorshipRejected {
		return nil, apperrors.NewBadRequestError("Status must be Accepted or Rejected")
	}

	request, err := s.mentorshipRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := auth.CanRespondToRequest(actor, request); err != nil {
		return nil, err
	}

	updated, err := s.mentorshipRepo.UpdateStatus(ctx, requestID, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperrors.NewBadRequestError("Request has already been responded to")
	}
	request.Status = status

	s.logger.Info().
		Int64("requestId", requestID).
		Str("status", string(status)).
		Msg("Mentorship request responded")
	return request, nil
}
