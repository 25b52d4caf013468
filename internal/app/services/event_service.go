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

// EventService handles institute events and attendance.
type EventService struct {
	eventRepo repositories.IEventRepository
	logger    zerolog.Logger
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo repositories.IEventRepository, logger zerolog.Logger) *EventService {
	return &EventService{eventRepo: eventRepo, logger: logger}
}

// Create publishes an event. Institute admins only. Visibility defaults
// to Alumni_Only when omitted.
func (s *EventService) Create(ctx context.Context, actor *models.User, req *dto.CreateEventRequest) (*models.Event, error) {
	if err := auth.CanCreateEvent(actor); err != nil {
		return nil, err
	}

	visibility := models.VisibilityAlumniOnly
	if req.Visibility != "" {
		visibility = models.EventVisibility(req.Visibility)
		if !visibility.Valid() {
			return nil, apperrors.NewBadRequestError("Invalid visibility")
		}
	}

	event := &models.Event{
		CreatedByID: actor.ID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Image:       req.Image,
		Visibility:  visibility,
	}
	if _, err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	event.CreatedBy = actor
	event.Attendees = []int64{}

	s.logger.Info().Int64("eventId", event.ID).Int64("userId", actor.ID).Msg("Event created")
	return event, nil
}

// GetAll lists events visible to the actor, soonest first. Students only
// see events published to everyone.
func (s *EventService) GetAll(ctx context.Context, actor *models.User) ([]models.Event, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := events[:0]
	for _, event := range events {
		if auth.EventVisibleTo(actor, &event) {
			visible = append(visible, event)
		}
	}
	return visible, nil
}

// Update applies a partial update to an event. Only the creating admin.
func (s *EventService) Update(ctx context.Context, actor *models.User, eventID int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := auth.CanModifyEvent(actor, event); err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Image != nil {
		event.Image = req.Image
	}
	if req.Visibility != nil {
		visibility := models.EventVisibility(*req.Visibility)
		if !visibility.Valid() {
			return nil, apperrors.NewBadRequestError("Invalid visibility")
		}
		event.Visibility = visibility
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event. Only the creating admin.
func (s *EventService) Delete(ctx context.Context, actor *models.User, eventID int64) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if err := auth.CanModifyEvent(actor, event); err != nil {
		return err
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return err
	}
	s.logger.Info().Int64("eventId", eventID).Int64("actorId", actor.ID).Msg("Event deleted")
	return nil
}

// Register adds the actor to an event's attendee set. Registering twice
// is a conflict, reported from the atomic insert rather than a prior
// read, so two concurrent registrations cannot both succeed.
func (s *EventService) Register(ctx context.Context, actor *models.User, eventID int64) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !auth.EventVisibleTo(actor, event) {
		return nil, apperrors.NewNotFoundError("Event not found")
	}

	added, err := s.eventRepo.AddAttendee(ctx, eventID, actor.ID)
	if err != nil {
		return nil, err
	}
	if !added {
		return nil, apperrors.NewBadRequestError("Already registered for this event")
	}

	return s.eventRepo.GetByID(ctx, eventID)
}

// Unregister removes the actor from an event's attendee set.
func (s *EventService) Unregister(ctx context.Context, actor *models.User, eventID int64) (*models.Event, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	removed, err := s.eventRepo.RemoveAttendee(ctx, eventID, actor.ID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, apperrors.NewBadRequestError("Not registered for this event")
	}

	return s.eventRepo.GetByID(ctx, eventID)
}
