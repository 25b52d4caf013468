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

// IEventRepository defines the event store operations consumed by the
// event service.
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetAll(ctx context.Context) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
	AddAttendee(ctx context.Context, eventID, userID int64) (bool, error)
	RemoveAttendee(ctx context.Context, eventID, userID int64) (bool, error)
}

// EventRepository handles database operations for events and attendance.
type EventRepository struct {
	db *pgxpool.Pool
}

var _ IEventRepository = (*EventRepository)(nil)

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO events (created_by, title, description, date, location, image, visibility)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		event.CreatedByID, event.Title, event.Description, event.Date, event.Location,
		event.Image, event.Visibility).Scan(&id, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating event: %w", err)
	}
	event.ID = id
	return id, nil
}

// GetByID retrieves an event with its attendee set.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	event := &models.Event{}
	err := r.db.QueryRow(ctx, `
		SELECT id, created_by, title, description, date, location, image, visibility, created_at, updated_at
		FROM events WHERE id = $1`, id).Scan(
		&event.ID, &event.CreatedByID, &event.Title, &event.Description, &event.Date,
		&event.Location, &event.Image, &event.Visibility, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("Event not found")
		}
		return nil, fmt.Errorf("error getting event: %w", err)
	}

	events := []models.Event{*event}
	if err := r.attachAttendees(ctx, events); err != nil {
		return nil, err
	}
	return &events[0], nil
}

// GetAll returns every event sorted by date ascending with the creator's
// name resolved. Role-dependent visibility filtering happens in the
// service, not here.
func (r *EventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.created_by, e.title, e.description, e.date, e.location, e.image, e.visibility,
			e.created_at, e.updated_at, u.name
		FROM events e
		JOIN users u ON u.id = e.created_by
		ORDER BY e.date ASC`)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event
		creator := &models.User{}
		err := rows.Scan(
			&event.ID, &event.CreatedByID, &event.Title, &event.Description, &event.Date,
			&event.Location, &event.Image, &event.Visibility, &event.CreatedAt, &event.UpdatedAt,
			&creator.Name)
		if err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		creator.ID = event.CreatedByID
		event.CreatedBy = creator
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	if err := r.attachAttendees(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) attachAttendees(ctx context.Context, events []models.Event) error {
	if len(events) == 0 {
		return nil
	}

	ids := make([]int64, len(events))
	index := make(map[int64]*models.Event, len(events))
	for i := range events {
		ids[i] = events[i].ID
		index[events[i].ID] = &events[i]
		events[i].Attendees = []int64{}
	}

	rows, err := r.db.Query(ctx, `
		SELECT event_id, user_id FROM event_attendees WHERE event_id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("error loading attendees: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var eventID, userID int64
		if err := rows.Scan(&eventID, &userID); err != nil {
			return fmt.Errorf("error scanning attendee: %w", err)
		}
		if event, ok := index[eventID]; ok {
			event.Attendees = append(event.Attendees, userID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating attendees: %w", err)
	}
	return nil
}

// Update persists an event after the service applied partial changes.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE events SET
			title = $2, description = $3, date = $4, location = $5,
			image = $6, visibility = $7, updated_at = NOW()
		WHERE id = $1`,
		event.ID, event.Title, event.Description, event.Date, event.Location,
		event.Image, event.Visibility)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Event not found")
	}
	return nil
}

// Delete removes an event; attendee rows go with it via cascade.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Event not found")
	}
	return nil
}

// AddAttendee adds userID to the attendee set. Returns false when the
// user is already registered; the insert is a no-op in that case.
func (r *EventRepository) AddAttendee(ctx context.Context, eventID, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO event_attendees (event_id, user_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, eventID, userID)
	if err != nil {
		return false, fmt.Errorf("error registering attendee: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// RemoveAttendee removes userID from the attendee set. Returns false when
// the user was not registered.
func (r *EventRepository) RemoveAttendee(ctx context.Context, eventID, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM event_attendees WHERE event_id = $1 AND user_id = $2`, eventID, userID)
	if err != nil {
		return false, fmt.Errorf("error unregistering attendee: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
