package models

import "time"

// EventVisibility controls which roles see an event in listings.
type EventVisibility string

const (
	VisibilityAlumniOnly EventVisibility = "Alumni_Only"
	VisibilityAll        EventVisibility = "All"
)

// Valid reports whether v is a known visibility value.
func (v EventVisibility) Valid() bool {
	return v == VisibilityAlumniOnly || v == VisibilityAll
}

// Event represents an institute event. CreatedByID is the owning
// Institute_Admin; only the creator may update or delete the event.
type Event struct {
	ID          int64           `json:"id" db:"id"`
	CreatedByID int64           `json:"createdById" db:"created_by"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Date        time.Time       `json:"date" db:"date"`
	Location    string          `json:"location" db:"location"`
	Image       *string         `json:"image,omitempty" db:"image"`
	Visibility  EventVisibility `json:"visibility" db:"visibility"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`

	// Resolved on read
	CreatedBy *User   `json:"createdBy,omitempty"`
	Attendees []int64 `json:"attendees"`
}

// HasAttendee reports whether userID is in the event's attendee set.
func (e *Event) HasAttendee(userID int64) bool {
	for _, id := range e.Attendees {
		if id == userID {
			return true
		}
	}
	return false
}
