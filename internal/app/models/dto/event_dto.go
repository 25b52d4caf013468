package dto

import "time"

// CreateEventRequest is the body of POST /api/events.
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Image       *string   `json:"image,omitempty"`
	Visibility  string    `json:"visibility,omitempty"`
}

// UpdateEventRequest carries the partial update for PUT /api/events/:id.
// Only provided fields overwrite.
type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Image       *string    `json:"image,omitempty"`
	Visibility  *string    `json:"visibility,omitempty"`
}
