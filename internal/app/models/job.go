package models

import "time"

// JobType defines the employment type of a job posting.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeInternship JobType = "Internship"
	JobTypeContract   JobType = "Contract"
)

// Valid reports whether t is a known job type.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeContract:
		return true
	}
	return false
}

// Job represents a job posting on the job board.
type Job struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Company     string    `json:"company" db:"company"`
	Location    string    `json:"location" db:"location"`
	Description string    `json:"description" db:"description"`
	JobType     JobType   `json:"jobType" db:"job_type"`
	ApplyLink   string    `json:"applyLink" db:"apply_link"`
	PostedByID  int64     `json:"postedById" db:"posted_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Resolved on read
	PostedBy *User `json:"postedBy,omitempty"`
}
