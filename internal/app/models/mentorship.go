package models

import "time"

// MentorshipStatus is the lifecycle state of a mentorship request.
// Pending is the only non-terminal state.
type MentorshipStatus string

const (
	MentorshipPending  MentorshipStatus = "Pending"
	MentorshipAccepted MentorshipStatus = "Accepted"
	MentorshipRejected MentorshipStatus = "Rejected"
)

// Terminal reports whether no further transition is defined from s.
func (s MentorshipStatus) Terminal() bool {
	return s == MentorshipAccepted || s == MentorshipRejected
}

// MentorshipRequest represents a student's request for mentorship from a
// named alumni. Status transitions Pending -> Accepted|Rejected, performed
// exclusively by the named alumni.
type MentorshipRequest struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	AlumniID  int64            `json:"alumniId" db:"alumni_id"`
	Message   string           `json:"message" db:"message"`
	Status    MentorshipStatus `json:"status" db:"status"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time        `json:"updatedAt" db:"updated_at"`

	// Resolved on read
	Student *User `json:"student,omitempty"`
	Alumni  *User `json:"alumni,omitempty"`
}
