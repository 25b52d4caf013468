package dto

// SendMentorshipRequest is the body of POST /api/mentorship/request.
type SendMentorshipRequest struct {
	AlumniID int64  `json:"alumniId" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

// RespondMentorshipRequest is the body of PUT /api/mentorship/respond/:id.
type RespondMentorshipRequest struct {
	Status string `json:"status" binding:"required"`
}
