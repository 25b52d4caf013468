package dto

// CreateJobRequest is the body of POST /api/jobs.
type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description" binding:"required"`
	JobType     string `json:"jobType" binding:"required"`
	ApplyLink   string `json:"applyLink" binding:"required"`
}
