package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kadirhan/alumniport/internal/app/models/dto"
	"github.com/kadirhan/alumniport/internal/app/services"
	"github.com/kadirhan/alumniport/internal/middleware"
)

// JobController handles the job board endpoints.
type JobController struct {
	jobService *services.JobService
	logger     zerolog.Logger
}

// NewJobController creates a new JobController.
func NewJobController(jobService *services.JobService, logger zerolog.Logger) *JobController {
	return &JobController{jobService: jobService, logger: logger}
}

// Create handles POST /api/jobs.
func (c *JobController) Create(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	job, err := c.jobService.Create(ctx.Request.Context(), middleware.CurrentActor(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, job)
}

// GetAll handles GET /api/jobs.
func (c *JobController) GetAll(ctx *gin.Context) {
	jobs, err := c.jobService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, jobs)
}

// Delete handles DELETE /api/jobs/:id.
func (c *JobController) Delete(ctx *gin.Context) {
	jobID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.jobService.Delete(ctx.Request.Context(), middleware.CurrentActor(ctx), jobID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Job removed"))
}
