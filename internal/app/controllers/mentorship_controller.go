package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kadirhan/alumniport/internal/app/models/dto"
	"github.com/kadirhan/alumniport/internal/app/services"
	"github.com/kadirhan/alumniport/internal/middleware"
)

// MentorshipController handles the mentorship endpoints.
type MentorshipController struct {
	mentorshipService *services.MentorshipService
	logger            zerolog.Logger
}

// NewMentorshipController creates a new MentorshipController.
func NewMentorshipController(mentorshipService *services.MentorshipService, logger zerolog.Logger) *MentorshipController {
	return &MentorshipController{mentorshipService: mentorshipService, logger: logger}
}

// Send handles POST /api/mentorship/request.
func (c *MentorshipController) Send(ctx *gin.Context) {
	var req dto.SendMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	request, err := c.mentorshipService.Send(ctx.Request.Context(), middleware.CurrentActor(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, request)
}

// List handles GET /api/mentorship/requests.
func (c *MentorshipController) List(ctx *gin.Context) {
	requests, err := c.mentorshipService.List(ctx.Request.Context(), middleware.CurrentActor(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, requests)
}

// Respond handles PUT /api/mentorship/respond/:id.
func (c *MentorshipController) Respond(ctx *gin.Context) {
	requestID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.RespondMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	request, err := c.mentorshipService.Respond(ctx.Request.Context(), middleware.CurrentActor(ctx), requestID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, request)
}
