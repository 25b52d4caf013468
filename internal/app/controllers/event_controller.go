package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kadirhan/alumniport/internal/app/models/dto"
	"github.com/kadirhan/alumniport/internal/app/services"
	"github.com/kadirhan/alumniport/internal/middleware"
)

// EventController handles the event endpoints.
type EventController struct {
	eventService *services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController.
func NewEventController(eventService *services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{eventService: eventService, logger: logger}
}

// Create handles POST /api/events.
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	event, err := c.eventService.Create(ctx.Request.Context(), middleware.CurrentActor(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, event)
}

// GetAll handles GET /api/events.
func (c *EventController) GetAll(ctx *gin.Context) {
	events, err := c.eventService.GetAll(ctx.Request.Context(), middleware.CurrentActor(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// Update handles PUT /api/events/:id.
func (c *EventController) Update(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	event, err := c.eventService.Update(ctx.Request.Context(), middleware.CurrentActor(ctx), eventID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, event)
}

// Delete handles DELETE /api/events/:id.
func (c *EventController) Delete(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.eventService.Delete(ctx.Request.Context(), middleware.CurrentActor(ctx), eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Event removed"))
}

// Register handles PUT /api/events/:id/register.
func (c *EventController) Register(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	event, err := c.eventService.Register(ctx.Request.Context(), middleware.CurrentActor(ctx), eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, event)
}

// Unregister handles PUT /api/events/:id/unregister.
func (c *EventController) Unregister(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	event, err := c.eventService.Unregister(ctx.Request.Context(), middleware.CurrentActor(ctx), eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, event)
}
