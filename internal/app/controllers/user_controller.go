package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kadirhan/alumniport/internal/app/models/dto"
	"github.com/kadirhan/alumniport/internal/app/services"
	"github.com/kadirhan/alumniport/internal/middleware"
	"github.com/kadirhan/alumniport/internal/pkg/apperrors"
)

// UserController handles profile and directory endpoints.
type UserController struct {
	userService *services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController.
func NewUserController(userService *services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{userService: userService, logger: logger}
}

// GetMe handles GET /api/users/profile.
func (c *UserController) GetMe(ctx *gin.Context) {
	actor := middleware.CurrentActor(ctx)
	if actor == nil {
		middleware.HandleAPIError(ctx, apperrors.ErrNoToken)
		return
	}
	ctx.JSON(http.StatusOK, actor)
}

// GetProfile handles GET /api/users/:id.
func (c *UserController) GetProfile(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.GetProfile(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /api/users/profile.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	user, err := c.userService.UpdateProfile(ctx.Request.Context(), middleware.CurrentActor(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// ListAlumni handles GET /api/users/alumni.
func (c *UserController) ListAlumni(ctx *gin.Context) {
	alumni, err := c.userService.ListAlumni(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, alumni)
}

// parseIDParam reads a positive numeric path parameter.
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError("Invalid id")
	}
	return id, nil
}
