package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kadirhan/alumniport/internal/app/services"
	"github.com/kadirhan/alumniport/internal/middleware"
)

// AdminController handles the verification queue endpoints.
type AdminController struct {
	adminService *services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController.
func NewAdminController(adminService *services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{adminService: adminService, logger: logger}
}

// ListUnverified handles GET /api/admin/verify.
func (c *AdminController) ListUnverified(ctx *gin.Context) {
	users, err := c.adminService.ListUnverified(ctx.Request.Context(), middleware.CurrentActor(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// Verify handles PUT /api/admin/verify/:id.
func (c *AdminController) Verify(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.adminService.Verify(ctx.Request.Context(), middleware.CurrentActor(ctx), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}
