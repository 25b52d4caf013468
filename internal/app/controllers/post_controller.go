package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kadirhan/alumniport/internal/app/models/dto"
	"github.com/kadirhan/alumniport/internal/app/services"
	"github.com/kadirhan/alumniport/internal/middleware"
)

// PostController handles the feed endpoints.
type PostController struct {
	postService *services.PostService
	logger      zerolog.Logger
}

// NewPostController creates a new PostController.
func NewPostController(postService *services.PostService, logger zerolog.Logger) *PostController {
	return &PostController{postService: postService, logger: logger}
}

// Create handles POST /api/posts.
func (c *PostController) Create(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	post, err := c.postService.Create(ctx.Request.Context(), middleware.CurrentActor(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, post)
}

// GetFeed handles GET /api/posts.
func (c *PostController) GetFeed(ctx *gin.Context) {
	posts, err := c.postService.GetFeed(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

// GetByUser handles GET /api/posts/user/:id.
func (c *PostController) GetByUser(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	posts, err := c.postService.GetByUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

// ToggleLike handles PUT /api/posts/:id/like.
func (c *PostController) ToggleLike(ctx *gin.Context) {
	postID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	post, err := c.postService.ToggleLike(ctx.Request.Context(), middleware.CurrentActor(ctx), postID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// Comment handles POST /api/posts/:id/comment.
func (c *PostController) Comment(ctx *gin.Context) {
	postID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	post, err := c.postService.Comment(ctx.Request.Context(), middleware.CurrentActor(ctx), postID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, post)
}

// Delete handles DELETE /api/posts/:id.
func (c *PostController) Delete(ctx *gin.Context) {
	postID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.postService.Delete(ctx.Request.Context(), middleware.CurrentActor(ctx), postID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Post removed"))
}
