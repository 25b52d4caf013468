package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kadirhan/alumniport/internal/app/models/dto"
	"github.com/kadirhan/alumniport/internal/app/services"
	"github.com/kadirhan/alumniport/internal/middleware"
)

// ChatController handles the assistant endpoint.
type ChatController struct {
	chatService *services.ChatService
	logger      zerolog.Logger
}

// NewChatController creates a new ChatController.
func NewChatController(chatService *services.ChatService, logger zerolog.Logger) *ChatController {
	return &ChatController{chatService: chatService, logger: logger}
}

// Chat handles POST /api/chat.
func (c *ChatController) Chat(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	reply, err := c.chatService.Chat(ctx.Request.Context(), req.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ChatResponse{Reply: reply})
}
