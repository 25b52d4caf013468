package dto

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}
