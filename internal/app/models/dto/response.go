package dto

// MessageResponse is the body of mutations that return no entity.
type MessageResponse struct {
	Message string `json:"message" example:"Post like toggled"`
}

// NewMessageResponse creates a MessageResponse.
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
