package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kadirhan/alumniport/internal/pkg/apperrors"
	"github.com/kadirhan/alumniport/internal/pkg/assistant"
)

// ChatService proxies user messages to the configured assistant backend.
type ChatService struct {
	client *assistant.Client
	logger zerolog.Logger
}

// NewChatService creates a new ChatService. client may be nil when no
// assistant backend is configured.
func NewChatService(client *assistant.Client, logger zerolog.Logger) *ChatService {
	return &ChatService{client: client, logger: logger}
}

// Chat returns the assistant's reply to one message.
func (s *ChatService) Chat(ctx context.Context, message string) (string, error) {
	if s.client == nil {
		return "", apperrors.ErrAssistantUnavailable
	}

	reply, err := s.client.Chat(ctx, message)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Assistant request failed")
		return "", apperrors.ErrAssistantUnavailable
	}
	return reply, nil
}
