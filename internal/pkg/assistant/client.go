// Package assistant wraps the Ollama API client behind the small surface
// the chat endpoint needs. The backend is optional: when no base URL is
// configured the constructor returns a nil client and the service reports
// the assistant as unavailable instead of failing startup.
package assistant

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

// Config holds settings for the assistant backend.
type Config struct {
	// BaseURL is the HTTP endpoint of the Ollama instance,
	// e.g. http://localhost:11434. Empty disables the assistant.
	BaseURL string
	// Model is the model name requests are routed to.
	Model string
	// Timeout is the per-request timeout.
	Timeout time.Duration
}

const systemPrompt = "You are a helpful assistant for an alumni network. " +
	"Answer questions about networking, careers, mentorship and events. " +
	"Keep answers short and practical."

// Client talks to a single Ollama model.
type Client struct {
	api   *api.Client
	model string
}

// NewClient creates an assistant client, or nil when cfg.BaseURL is empty.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, nil
	}

	u, err := url.ParseRequestURI(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid assistant base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		api:   api.NewClient(u, &http.Client{Timeout: timeout}),
		model: cfg.Model,
	}, nil
}

// Chat sends one user message and returns the model's complete reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model:  c.model,
		Stream: &stream,
		Messages: []api.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: message},
		},
	}

	var reply strings.Builder
	err := c.api.Chat(ctx, req, func(resp api.ChatResponse) error {
		reply.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("assistant chat failed: %w", err)
	}
	return reply.String(), nil
}
