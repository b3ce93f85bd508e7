package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
)

// ErrNoMessage is returned when the chat service responds without a message.
var ErrNoMessage = errors.New("chat response contains no message")

type Client struct {
	api    *api.Client
	logger *slog.Logger
}

// NewClient connects to an Ollama server at host:port. A host without a
// scheme is assumed to be plain http.
func NewClient(host string, port int, logger *slog.Logger) *Client {
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}

	base, err := url.Parse(fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		// Fall back to the default local server; config validation keeps
		// this from being reachable with a well-formed host.
		base = &url.URL{Scheme: "http", Host: "127.0.0.1:11434"}
	}

	return &Client{
		api:    api.NewClient(base, &http.Client{}),
		logger: logger.With("component", "ollama-client"),
	}
}

// Chat sends an ordered conversation to the model and returns the response
// message content verbatim. The request asks the model for JSON output.
func (c *Client) Chat(ctx context.Context, model string, messages []api.Message) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model:    model,
		Messages: messages,
		Stream:   &stream,
		Format:   json.RawMessage(`"json"`),
	}

	c.logger.Debug("sending chat request", "model", model, "message_count", len(messages))

	var content string
	var received bool
	err := c.api.Chat(ctx, req, func(resp api.ChatResponse) error {
		content = resp.Message.Content
		received = true
		return nil
	})
	if err != nil {
		c.logger.Error("chat request failed", "model", model, "error", err)
		return "", fmt.Errorf("failed to chat: %w", err)
	}

	if !received || content == "" {
		return "", ErrNoMessage
	}

	c.logger.Debug("received chat response", "model", model, "content_length", len(content))

	return content, nil
}
