// Package llm talks to a locally reachable chat-completion endpoint
// (LM Studio style API).
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/mack42/weekly-uptime-status-report/internal/config"
	"github.com/mack42/weekly-uptime-status-report/pkg/util"
)

const (
	completionTemperature = 0.3
	completionMaxTokens   = 4000
)

// Client issues single blocking completion requests.
type Client struct {
	httpClient *http.Client
	url        string
	model      string
	logger     *zap.Logger
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float32   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Stream      bool      `json:"stream"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient constructs a client from config.
func NewClient(cfg config.LLMConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: util.NewHTTPClient(cfg.Timeout()),
		url:        cfg.URL,
		model:      cfg.Model,
		logger:     logger,
	}
}

// Complete sends one system+user exchange and returns the first choice's
// content. Any transport failure, non-2xx status, malformed body or empty
// choice list is an error; the caller decides whether that is fatal.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	payload, err := json.Marshal(completionRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
		Stream:      false,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("sending completion request", zap.String("model", c.model))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("completion endpoint status %s: %s", resp.Status, truncate(body, 500))
	}

	var cr completionResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("decode completion response: %w (body: %s)", err, truncate(body, 500))
	}
	if len(cr.Choices) == 0 {
		return "", util.NewLLMResponseError("completion response has no choices")
	}
	return cr.Choices[0].Message.Content, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}
