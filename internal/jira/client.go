package jira

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/mack42/weekly-uptime-status-report/internal/config"
	"github.com/mack42/weekly-uptime-status-report/pkg/util"
)

// Client fetches issue descriptions from the ticketing system's REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	email      string
	token      string
	logger     *zap.Logger
}

type issue struct {
	Fields issueFields `json:"fields"`
}

type issueFields struct {
	Description *string `json:"description"`
}

// NewClient constructs a client from config.
func NewClient(cfg config.JiraConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: util.NewHTTPClient(cfg.Timeout()),
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		email:      cfg.Email,
		token:      cfg.Token,
		logger:     logger,
	}
}

// FetchDescription retrieves the description field of one issue. Some
// instances accept a bearer API token, others only email:token basic auth,
// so a failed bearer attempt is retried once with basic credentials.
func (c *Client) FetchDescription(ctx context.Context, key string) (string, error) {
	url := fmt.Sprintf("%s/rest/api/2/issue/%s", c.baseURL, key)

	resp, err := c.get(ctx, url, "Bearer "+c.token)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		drain(resp)
		basic := base64.StdEncoding.EncodeToString([]byte(c.email + ":" + c.token))
		resp, err = c.get(ctx, url, "Basic "+basic)
		if err != nil {
			return "", err
		}
	}
	defer drain(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch issue %s: status %s", key, resp.Status)
	}

	var iss issue
	if err := json.NewDecoder(resp.Body).Decode(&iss); err != nil {
		return "", fmt.Errorf("decode issue %s: %w", key, err)
	}
	if iss.Fields.Description == nil {
		return "", nil
	}
	return *iss.Fields.Description, nil
}

func (c *Client) get(ctx context.Context, url, authorization string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", authorization)
	req.Header.Set("Accept", "application/json")
	return c.httpClient.Do(req)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
