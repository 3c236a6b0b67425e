package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"chatrelay-backend/internal/models"
)

// DefaultBaseURL is the hardcoded fallback address of a locally running daemon.
const DefaultBaseURL = "http://localhost:11434"

// chatRequest is the body posted to the daemon's chat endpoint. Streaming is
// always disabled; the relay returns one complete answer per call.
type chatRequest struct {
	Model    string               `json:"model"`
	Messages []models.ChatMessage `json:"messages"`
	Stream   bool                 `json:"stream"`
}

// StatusError captures a non-2xx response from the daemon. Status is the full
// status line ("404 Not Found"); Body is the raw response body.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ollama: unexpected status %s", e.Status)
}

// Client is a focused HTTP client for the daemon's chat and model-listing
// endpoints. It holds no per-request state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a Client. The request deadline comes from the caller's
// context, so the underlying http.Client carries no timeout of its own.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{httpClient: httpClient}
}

// ResolveBaseURL picks the daemon address: the per-request override if given,
// else the configured default, else DefaultBaseURL. The result is used
// verbatim as a URL prefix; the priority order is fixed.
func ResolveBaseURL(override, configured string) string {
	if override != "" {
		return override
	}
	if configured != "" {
		return configured
	}
	return DefaultBaseURL
}

// Chat posts a completion request to <base>/api/chat and returns the raw
// response body. Messages are forwarded unchanged and in order.
func (c *Client) Chat(ctx context.Context, baseURL, model string, messages []models.ChatMessage) (json.RawMessage, error) {
	body, err := json.Marshal(chatRequest{
		Model:    model,
		Messages: messages,
		Stream:   false,
	})
	if err != nil {
		return nil, fmt.Errorf("ollama: marshal request: %w", err)
	}
	return c.doJSON(ctx, http.MethodPost, baseURL+"/api/chat", bytes.NewReader(body))
}

// Tags fetches the daemon's model list from <base>/api/tags.
func (c *Client) Tags(ctx context.Context, baseURL string) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodGet, baseURL+"/api/tags", nil)
}

func (c *Client) doJSON(ctx context.Context, method, url string, body io.Reader) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("ollama: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ollama: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(raw),
		}
	}

	// A successful status with an unparseable body is a transport failure,
	// not something to normalize around.
	var parsed json.RawMessage
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("ollama: decode response: %w", err)
	}
	return parsed, nil
}
