package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"campus-cafeteria/internal/domain"
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the text generation collaborator over HTTP.
type Client struct {
	baseURL string
	client  HTTPClient
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

func NewClientWithHTTP(baseURL string, client HTTPClient) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

type chatResponse struct {
	Message string `json:"message"`
	// older deployments answer {success, data}
	Success *bool  `json:"success"`
	Data    string `json:"data"`
}

// Generate posts the prompt to <base>/chat. Every failure is reported as an
// external service error.
func (c *Client) Generate(ctx context.Context, prompt domain.ChatPrompt) (string, error) {
	if c.baseURL == "" {
		return "", domain.ExternalServicef("llm api url is not configured")
	}

	body, err := json.Marshal(prompt)
	if err != nil {
		return "", domain.ExternalServicef("encode llm request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", domain.ExternalServicef("build llm request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", domain.ExternalServicef("llm request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.ExternalServicef("read llm response: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", domain.ExternalServicef("llm api returned status %d", resp.StatusCode)
	}

	return parseReply(raw)
}

func parseReply(raw []byte) (string, error) {
	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", domain.ExternalServicef("decode llm response: %v", err)
	}
	if strings.TrimSpace(parsed.Message) != "" {
		return parsed.Message, nil
	}
	if parsed.Success != nil && *parsed.Success && strings.TrimSpace(parsed.Data) != "" {
		return parsed.Data, nil
	}
	return "", domain.ExternalServicef("unexpected llm response: %s", truncate(string(raw), 200))
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return fmt.Sprintf("%s...", s[:n])
}
