package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"a11y-lint/src/config"
	"a11y-lint/src/util"
)

// ErrMissingAPIKey is returned when no credential for the text-generation
// service is configured. It is a user-facing failure, never a silent no-op.
var ErrMissingAPIKey = errors.New("no API key configured; set A11Y_LINT_API_KEY or genai.api_key in the config file")

// ErrEmptyResponse is returned when the service answers without usable
// text. An empty suggestion is a failure, not an instruction to insert an
// empty attribute.
var ErrEmptyResponse = errors.New("text-generation service returned an empty response")

// Client provides access to the external text-generation service used by
// the assisted-repair workflow.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	retryConf  config.RetryConfig
}

// NewClient creates a new text-generation client
func NewClient(cfg config.GenAIConfig) *Client {
	return &Client{
		baseURL: cfg.URL,
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		retryConf: cfg.Retry,
	}
}

// Suggest sends a system instruction and a user message and returns the
// trimmed plain-text suggestion.
func (c *Client) Suggest(ctx context.Context, system, user string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	util.Debug("Requesting suggestion from %s (model: %s)", c.baseURL, c.model)

	req := ChatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   120,
		Temperature: 0.2,
	}

	var resp ChatResponse
	if err := c.post(ctx, req, &resp); err != nil {
		util.Error("Suggestion request failed: %v", err)
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}

	util.Debug("Received suggestion (%d characters)", len(text))
	return text, nil
}

func (c *Client) post(ctx context.Context, body any, result any) error {
	var lastErr error

	for attempt := 0; attempt <= c.retryConf.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := c.calculateBackoff(attempt)
			util.Warn("Retrying suggestion request (attempt %d/%d) after %v", attempt+1, c.retryConf.MaxAttempts, delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err := c.doPost(ctx, body, result)
		if err == nil {
			return nil
		}

		lastErr = err
		if !c.shouldRetry(err) {
			break
		}
	}

	return lastErr
}

func (c *Client) doPost(ctx context.Context, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	delay := float64(c.retryConf.InitialDelay)
	for i := 0; i < attempt; i++ {
		delay *= c.retryConf.BackoffFactor
	}
	if delay > float64(c.retryConf.MaxDelay) {
		delay = float64(c.retryConf.MaxDelay)
	}
	return time.Duration(delay)
}

func (c *Client) shouldRetry(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		for _, code := range c.retryConf.RetryOnStatus {
			if apiErr.StatusCode == code {
				return true
			}
		}
	}
	return false
}

// APIError represents an error response from the text-generation service
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("text-generation service error (status %d): %s", e.StatusCode, e.Body)
}
