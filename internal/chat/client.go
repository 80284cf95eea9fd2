package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"codeberg.org/crumbs/server/internal/logger"
	"golang.org/x/time/rate"
)

// shared HTTP client for completion calls
var openRouterHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// outbound limit shared by every client in the process (5 requests/second, burst of 10)
var openRouterRateLimiter = rate.NewLimiter(5, 10)

// checks that a usable key is configured
func ValidateAPIKey(key string) error {
	switch key {
	case "":
		return ErrMissingAPIKey
	case PlaceholderAPIKey:
		return ErrPlaceholderAPIKey
	}

	return nil
}

type Client struct {
	config     Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(config Config) *Client {
	if config.URL == "" {
		config.URL = DefaultURL
	}

	if config.Model == "" {
		config.Model = DefaultModel
	}

	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultMaxTokens
	}

	if config.Temperature == 0 {
		config.Temperature = DefaultTemperature
	}

	if config.Title == "" {
		config.Title = DefaultTitle
	}

	return &Client{
		config:     config,
		httpClient: openRouterHTTPClient,
		limiter:    openRouterRateLimiter,
	}
}

// replaces the HTTP client, mainly for tests
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// replaces the outbound limiter
func (c *Client) withLimiter(l *rate.Limiter) *Client {
	c.limiter = l
	return c
}

func (c *Client) Model() string {
	return c.config.Model
}

// reports whether the configured key is usable
func (c *Client) Validate() error {
	return ValidateAPIKey(c.config.APIKey)
}

// sends the full history and returns the first choice's message
func (c *Client) Complete(ctx context.Context, messages []Message) (Message, error) {
	if err := c.Validate(); err != nil {
		return Message{}, err
	}

	if len(messages) == 0 {
		return Message{}, ErrEmptyMessage
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return Message{}, fmt.Errorf("rate limiter: %w", err)
	}

	jsonData, err := json.Marshal(completionRequest{
		Model:       c.config.Model,
		Messages:    messages,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
		Stream:      false,
	})
	if err != nil {
		return Message{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewBuffer(jsonData))
	if err != nil {
		return Message{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("X-Title", c.config.Title)
	if c.config.Referer != "" {
		req.Header.Set("HTTP-Referer", c.config.Referer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Message{}, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)

		var errResp errorResponse
		_ = json.Unmarshal(body, &errResp)

		logger.Warn("completion request failed",
			"status", resp.StatusCode,
			"model", c.config.Model,
		)

		return Message{}, newAPIError(resp.StatusCode, errResp.Error.Message)
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return Message{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return Message{}, ErrEmptyResponse
	}

	reply := completion.Choices[0].Message
	if reply.Role == "" {
		reply.Role = RoleAssistant
	}

	logger.Debug("completion received",
		"model", completion.Model,
		"total_tokens", completion.Usage.TotalTokens,
	)

	return reply, nil
}
