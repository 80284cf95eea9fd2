package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"codeberg.org/crumbs/server/internal/chat"
	tea "github.com/charmbracelet/bubbletea"
)

// timeout for chat requests
const chatRequestTimeout = 60 * time.Second

// manages HTTP requests to the chat REST API
type RESTClient struct {
	endpoint   string
	httpClient *http.Client
}

// creates a new chat REST client for the server at endpoint
func NewRESTClient(endpoint string) *RESTClient {
	return &RESTClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: chatRequestTimeout,
		},
	}
}

func (c *RESTClient) Endpoint() string {
	return c.endpoint
}

// sends the conversation and returns the assistant reply
func (c *RESTClient) Complete(ctx context.Context, messages []chat.Message) (chat.Message, error) {
	payloadBytes, err := json.Marshal(chatRequest{Messages: messages})
	if err != nil {
		return chat.Message{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.endpoint + "/api/v1/chat"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadBytes))
	if err != nil {
		return chat.Message{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	var result chatResponse
	if err := c.do(req, &result); err != nil {
		return chat.Message{}, err
	}

	return result.Message, nil
}

func (c *RESTClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
			if errResp.Details != "" {
				return fmt.Errorf("%s (%s)", errResp.Message, errResp.Details)
			}

			return fmt.Errorf("%s", errResp.Message)
		}

		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// returns a tea.Cmd that sends the conversation
func (c *RESTClient) SendCmd(messages []chat.Message) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chatRequestTimeout)
		defer cancel()

		reply, err := c.Complete(ctx, messages)
		if err != nil {
			return ChatErrorMsg{err: err}
		}

		return ChatResponseMsg{message: reply}
	}
}

// REST API request/response types

type chatRequest struct {
	Messages []chat.Message `json:"messages"`
}

type chatResponse struct {
	Message chat.Message `json:"message"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
