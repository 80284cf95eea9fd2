package chat

import (
	"context"
	"errors"
	"fmt"
)

const (
	DefaultURL         = "https://openrouter.ai/api/v1/chat/completions"
	DefaultModel       = "openai/gpt-3.5-turbo"
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.7
	DefaultTitle       = "Frontend AI Chat"

	// value shipped in the example env file
	PlaceholderAPIKey = "your_openrouter_api_key_here"

	// appended to the conversation when a reply could not be produced
	FallbackReply = "Sorry, I encountered an error. Please try again later."
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}

	return false
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// a file the user attached; only its name and size reach the model
type Attachment struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// produces the next assistant message for a history
type Completer interface {
	Complete(ctx context.Context, messages []Message) (Message, error)
}

type Config struct {
	APIKey      string
	URL         string
	Model       string
	MaxTokens   int
	Temperature float32
	Referer     string // sent as HTTP-Referer
	Title       string // sent as X-Title
}

var (
	ErrMissingAPIKey     = errors.New("OpenRouter API key is missing. Please add it to your .env file as OPENROUTER_API_KEY.")
	ErrPlaceholderAPIKey = errors.New("Please replace the placeholder API key with your actual OpenRouter API key in the .env file.")
	ErrEmptyMessage      = errors.New("message is empty")
	ErrEmptyResponse     = errors.New("no choices returned")
)

// non-2xx answer from the completion endpoint
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) StatusCode() int {
	return e.Status
}

func newAPIError(status int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("API error: %d", status)
	}

	return &APIError{Status: status, Message: message}
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float32   `json:"temperature"`
	Stream      bool      `json:"stream"`
}

type completionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int     `json:"index"`
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Code    any    `json:"code"`
	} `json:"error"`
}
