package chat

import "codeberg.org/crumbs/server/internal/chat"

// a completion backend that can report whether it is configured
type Service interface {
	chat.Completer
	Validate() error
}

type Request struct {
	Messages    []chat.Message    `json:"messages" binding:"required,min=1"`
	Attachments []chat.Attachment `json:"attachments"`
}

type Response struct {
	Message chat.Message `json:"message"`
}

type StatusResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

type Suggestion struct {
	Text   string `json:"text"`
	Prompt string `json:"prompt"`
}
