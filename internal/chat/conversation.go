package chat

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// an append-only chat history. not safe for concurrent use.
type Conversation struct {
	messages []Message
}

func NewConversation(history ...Message) *Conversation {
	return &Conversation{messages: slices.Clone(history)}
}

func (c *Conversation) Messages() []Message {
	return slices.Clone(c.messages)
}

func (c *Conversation) Len() int {
	return len(c.messages)
}

// appends a user turn built from the text and attachment list
func (c *Conversation) AddUser(text string, attachments []Attachment) (Message, error) {
	content := FormatUserContent(text, attachments)
	if content == "" {
		return Message{}, ErrEmptyMessage
	}

	msg := Message{Role: RoleUser, Content: content}
	c.messages = append(c.messages, msg)

	return msg, nil
}

// asks the completer for the next turn. on failure the fallback reply is
// appended and the error is returned with it.
func (c *Conversation) Reply(ctx context.Context, completer Completer) (Message, error) {
	reply, err := completer.Complete(ctx, c.Messages())
	if err != nil {
		fallback := Message{Role: RoleAssistant, Content: FallbackReply}
		c.messages = append(c.messages, fallback)

		return fallback, err
	}

	c.messages = append(c.messages, reply)
	return reply, nil
}

// joins trimmed text with an "Attached files" list
func FormatUserContent(text string, attachments []Attachment) string {
	content := strings.TrimSpace(text)
	if len(attachments) == 0 {
		return content
	}

	lines := make([]string, len(attachments))
	for i, a := range attachments {
		lines[i] = fmt.Sprintf("- %s (%.1f KB)", a.Name, float64(a.Size)/1024)
	}

	list := "Attached files:\n" + strings.Join(lines, "\n")
	if content == "" {
		return list
	}

	return content + "\n\n" + list
}
