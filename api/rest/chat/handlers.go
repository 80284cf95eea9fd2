package chat

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"codeberg.org/crumbs/server/internal/chat"
	"codeberg.org/crumbs/server/internal/content"
	"codeberg.org/crumbs/server/internal/errors"
	"codeberg.org/crumbs/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// reports whether the completion key is usable
func StatusHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Validate(); err != nil {
			c.JSON(http.StatusOK, StatusResponse{Valid: false, Message: err.Error()})
			return
		}

		c.JSON(http.StatusOK, StatusResponse{Valid: true})
	}
}

// returns the prompt chips shown on an empty conversation
func SuggestionsHandler(site *content.Site) gin.HandlerFunc {
	return func(c *gin.Context) {
		out := make([]Suggestion, len(site.Suggestions))
		for i, s := range site.Suggestions {
			out[i] = Suggestion{Text: s.Text, Prompt: s.Prompt}
		}

		c.JSON(http.StatusOK, SuggestionsResponse{Suggestions: out})
	}
}

// sends the history to the completion backend and returns the reply.
// the last message is the new user turn; attachments are listed under it.
func SendMessageHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Validate(); err != nil {
			errors.ServiceUnavailable(c, err.Error())
			return
		}

		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		conv, err := buildConversation(req)
		if err != nil {
			errors.BadRequest(c, err.Error(), nil)
			return
		}

		reply, err := conv.Reply(c.Request.Context(), svc)
		if err != nil {
			var apiErr *chat.APIError
			if stderrors.As(err, &apiErr) {
				logger.Warn("completion upstream rejected request", "status", apiErr.Status)
			}

			errors.BadGateway(c, reply.Content, err)
			return
		}

		c.JSON(http.StatusOK, Response{Message: reply})
	}
}

func buildConversation(req Request) (*chat.Conversation, error) {
	last := len(req.Messages) - 1

	for i, m := range req.Messages {
		if !m.Role.Valid() {
			return nil, fmt.Errorf("message %d has unknown role %q", i, m.Role)
		}
	}

	if req.Messages[last].Role != chat.RoleUser {
		return nil, fmt.Errorf("last message must come from the user")
	}

	conv := chat.NewConversation(req.Messages[:last]...)
	if _, err := conv.AddUser(req.Messages[last].Content, req.Attachments); err != nil {
		return nil, err
	}

	return conv, nil
}
