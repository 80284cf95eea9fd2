package pages

import (
	"time"

	chatapi "codeberg.org/crumbs/server/api/rest/chat"
	"codeberg.org/crumbs/server/internal/content"
	"codeberg.org/crumbs/server/internal/theme"
)

// everything the HTML handlers need
type Deps struct {
	Site         *content.Site
	Themes       *theme.SessionStore
	Chat         chatapi.Service
	Dwell        time.Duration
	AdvanceDelay time.Duration
}

const contactFailedMessage = "Please fill in your name, a valid email, a subject and a message."
