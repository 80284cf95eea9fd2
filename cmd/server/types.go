package main

import (
	"time"

	chatapi "codeberg.org/crumbs/server/api/rest/chat"
	"codeberg.org/crumbs/server/internal/botdefense"
	"codeberg.org/crumbs/server/internal/config"
	"codeberg.org/crumbs/server/internal/content"
	"codeberg.org/crumbs/server/internal/theme"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config   *config.Config
	site     *content.Site
	themes   *theme.SessionStore
	services *Services
	defense  *botdefense.Defense
	router   *gin.Engine
}

// holds external service clients and request guards
type Services struct {
	Chat      chatapi.Service
	ChatLimit gin.HandlerFunc
}

// showcase timing shared by the API and the rendered pages
type showcaseTiming struct {
	dwell        time.Duration
	advanceDelay time.Duration
}
