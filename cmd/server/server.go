package main

import (
	"fmt"

	"codeberg.org/crumbs/server/internal/botdefense"
	"codeberg.org/crumbs/server/internal/config"
	"codeberg.org/crumbs/server/internal/content"
	"codeberg.org/crumbs/server/internal/logger"
	"codeberg.org/crumbs/server/internal/theme"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	site, err := content.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load site content: %w", err)
	}

	services, err := InitializeServices(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	defenseConfig := botdefense.DefaultConfig()
	defenseConfig.Enabled = cfg.BotDefense
	defenseConfig.RateLimit = cfg.SiteRateLimit

	defenseStore, err := botdefense.NewStore(defenseConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bot defense: %w", err)
	}

	themes := theme.NewSessionStore([]byte(cfg.SessionSecret), cfg.IsProduction())
	router := gin.Default()

	server := &Server{
		config:   cfg,
		site:     site,
		themes:   themes,
		services: services,
		defense:  botdefense.New(defenseConfig, defenseStore),
		router:   router,
	}

	RegisterRoutes(router, server)

	logger.Info("server initialized",
		"environment", cfg.Environment,
		"slides", len(site.Showcase.Slides),
		"chat_rate_limit", cfg.ChatRateLimit,
		"bot_defense", cfg.BotDefense,
	)

	return server, nil
}

func (s *Server) timing() showcaseTiming {
	return showcaseTiming{
		dwell:        s.config.ShowcaseDwell,
		advanceDelay: s.config.ShowcaseDelay,
	}
}
