package main

import (
	"fmt"

	chatapi "codeberg.org/crumbs/server/api/rest/chat"
	"codeberg.org/crumbs/server/internal/chat"
	"codeberg.org/crumbs/server/internal/config"
	"codeberg.org/crumbs/server/internal/logger"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config) (*Services, error) {
	client := chat.NewClient(chat.Config{
		APIKey:  cfg.OpenRouterKey,
		URL:     cfg.OpenRouterURL,
		Model:   cfg.OpenRouterModel,
		Referer: cfg.BaseURL,
	})

	// a missing key is reported per request, the pages stay up
	if err := client.Validate(); err != nil {
		logger.Warn("chat is not configured", "reason", err.Error())
	}

	limit, err := chatapi.RateLimitMiddleware(cfg.ChatRateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat rate limiter: %w", err)
	}

	return &Services{
		Chat:      client,
		ChatLimit: limit,
	}, nil
}
