package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultOpenRouterURL   = "https://openrouter.ai/api/v1/chat/completions"
	defaultOpenRouterModel = "openai/gpt-3.5-turbo"
	defaultPort            = "8080"
	defaultBaseURL         = "http://localhost:8080"
	defaultChatRateLimit   = "20-M"
	defaultSiteRateLimit   = "300-M"
	defaultShowcaseDwell   = 8 * time.Second
	defaultShowcaseDelay   = 200 * time.Millisecond
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	dwell, err := durationFromEnv("SHOWCASE_DWELL", defaultShowcaseDwell)
	if err != nil {
		return nil, err
	}

	delay, err := durationFromEnv("SHOWCASE_ADVANCE_DELAY", defaultShowcaseDelay)
	if err != nil {
		return nil, err
	}

	botDefense := true
	if raw := os.Getenv("BOT_DEFENSE"); raw != "" {
		botDefense, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid BOT_DEFENSE: %w", err)
		}
	}

	// the chat key is optional at startup; chat endpoints report it as unconfigured
	return &Config{
		OpenRouterKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterURL:   envOr("OPENROUTER_URL", defaultOpenRouterURL),
		OpenRouterModel: envOr("OPENROUTER_MODEL", defaultOpenRouterModel),
		SessionSecret:   sessionSecret,
		BaseURL:         envOr("BASE_URL", defaultBaseURL),
		Port:            envOr("PORT", defaultPort),
		Environment:     envOr("ENVIRONMENT", "development"),
		AllowedOrigins:  splitList(os.Getenv("ALLOWED_ORIGINS")),
		ChatRateLimit:   envOr("CHAT_RATE_LIMIT", defaultChatRateLimit),
		SiteRateLimit:   envOr("SITE_RATE_LIMIT", defaultSiteRateLimit),
		BotDefense:      botDefense,
		ShowcaseDwell:   dwell,
		ShowcaseDelay:   delay,
	}, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}

	return d, nil
}

// splits a comma separated list, dropping blanks
func splitList(raw string) []string {
	var out []string

	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
