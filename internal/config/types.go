package config

import "time"

type Config struct {
	OpenRouterKey   string
	OpenRouterURL   string
	OpenRouterModel string
	SessionSecret   string
	BaseURL         string
	Port            string
	Environment     string
	AllowedOrigins  []string
	ChatRateLimit   string // ulule/limiter format, e.g. "20-M"
	SiteRateLimit   string
	BotDefense      bool
	ShowcaseDwell   time.Duration
	ShowcaseDelay   time.Duration
}

// reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

type Flags struct {
	Port     string
	Endpoint string
	Env      string
}
