package botdefense

import (
	"strings"
	"time"
)

// holds bot defense configuration
type Config struct {
	// whether bot defense is active
	Enabled bool

	// max requests per IP and window, in ulule/limiter format
	RateLimit string

	// how long an IP stays trapped
	TrapTTL time.Duration

	// paths that only bots would access
	HoneypotPaths []string

	// paths that bypass bot defense (health checks, etc.)
	ExemptPaths []string
}

// returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Enabled:   true,
		RateLimit: "300-M",
		TrapTTL:   24 * time.Hour,
		HoneypotPaths: []string{
			// wordpress
			"/wp-admin",
			"/wp-login.php",
			"/wp-content",
			"/xmlrpc.php",

			// config/secrets
			"/.env",
			"/.git",
			"/config.json",
			"/.aws/credentials",

			// admin panels
			"/admin",
			"/phpmyadmin",

			// backups
			"/backup",
			"/backup.zip",
			"/db.sql",

			// api probing
			"/api/internal",
			"/api/admin",
			"/api/v1/internal",
			"/api/v1/contact/export",
		},
		ExemptPaths: []string{
			"/health",
			"/api/v1/ping",
		},
	}
}

func matchesPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}

	return false
}

// checks if a path is a honeypot (prefix match)
func (c *Config) IsHoneypotPath(path string) bool {
	return matchesPrefix(path, c.HoneypotPaths)
}

// checks if a path bypasses bot defense
func (c *Config) IsExemptPath(path string) bool {
	return matchesPrefix(path, c.ExemptPaths)
}
