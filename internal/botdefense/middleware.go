package botdefense

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"codeberg.org/crumbs/server/internal/errors"
	"codeberg.org/crumbs/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// orchestrates all bot defense components
type Defense struct {
	config *Config
	store  *Store
}

// creates a new bot defense system
func New(config *Config, store *Store) *Defense {
	return &Defense{
		config: config,
		store:  store,
	}
}

// returns a Gin middleware guarding every route
func (d *Defense) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !d.config.Enabled {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		ip := c.ClientIP()
		path := c.Request.URL.Path

		if d.config.IsExemptPath(path) {
			c.Next()
			return
		}

		if d.config.IsHoneypotPath(path) {
			d.trap(ctx, c, ip, ReasonHoneypot, "path", path)
			return
		}

		if IsSuspiciousPath(path) {
			d.trap(ctx, c, ip, ReasonProbe, "path", path)
			return
		}

		trapped, err := d.store.IsTrapped(ctx, ip)
		if err != nil {
			logger.ErrorErr(err, "failed to check trapped status", "ip", ip)
		} else if trapped {
			logger.Debug("trapped IP request blocked", "ip", ip, "path", path)
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		reached, reset, err := d.store.IncrementRate(ctx, ip)
		if err != nil {
			logger.ErrorErr(err, "failed to increment rate", "ip", ip)
		} else if reached {
			logger.Warn("rate limit exceeded", "ip", ip)

			c.Header("Retry-After", strconv.Itoa(max(1, int(time.Until(reset).Seconds()))))
			errors.TooManyRequests(c, "too many requests. please slow down.")
			c.Abort()
			return
		}

		c.Next()
	}
}

// returns a middleware for browser form posts. POSTs that score as bots
// trap the sender; every other request passes through.
func (d *Defense) FormGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !d.config.Enabled || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		signals := Detect(c.Request)
		if signals.Score >= BotScoreThreshold {
			d.trap(c.Request.Context(), c, c.ClientIP(), ReasonBotPattern,
				"path", c.Request.URL.Path,
				"score", signals.Score,
				"pattern", signals.PatternMatch,
				"missing_headers", signals.MissingHeaders,
			)
			return
		}

		c.Next()
	}
}

func (d *Defense) trap(ctx context.Context, c *gin.Context, ip string, reason TrapReason, args ...any) {
	logger.Warn("bot defense triggered", append([]any{"ip", ip, "reason", reason}, args...)...)

	if err := d.store.TrapIP(ctx, ip); err != nil {
		logger.ErrorErr(err, "failed to trap IP", "ip", ip)
	}

	c.AbortWithStatus(http.StatusNotFound)
}
