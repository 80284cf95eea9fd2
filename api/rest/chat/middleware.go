package chat

import (
	"fmt"

	"codeberg.org/crumbs/server/internal/errors"
	"codeberg.org/crumbs/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// per-client limit for chat requests, keyed by client IP.
// formatted is a limiter rate such as "20-M".
func RateLimitMiddleware(formatted string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid chat rate limit %q: %w", formatted, err)
	}

	instance := limiter.New(memory.NewStore(), rate)

	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			logger.Warn("chat rate limit reached", "client_ip", c.ClientIP())
			errors.TooManyRequests(c, "too many messages, please wait a moment")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			errors.InternalError(c, "rate limiter failed", err)
		}),
	), nil
}
