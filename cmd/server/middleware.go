package main

import (
	"time"

	"codeberg.org/crumbs/server/internal/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// returns the CORS middleware for the configured origins.
// without configured origins, development allows any origin and production none.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	switch {
	case len(cfg.AllowedOrigins) > 0:
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	case cfg.IsProduction():
		return func(c *gin.Context) { c.Next() }
	default:
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}

	return cors.New(corsConfig)
}
