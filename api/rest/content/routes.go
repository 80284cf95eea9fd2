package content

import (
	"time"

	"codeberg.org/crumbs/server/internal/content"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, site *content.Site, dwell, advanceDelay time.Duration) {
	router.GET("/content", GetContentHandler(site))
	router.GET("/showcase", GetShowcaseHandler(site, dwell, advanceDelay))
	router.GET("/pricing", GetPricingHandler(site))
}
