package chat

import (
	"codeberg.org/crumbs/server/internal/content"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, svc Service, site *content.Site, limit gin.HandlerFunc) {
	chatGroup := router.Group("/chat")
	{
		chatGroup.GET("/status", StatusHandler(svc))
		chatGroup.GET("/suggestions", SuggestionsHandler(site))

		handlers := []gin.HandlerFunc{SendMessageHandler(svc)}
		if limit != nil {
			handlers = append([]gin.HandlerFunc{limit}, handlers...)
		}

		chatGroup.POST("", handlers...)
	}
}
