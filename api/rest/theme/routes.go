package theme

import (
	"codeberg.org/crumbs/server/internal/theme"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, store *theme.SessionStore) {
	themeGroup := router.Group("/theme")
	{
		themeGroup.GET("", GetThemeHandler(store))
		themeGroup.PUT("", UpdateThemeHandler(store))
		themeGroup.POST("/next", NextThemeHandler(store))
	}
}
