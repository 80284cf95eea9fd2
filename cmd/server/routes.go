package main

import (
	chatapi "codeberg.org/crumbs/server/api/rest/chat"
	"codeberg.org/crumbs/server/api/rest/contact"
	contentapi "codeberg.org/crumbs/server/api/rest/content"
	"codeberg.org/crumbs/server/api/rest/health"
	"codeberg.org/crumbs/server/api/rest/pages"
	themeapi "codeberg.org/crumbs/server/api/rest/theme"
	"github.com/gin-gonic/gin"
)

// sets up all API routes, pages, and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config))
	router.Use(server.defense.Middleware())
	router.GET("/health", health.Handler)

	timing := server.timing()

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		contentapi.RegisterRoutes(v1, server.site, timing.dwell, timing.advanceDelay)
		themeapi.RegisterRoutes(v1, server.themes)
		chatapi.RegisterRoutes(v1, server.services.Chat, server.site, server.services.ChatLimit)
		contact.RegisterRoutes(v1, server.site)
	}

	// server-rendered site; the footer form posts here
	site := router.Group("", server.defense.FormGuard())
	contact.RegisterRoutes(site, server.site)
	pages.RegisterRoutes(site, pages.Deps{
		Site:         server.site,
		Themes:       server.themes,
		Chat:         server.services.Chat,
		Dwell:        timing.dwell,
		AdvanceDelay: timing.advanceDelay,
	})
}
