package contact

import (
	"codeberg.org/crumbs/server/internal/content"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router gin.IRoutes, site *content.Site) {
	router.POST("/contact", SubmitHandler(site))
}
