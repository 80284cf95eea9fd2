package pages

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRoutes, deps Deps) {
	router.GET("/", HomeHandler(deps))
	router.GET("/pricing", PricingHandler(deps))
	router.GET("/ai", ChatPageHandler(deps))
	router.POST("/ai", ChatSubmitHandler(deps))
	router.POST("/theme/next", NextThemeHandler(deps))
}
