package route

import (
	"gingallery/controller"

	"github.com/gin-gonic/gin"
)

func Public(router *gin.Engine, h *controller.Handler) {
	router.POST("/api/auth/login", controller.Login)
	router.POST("/api/auth/logout", controller.Logout)
	router.GET("/api/public/settings", h.GetSettings)
	router.GET("/api/public/random-proposal", h.RandomProposal)
	router.GET("/api/health", h.Health)
}
