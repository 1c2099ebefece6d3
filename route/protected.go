package route

import (
	"gingallery/controller"
	mw "gingallery/middlewares"

	"github.com/gin-gonic/gin"
)

func Protected(router *gin.Engine, h *controller.Handler) {

	admin := router.Group("/api/admin")

	admin.Use(mw.JWT(), mw.AdminOnly())
	admin.GET("/settings", h.GetSettings)
	admin.PUT("/settings", h.UpdateSettings)
	admin.POST("/categories", h.CreateCategory)
	admin.GET("/categories", h.GetCategories)
	admin.GET("/categories/:category_id", h.GetCategory)
	admin.PUT("/categories/:category_id", h.UpdateCategory)
	admin.DELETE("/categories/:category_id", h.DeleteCategory)
	admin.POST("/categories/:category_id/upload-photo-before", h.UploadPhotoBefore)
	admin.POST("/categories/:category_id/upload-photo-after", h.UploadPhotoAfter)
	admin.DELETE("/categories/:category_id/photos/:photo_id", h.DeletePhoto)
}
