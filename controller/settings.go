package controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"gingallery/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetSettings(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	settings, err := h.Settings.Get(ctx)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var payload models.GlobalSettingsUpdate
	if err := c.ShouldBind(&payload); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	settings, err := h.Settings.Update(ctx, payload)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
