package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RandomProposal returns every category together with the global music
// settings, which is all the public frontend needs to render a proposal.
func (h *Handler) RandomProposal(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	categories, err := h.Categories.FindAll(ctx)
	if err != nil {
		renderError(c, err)
		return
	}
	if len(categories) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No categories found"})
		return
	}

	settings, err := h.Settings.Get(ctx)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories":   categories,
		"music_before": settings.BeforeAcceptMusic,
		"music_after":  settings.AfterAcceptMusic,
	})
}

// Health reports whether the document store is reachable.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	db := "connected"
	if err := h.Client.Ping(ctx, nil); err != nil {
		status = "degraded"
		db = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"database": db,
	})
}
