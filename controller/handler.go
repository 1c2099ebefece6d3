package controller

import (
	"errors"
	"log"
	"net/http"

	"gingallery/database"
	"gingallery/gallery"
	"gingallery/storage"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Handler holds the process-lifetime collaborators, wired once in main.
type Handler struct {
	Client     *mongo.Client
	Categories *database.CategoryStore
	Settings   *database.SettingsStore
	Backend    storage.Backend
	Uploader   *gallery.Uploader
	Recorder   *gallery.Recorder
}

// renderError maps the error taxonomy onto HTTP statuses. Anything not in
// the taxonomy is an internal fault: logged in full, returned generic.
func renderError(c *gin.Context, err error) {
	var validationErr *gallery.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
		return
	}
	if errors.Is(err, gallery.ErrCategoryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var uploadErr *storage.UploadError
	var resolutionErr *storage.ResolutionError
	if errors.As(err, &uploadErr) || errors.As(err, &resolutionErr) {
		log.Println("storage error:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	log.Println("internal error:", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
