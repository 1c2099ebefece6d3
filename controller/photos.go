package controller

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"gingallery/gallery"
	"gingallery/models"

	"github.com/gin-gonic/gin"
)

// UploadPhotoBefore stores a photo in the list shown before accepting.
func (h *Handler) UploadPhotoBefore(c *gin.Context) {
	h.uploadPhoto(c, gallery.SlotBefore)
}

// UploadPhotoAfter stores a photo in the gallery shown after accepting.
func (h *Handler) UploadPhotoAfter(c *gin.Context) {
	h.uploadPhoto(c, gallery.SlotAfter)
}

func (h *Handler) uploadPhoto(c *gin.Context, slot string) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	categoryID := c.Param("category_id")

	file, err := c.FormFile("file")
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	contentType := file.Header.Get("Content-Type")

	// Cheap checks before reading the payload into memory.
	if err := gallery.Validate(file.Filename, contentType); err != nil {
		renderError(c, err)
		return
	}

	src, err := file.Open()
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing file upload"})
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing file upload"})
		return
	}

	photo, err := h.Uploader.Upload(ctx, categoryID, slot, content, file.Filename, contentType)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{
		Success: true,
		Photo:   photo,
		Message: "Photo uploaded successfully",
	})
}

// DeletePhoto removes a photo from a category list. The backend delete is
// best-effort and runs after the document mutation succeeded.
func (h *Handler) DeletePhoto(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	categoryID := c.Param("category_id")
	photoID := c.Param("photo_id")
	slot := c.Query("photo_type")

	// Look up the file id before the pull so the backend copy can be
	// released too. Best-effort only; the pull below is authoritative.
	var fileID string
	if category, err := h.Categories.FindByID(ctx, categoryID); err == nil {
		for _, photo := range append(category.PhotosBefore, category.PhotosAfter...) {
			if photo.ID == photoID {
				fileID = photo.TelegramFileID
				break
			}
		}
	}

	if err := h.Recorder.Remove(ctx, categoryID, slot, photoID); err != nil {
		renderError(c, err)
		return
	}

	if fileID != "" {
		if _, err := h.Backend.Delete(ctx, fileID); err != nil {
			log.Println("backend delete failed:", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted successfully"})
}
