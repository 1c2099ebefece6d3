package controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"gingallery/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func (h *Handler) CreateCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var payload models.CategoryCreate
	if err := c.ShouldBind(&payload); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation Failed", "details": err.Error()})
		return
	}

	category := models.NewCategory(payload.Name, payload.Sentences)
	if err := h.Categories.Insert(ctx, &category); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *Handler) GetCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	categories, err := h.Categories.FindAll(ctx)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *Handler) GetCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	category, err := h.Categories.FindByID(ctx, c.Param("category_id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	categoryID := c.Param("category_id")

	var payload models.CategoryUpdate
	if err := c.ShouldBind(&payload); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	if err := h.Categories.Update(ctx, categoryID, payload); err != nil {
		renderError(c, err)
		return
	}

	category, err := h.Categories.FindByID(ctx, categoryID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.Categories.Delete(ctx, c.Param("category_id")); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
