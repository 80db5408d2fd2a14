package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sheweds-backend/internal/models"
	"sheweds-backend/internal/service"
	"sheweds-backend/pkg/logger"
)

type PageHandler struct {
	pageService *service.PageService
}

func NewPageHandler(pageService *service.PageService) *PageHandler {
	return &PageHandler{pageService: pageService}
}

// List returns every page config sorted by slug.
func (h *PageHandler) List(c *gin.Context) {
	pages, err := h.pageService.GetAll()
	if err != nil {
		logger.Error(err, "Failed to list pages", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load pages"})
		return
	}
	c.JSON(http.StatusOK, pages)
}

// Get returns one page config by slug.
func (h *PageHandler) Get(c *gin.Context) {
	page, err := h.pageService.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
			return
		}
		logger.Error(err, "Failed to load page", map[string]interface{}{"slug": c.Param("slug")})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load page"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// Create adds a new empty page.
func (h *PageHandler) Create(c *gin.Context) {
	var req models.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page name is required"})
		return
	}

	page, err := h.pageService.Create(req.Name, req.Slug)
	if err != nil {
		if errors.Is(err, service.ErrPageExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, page)
}

// Save replaces a page config wholesale.
func (h *PageHandler) Save(c *gin.Context) {
	var req models.SavePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page config is required"})
		return
	}

	if req.Config.Slug != c.Param("slug") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug mismatch"})
		return
	}

	if err := h.pageService.Save(req.Config); err != nil {
		logger.Error(err, "Failed to save page", map[string]interface{}{"slug": req.Config.Slug})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save page"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a page by id.
func (h *PageHandler) Delete(c *gin.Context) {
	if err := h.pageService.Delete(c.Param("id")); err != nil {
		logger.Error(err, "Failed to delete page", map[string]interface{}{"id": c.Param("id")})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete page"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
