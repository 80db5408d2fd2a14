package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sheweds-backend/internal/models"
	"sheweds-backend/internal/service"
	"sheweds-backend/pkg/logger"
)

type HomeHandler struct {
	homeService *service.HomeService
}

func NewHomeHandler(homeService *service.HomeService) *HomeHandler {
	return &HomeHandler{homeService: homeService}
}

// Get returns the home-page document, already migrated and defaulted.
func (h *HomeHandler) Get(c *gin.Context) {
	data, err := h.homeService.Get()
	if err != nil {
		logger.Error(err, "Failed to load home data", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load home data"})
		return
	}
	c.JSON(http.StatusOK, data)
}

// Save replaces the home-page document.
func (h *HomeHandler) Save(c *gin.Context) {
	var data models.HomePageData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid home data"})
		return
	}

	if err := h.homeService.Save(data); err != nil {
		logger.Error(err, "Failed to save home data", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save home data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HeroSlides returns the standalone hero document; an absent file yields an
// empty slide list.
func (h *HomeHandler) HeroSlides(c *gin.Context) {
	doc, err := h.homeService.HeroSlides()
	if err != nil {
		logger.Error(err, "Failed to load hero slides", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load hero slides"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// SaveHeroSlides overwrites the hero document wholesale.
func (h *HomeHandler) SaveHeroSlides(c *gin.Context) {
	var doc models.HeroSlidesDoc
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hero slides"})
		return
	}

	if err := h.homeService.SaveHeroSlides(doc); err != nil {
		logger.Error(err, "Failed to save hero slides", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save hero slides"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
