package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"sheweds-backend/internal/config"
	"sheweds-backend/internal/service"
	"sheweds-backend/pkg/logger"
)

type ProductHandler struct {
	productService *service.ProductService
	cfg            *config.Config
}

func NewProductHandler(productService *service.ProductService, cfg *config.Config) *ProductHandler {
	return &ProductHandler{productService: productService, cfg: cfg}
}

// List returns the whole catalog, optionally filtered by category.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.GetAll()
	if err != nil {
		logger.Error(err, "Failed to list products", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
		return
	}

	if category := c.Query("category"); category != "" {
		filtered := products[:0:0]
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	c.JSON(http.StatusOK, products)
}

// Get returns one product with its related items and a prefilled WhatsApp
// inquiry link.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return
	}

	related, err := h.productService.GetRelated(product.Category, product.ID)
	if err != nil {
		related = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
		"related": related,
		"whatsapp_link": service.WhatsAppLink(
			h.cfg.WhatsAppNumber,
			service.ProductInquiryMessage(product.Name, product.ID),
		),
	})
}

// Create accepts a multipart form with product fields plus image and video
// uploads.
func (h *ProductHandler) Create(c *gin.Context) {
	input, err := h.parseInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form, _ := c.MultipartForm()
	product, err := h.productService.Create(input, formFiles(form, "images"), formFiles(form, "videos"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Update replaces a product's fields, keeping the media listed in
// existingImages/existingVideos and appending new uploads.
func (h *ProductHandler) Update(c *gin.Context) {
	input, err := h.parseInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.ExistingImages = parseJSONList(c.PostForm("existingImages"))
	input.ExistingVideos = parseJSONList(c.PostForm("existingVideos"))

	form, _ := c.MultipartForm()
	product, err := h.productService.Update(c.Param("id"), input, formFiles(form, "images"), formFiles(form, "videos"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productService.Delete(c.Param("id")); err != nil {
		logger.Error(err, "Failed to delete product", map[string]interface{}{"id": c.Param("id")})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ProductHandler) parseInput(c *gin.Context) (service.ProductInput, error) {
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)

	input := service.ProductInput{
		Name:        c.PostForm("name"),
		Price:       price,
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		Sizes:       splitTrimmed(c.PostForm("sizes")),
		Material:    c.PostForm("material"),
		Work:        c.PostForm("work"),
		WashCare:    c.PostForm("washCare"),
		SKU:         c.PostForm("sku"),
		ImageURL:    c.PostForm("image_url"),
	}

	if strings.TrimSpace(input.Name) == "" {
		return input, errors.New("product name is required")
	}
	return input, nil
}

func formFiles(form *multipart.Form, field string) []*multipart.FileHeader {
	if form == nil {
		return nil
	}
	return form.File[field]
}

func splitTrimmed(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseJSONList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}
	return list
}
