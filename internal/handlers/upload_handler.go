package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sheweds-backend/internal/service"
)

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload stores a single media file posted under the "file" field. The
// "kind" field selects image (default) or video validation.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}

	var path string
	switch c.PostForm("kind") {
	case "video":
		path, err = h.uploadService.SaveVideo(file)
	default:
		path, err = h.uploadService.SaveImage(file)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": path})
}
