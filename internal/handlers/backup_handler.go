package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sheweds-backend/internal/models"
	"sheweds-backend/internal/service"
	"sheweds-backend/pkg/logger"
)

type BackupHandler struct {
	backupService *service.BackupService
}

func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Export downloads the full editable content as one JSON document.
func (h *BackupHandler) Export(c *gin.Context) {
	data, err := h.backupService.Export()
	if err != nil {
		logger.Error(err, "Backup export failed", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export data"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="backup.json"`)
	c.JSON(http.StatusOK, data)
}

// Import restores a previously exported document. Collections present in
// the payload replace the stored ones wholesale.
func (h *BackupHandler) Import(c *gin.Context) {
	var data models.BackupData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid backup file"})
		return
	}

	if err := h.backupService.Import(data); err != nil {
		logger.Error(err, "Backup import failed", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to import data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
