package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	"sheweds-backend/internal/models"
	"sheweds-backend/internal/sections"
	"sheweds-backend/internal/service"
	"sheweds-backend/internal/styles"
)

const heartbeatInterval = 15 * time.Second

// EditorHandler exposes the design editor: session lifecycle, section
// mutations and the live event streams consumed by the editor UI and its
// preview frame.
type EditorHandler struct {
	editorService *service.EditorService
	registry      *sections.Registry
}

func NewEditorHandler(editorService *service.EditorService, registry *sections.Registry) *EditorHandler {
	return &EditorHandler{editorService: editorService, registry: registry}
}

// Config serves the add-section palette and style options to the editor UI.
func (h *EditorHandler) Config(c *gin.Context) {
	descriptors := h.registry.Descriptors()
	available := make([]models.SectionTypeConfig, 0, len(descriptors))
	for _, desc := range descriptors {
		available = append(available, models.SectionTypeConfig{
			Type:   desc.Type,
			Name:   desc.Name,
			Icon:   desc.Icon,
			Fields: desc.Fields,
		})
	}

	c.JSON(http.StatusOK, models.PageBuilderConfig{
		AvailableSections: available,
		PaddingOptions:    []string{"none", "medium", "large"},
		AnimationPresets:  styles.AnimationPresets(),
		HoverEffects:      styles.HoverEffects(),
	})
}

// Open starts or resumes an editing session for a page slug.
func (h *EditorHandler) Open(c *gin.Context) {
	page, err := h.editorService.Open(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open editor"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// Snapshot returns the current working copy of an open session.
func (h *EditorHandler) Snapshot(c *gin.Context) {
	page, err := h.editorService.Snapshot(c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// AddSection appends a new section to the working copy.
func (h *EditorHandler) AddSection(c *gin.Context) {
	var req models.AddSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "section type is required"})
		return
	}

	section, err := h.editorService.AddSection(c.Param("id"), req.Type)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, section)
}

// UpdateContent sets one content field.
func (h *EditorHandler) UpdateContent(c *gin.Context) {
	var req models.UpdateSectionContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "section_id and field are required"})
		return
	}

	if err := h.editorService.UpdateContent(c.Param("id"), req.SectionID, req.Field, req.Value); err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateContentRaw sets a content field from raw JSON; malformed payloads
// are dropped without an error so in-progress typing never breaks the
// stream.
func (h *EditorHandler) UpdateContentRaw(c *gin.Context) {
	var req models.UpdateSectionRawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "section_id and field are required"})
		return
	}

	if err := h.editorService.UpdateContentRaw(c.Param("id"), req.SectionID, req.Field, req.RawJSON); err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateSettings merges the posted style settings into a section.
func (h *EditorHandler) UpdateSettings(c *gin.Context) {
	var req models.UpdateSectionSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "section_id and settings are required"})
		return
	}

	for field, value := range req.Settings {
		if err := h.editorService.UpdateSetting(c.Param("id"), req.SectionID, field, value); err != nil {
			h.sessionError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Reorder moves a section between positions.
func (h *EditorHandler) Reorder(c *gin.Context) {
	var req models.ReorderSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	if err := h.editorService.Reorder(c.Param("id"), req.From, req.To); err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ToggleSection flips a section's hidden flag.
func (h *EditorHandler) ToggleSection(c *gin.Context) {
	var req models.ToggleSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "section_id is required"})
		return
	}

	if err := h.editorService.ToggleHidden(c.Param("id"), req.SectionID); err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveSection deletes a section from the working copy.
func (h *EditorHandler) RemoveSection(c *gin.Context) {
	if err := h.editorService.RemoveSection(c.Param("id"), c.Param("sectionId")); err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SelectSection relays a preview click to the editor event stream.
func (h *EditorHandler) SelectSection(c *gin.Context) {
	var req models.SelectSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.editorService.SelectSection(c.Param("id"), req.SectionID); err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Save persists the working copy to the content store.
func (h *EditorHandler) Save(c *gin.Context) {
	page, err := h.editorService.Save(c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Events streams editor messages over SSE. Both the preview iframe and the
// editor UI subscribe here; each message carries the full page config or a
// section selection.
func (h *EditorHandler) Events(c *gin.Context) {
	ch, cancel, err := h.editorService.Subscribe(c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-ch:
			if !ok {
				return false
			}
			c.Render(-1, sse.Event{Event: msg.Type, Data: msg.Payload})
			return true
		case <-heartbeat.C:
			c.Render(-1, sse.Event{Event: "ping", Data: "keepalive"})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func (h *EditorHandler) sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoSession):
		c.JSON(http.StatusNotFound, gin.H{"error": "no editing session for page"})
	case errors.Is(err, service.ErrPageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
