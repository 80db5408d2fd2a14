package editor

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"sheweds-backend/internal/models"
)

// Session holds one page's working copy while it is being edited. Mutations
// apply to the working copy only; nothing touches disk until the author
// saves. Every method is safe for concurrent use.
type Session struct {
	mu   sync.Mutex
	page models.PageConfig
	now  func() time.Time
}

// NewSession starts editing the given page config. The session takes its own
// deep copy so later repository reads cannot alias the working state.
func NewSession(page models.PageConfig) *Session {
	return &Session{page: clonePage(page), now: time.Now}
}

// Snapshot returns a deep copy of the current working state.
func (s *Session) Snapshot() models.PageConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePage(s.page)
}

// AddSection appends a new section of the given type with empty content and
// medium spacing, returning the created section.
func (s *Session) AddSection(sectionType string) (models.Section, error) {
	sectionType = strings.TrimSpace(sectionType)
	if sectionType == "" {
		return models.Section{}, fmt.Errorf("section type is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	section := models.Section{
		ID:      strings.ToLower(sectionType) + "-" + strconv.FormatInt(s.now().UnixMilli(), 10),
		Type:    sectionType,
		Content: map[string]interface{}{},
		Settings: map[string]interface{}{
			"paddingTop":    "medium",
			"paddingBottom": "medium",
		},
	}
	s.page.Sections = append(s.page.Sections, section)
	return cloneSection(section), nil
}

// UpdateContent sets one content field on a section.
func (s *Session) UpdateContent(sectionID, field string, value interface{}) error {
	if strings.TrimSpace(field) == "" {
		return fmt.Errorf("field name is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutateSection(sectionID, func(section *models.Section) {
		if section.Content == nil {
			section.Content = map[string]interface{}{}
		}
		section.Content[field] = value
	})
}

// UpdateContentRaw sets a content field from a raw JSON document. Malformed
// JSON leaves the working copy untouched and reports no error: the editor
// sends raw values keystroke by keystroke, and half-typed documents are
// expected.
func (s *Session) UpdateContentRaw(sectionID, field, rawJSON string) error {
	var value interface{}
	if err := json.Unmarshal([]byte(rawJSON), &value); err != nil {
		return nil
	}
	return s.UpdateContent(sectionID, field, value)
}

// UpdateSetting sets one settings field on a section.
func (s *Session) UpdateSetting(sectionID, field string, value interface{}) error {
	if strings.TrimSpace(field) == "" {
		return fmt.Errorf("field name is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutateSection(sectionID, func(section *models.Section) {
		if section.Settings == nil {
			section.Settings = map[string]interface{}{}
		}
		section.Settings[field] = value
	})
}

// Reorder moves the section at index from to index to, shifting the ones in
// between.
func (s *Session) Reorder(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.page.Sections)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("reorder out of range: %d -> %d with %d sections", from, to, n)
	}
	if from == to {
		return nil
	}

	moved := s.page.Sections[from]
	rest := append(s.page.Sections[:from:from], s.page.Sections[from+1:]...)
	s.page.Sections = append(rest[:to:to], append([]models.Section{moved}, rest[to:]...)...)
	return nil
}

// ToggleHidden flips a section's visibility flag.
func (s *Session) ToggleHidden(sectionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutateSection(sectionID, func(section *models.Section) {
		section.Hidden = !section.Hidden
	})
}

// Remove deletes a section from the working copy.
func (s *Session) Remove(sectionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, section := range s.page.Sections {
		if section.ID == sectionID {
			s.page.Sections = append(s.page.Sections[:i], s.page.Sections[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("section %s not found", sectionID)
}

// Replace swaps the entire working copy, used when the editor pushes a full
// config.
func (s *Session) Replace(page models.PageConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = clonePage(page)
}

func (s *Session) mutateSection(sectionID string, mutate func(*models.Section)) error {
	for i := range s.page.Sections {
		if s.page.Sections[i].ID == sectionID {
			mutate(&s.page.Sections[i])
			return nil
		}
	}
	return fmt.Errorf("section %s not found", sectionID)
}

func clonePage(page models.PageConfig) models.PageConfig {
	cloned := page
	cloned.Sections = make([]models.Section, len(page.Sections))
	for i, section := range page.Sections {
		cloned.Sections[i] = cloneSection(section)
	}
	return cloned
}

func cloneSection(section models.Section) models.Section {
	cloned := section
	cloned.Content = cloneMap(section.Content)
	cloned.Settings = cloneMap(section.Settings)
	return cloned
}

// cloneMap deep-copies the JSON-shaped maps stored in section content and
// settings.
func cloneMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch value := v.(type) {
	case map[string]interface{}:
		return cloneMap(value)
	case []interface{}:
		out := make([]interface{}, len(value))
		for i, item := range value {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
