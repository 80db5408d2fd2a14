package styles

import (
	"strings"

	"sheweds-backend/internal/models"
)

// TypographyClasses joins the configured size, weight and alignment utility
// classes. Color is intentionally excluded: it is emitted as an inline style
// because class names cannot carry arbitrary color values.
func TypographyClasses(config *models.TypographyConfig) string {
	if config == nil {
		return ""
	}

	parts := make([]string, 0, 3)
	for _, v := range []string{config.Size, config.Weight, config.Align} {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// TypographyStyle returns the inline style for a typography config, which is
// just the color when one is set.
func TypographyStyle(config *models.TypographyConfig) string {
	if config == nil || strings.TrimSpace(config.Color) == "" {
		return ""
	}
	return "color: " + config.Color
}

// TypographyFromMap decodes a typography config out of a section content
// value, tolerating absent or malformed entries.
func TypographyFromMap(value interface{}) *models.TypographyConfig {
	m, ok := value.(map[string]interface{})
	if !ok {
		return nil
	}

	config := &models.TypographyConfig{}
	if s, ok := m["size"].(string); ok {
		config.Size = s
	}
	if s, ok := m["weight"].(string); ok {
		config.Weight = s
	}
	if s, ok := m["align"].(string); ok {
		config.Align = s
	}
	if s, ok := m["color"].(string); ok {
		config.Color = s
	}
	return config
}
