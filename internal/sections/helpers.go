package sections

import (
	"html/template"
	"strconv"
	"strings"

	"sheweds-backend/internal/models"
	"sheweds-backend/internal/styles"
)

func getString(content map[string]interface{}, key string) string {
	if content == nil {
		return ""
	}
	if value, ok := content[key]; ok {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}

func getStringDefault(content map[string]interface{}, key, fallback string) string {
	if value := strings.TrimSpace(getString(content, key)); value != "" {
		return value
	}
	return fallback
}

func getList(content map[string]interface{}, key string) []map[string]interface{} {
	if content == nil {
		return nil
	}
	raw, ok := content[key].([]interface{})
	if !ok {
		return nil
	}

	items := make([]map[string]interface{}, 0, len(raw))
	for _, entry := range raw {
		if item, ok := entry.(map[string]interface{}); ok {
			items = append(items, item)
		}
	}
	return items
}

func getInt(content map[string]interface{}, key string, fallback int) int {
	if content == nil {
		return fallback
	}
	switch v := content[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

func parseBool(value interface{}, fallback bool) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.TrimSpace(strings.ToLower(v)) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}

func escape(value string) string {
	return template.HTMLEscapeString(value)
}

// mergedAttrs renders class and style attributes for an element, merging the
// base class with the typography config stored under the given content key.
func mergedAttrs(baseClass string, content map[string]interface{}, key string) string {
	var config *models.TypographyConfig
	if content != nil {
		config = styles.TypographyFromMap(content[key])
	}

	class := baseClass
	if extra := styles.TypographyClasses(config); extra != "" {
		class += " " + extra
	}

	var sb strings.Builder
	sb.WriteString(` class="` + escape(class) + `"`)
	if style := styles.TypographyStyle(config); style != "" {
		sb.WriteString(` style="` + escape(style) + `"`)
	}
	return sb.String()
}
