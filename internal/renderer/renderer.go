package renderer

import (
	"html/template"
	"strings"

	"sheweds-backend/internal/models"
	"sheweds-backend/internal/sections"
	"sheweds-backend/internal/styles"
)

// ClassPrefix namespaces every class emitted by the section renderers.
const ClassPrefix = "sw"

var paddingBuckets = map[string]string{"none": "none", "medium": "medium", "large": "large"}

// PageRenderer assembles the HTML fragment for a page config by dispatching
// each section to its registered renderer and wrapping the result with the
// resolved style, spacing and animation attributes.
type PageRenderer struct {
	registry  *sections.Registry
	sanitizer func(string) string
}

func NewPageRenderer(registry *sections.Registry, sanitizer func(string) string) *PageRenderer {
	if registry == nil {
		registry = sections.NewDefaultRegistry()
	}
	if sanitizer == nil {
		sanitizer = template.HTMLEscapeString
	}
	return &PageRenderer{registry: registry, sanitizer: sanitizer}
}

// SanitizeHTML satisfies sections.RenderContext.
func (r *PageRenderer) SanitizeHTML(input string) string {
	return r.sanitizer(input)
}

// Render produces the body fragment for a page. Hidden sections are skipped
// entirely on the public path; the editor preview renders them with a marker
// class instead so the author can still see them.
func (r *PageRenderer) Render(page models.PageConfig, data sections.RenderData) string {
	return r.render(page, data, false)
}

// RenderPreview renders for the design editor, keeping hidden sections
// visible but flagged.
func (r *PageRenderer) RenderPreview(page models.PageConfig, data sections.RenderData) string {
	return r.render(page, data, true)
}

func (r *PageRenderer) render(page models.PageConfig, data sections.RenderData, preview bool) string {
	if len(page.Sections) == 0 {
		return `<div class="` + ClassPrefix + `__empty">This page is empty. Add sections in the Admin Panel.</div>`
	}

	var sb strings.Builder
	for _, section := range page.Sections {
		if section.Hidden && !preview {
			continue
		}

		render, ok := r.registry.Get(section.Type)
		if !ok {
			sb.WriteString(`<div class="` + ClassPrefix + `__unknown-section">Unknown Section Type: `)
			sb.WriteString(template.HTMLEscapeString(section.Type))
			sb.WriteString(`</div>`)
			continue
		}

		r.writeWrapperOpen(&sb, section, preview)
		sb.WriteString(render(r, ClassPrefix, section, data))
		sb.WriteString(`</div>`)
	}
	return sb.String()
}

func (r *PageRenderer) writeWrapperOpen(sb *strings.Builder, section models.Section, preview bool) {
	classes := []string{
		ClassPrefix + "__section",
		ClassPrefix + "__section--pt-" + paddingBucket(section.Settings, "paddingTop"),
		ClassPrefix + "__section--pb-" + paddingBucket(section.Settings, "paddingBottom"),
	}
	if preview && section.Hidden {
		classes = append(classes, ClassPrefix+"__section--hidden")
	}

	sb.WriteString(`<div id="` + template.HTMLEscapeString(section.ID) + `" class="` + strings.Join(classes, " ") + `"`)

	sb.WriteString(` data-animate="` + styles.ResolveAnimation(settingString(section.Settings, "animationName")) + `"`)
	if hover := styles.ResolveHover(settingString(section.Settings, "hoverEffect")); hover != "" {
		sb.WriteString(` data-hover="` + hover + `"`)
	}

	if style := styles.Inline(inlineSettings(section.Settings)); style != "" {
		sb.WriteString(` style="` + template.HTMLEscapeString(style) + `"`)
	}
	sb.WriteString(`>`)
}

// paddingBucket folds any stored padding keyword into one of the three
// supported buckets, defaulting to medium.
func paddingBucket(settings map[string]interface{}, key string) string {
	if bucket, ok := paddingBuckets[settingString(settings, key)]; ok {
		return bucket
	}
	return "medium"
}

// inlineSettings strips the bucket keywords before style resolution so they
// never leak into the inline style as invalid CSS lengths. Concrete values
// such as "24px" still pass through.
func inlineSettings(settings map[string]interface{}) map[string]interface{} {
	if len(settings) == 0 {
		return settings
	}

	cleaned := make(map[string]interface{}, len(settings))
	for k, v := range settings {
		if k == "paddingTop" || k == "paddingBottom" {
			if s, ok := v.(string); ok {
				if _, bucket := paddingBuckets[s]; bucket {
					continue
				}
			}
		}
		cleaned[k] = v
	}
	return cleaned
}

func settingString(settings map[string]interface{}, key string) string {
	if settings == nil {
		return ""
	}
	if s, ok := settings[key].(string); ok {
		return s
	}
	return ""
}
