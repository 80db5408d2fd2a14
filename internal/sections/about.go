package sections

import (
	"strings"

	"sheweds-backend/internal/models"
)

// RegisterAbout registers the brand story section.
func RegisterAbout(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&Descriptor{
		Type: "AboutSection",
		Name: "About Brand",
		Icon: "Info",
		Fields: []Field{
			{Name: "title", Type: FieldText, Label: "Heading"},
			{Name: "titleStyle", Type: FieldTypography, Label: "Heading Style"},
			{Name: "description1", Type: FieldTextarea, Label: "Paragraph 1"},
			{Name: "description2", Type: FieldTextarea, Label: "Paragraph 2"},
			{Name: "image", Type: FieldImage, Label: "Image"},
			{Name: "buttonText", Type: FieldText, Label: "Button Text"},
			{Name: "buttonLink", Type: FieldText, Label: "Button Link"},
		},
		Renderer: renderAbout,
	})
}

func renderAbout(ctx RenderContext, prefix string, section models.Section, data RenderData) string {
	content := section.Content
	title := getString(content, "title")
	description1 := getString(content, "description1")
	description2 := getString(content, "description2")
	image := getString(content, "image")
	buttonText := getString(content, "buttonText")
	buttonLink := getStringDefault(content, "buttonLink", "#")

	aboutClass := prefix + "__about"

	var sb strings.Builder
	sb.WriteString(`<section class="` + aboutClass + `">`)

	sb.WriteString(`<div class="` + aboutClass + `-content">`)
	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h2` + mergedAttrs(aboutClass+"-title", content, "titleStyle") + `>` + ctx.SanitizeHTML(title) + `</h2>`)
	}
	if strings.TrimSpace(description1) != "" {
		sb.WriteString(`<p class="` + aboutClass + `-text">` + ctx.SanitizeHTML(description1) + `</p>`)
	}
	if strings.TrimSpace(description2) != "" {
		sb.WriteString(`<p class="` + aboutClass + `-text">` + ctx.SanitizeHTML(description2) + `</p>`)
	}
	if strings.TrimSpace(buttonText) != "" {
		sb.WriteString(`<a class="` + aboutClass + `-button" href="` + escape(buttonLink) + `">` + escape(buttonText) + `</a>`)
	}
	sb.WriteString(`</div>`)

	if strings.TrimSpace(image) != "" {
		sb.WriteString(`<div class="` + aboutClass + `-media">`)
		sb.WriteString(`<img src="` + escape(image) + `" alt="` + escape(title) + `" loading="lazy" />`)
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</section>`)
	return sb.String()
}
