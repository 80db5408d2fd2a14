package sections

import (
	"strings"

	"sheweds-backend/internal/models"
)

// RegisterRichText registers the free-form text section.
func RegisterRichText(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&Descriptor{
		Type: "RichText",
		Name: "Rich Text",
		Icon: "Type",
		Fields: []Field{
			{Name: "title", Type: FieldText, Label: "Heading"},
			{Name: "titleStyle", Type: FieldTypography, Label: "Heading Style"},
			{Name: "content", Type: FieldTextarea, Label: "Content"},
			{Name: "align", Type: FieldSelect, Options: []string{"left", "center", "right"}, Label: "Alignment"},
			{Name: "backgroundColor", Type: FieldSelect, Options: []string{"white", "cream"}, Label: "Background"},
		},
		Renderer: renderRichText,
	})
}

func renderRichText(ctx RenderContext, prefix string, section models.Section, data RenderData) string {
	content := section.Content
	title := getString(content, "title")
	body := getString(content, "content")
	align := normalizeOption(getString(content, "align"), []string{"left", "center", "right"}, "left")
	background := normalizeOption(getString(content, "backgroundColor"), []string{"white", "cream"}, "white")

	textClass := prefix + "__rich-text"

	var sb strings.Builder
	sb.WriteString(`<section class="` + textClass + ` ` + textClass + `--` + background + ` ` + textClass + `--align-` + align + `">`)
	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h2` + mergedAttrs(textClass+"-title", content, "titleStyle") + `>` + ctx.SanitizeHTML(title) + `</h2>`)
	}
	if strings.TrimSpace(body) != "" {
		// Body may carry authored markup; the sanitizer keeps the safe subset.
		sb.WriteString(`<div class="` + textClass + `-body">` + ctx.SanitizeHTML(body) + `</div>`)
	}
	sb.WriteString(`</section>`)
	return sb.String()
}
