package sections

import (
	"strings"

	"sheweds-backend/internal/models"
)

// RegisterBridalJourney registers the category journey section.
func RegisterBridalJourney(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&Descriptor{
		Type: "BridalJourney",
		Name: "Bridal Journey",
		Icon: "Heart",
		Fields: []Field{
			{Name: "title", Type: FieldText, Label: "Main Title"},
			{Name: "titleStyle", Type: FieldTypography, Label: "Title Style"},
			{Name: "subtitle", Type: FieldText, Label: "Subtitle"},
			{Name: "subtitleStyle", Type: FieldTypography, Label: "Subtitle Style"},
			{Name: "cardHeight", Type: FieldSelect, Options: []string{"small", "medium", "large"}, Label: "Card Height"},
			{Name: "items", Type: FieldArray, Label: "Journey Items", Items: []Field{
				{Name: "title", Type: FieldText, Label: "Title"},
				{Name: "image", Type: FieldImage, Label: "Image"},
				{Name: "link", Type: FieldText, Label: "Link"},
			}},
		},
		Renderer: renderBridalJourney,
	})
}

func renderBridalJourney(ctx RenderContext, prefix string, section models.Section, data RenderData) string {
	content := section.Content
	title := getString(content, "title")
	subtitle := getString(content, "subtitle")
	cardHeight := normalizeOption(getString(content, "cardHeight"), []string{"small", "medium", "large"}, "medium")
	items := getList(content, "items")

	journeyClass := prefix + "__journey"
	cardClass := prefix + "__journey-card"

	var sb strings.Builder
	sb.WriteString(`<section class="` + journeyClass + `">`)

	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h2` + mergedAttrs(journeyClass+"-title", content, "titleStyle") + `>` + ctx.SanitizeHTML(title) + `</h2>`)
	}
	if strings.TrimSpace(subtitle) != "" {
		sb.WriteString(`<p` + mergedAttrs(journeyClass+"-subtitle", content, "subtitleStyle") + `>` + ctx.SanitizeHTML(subtitle) + `</p>`)
	}

	sb.WriteString(`<div class="` + journeyClass + `-grid">`)
	for _, item := range items {
		itemTitle := getString(item, "title")
		image := getString(item, "image")
		link := getStringDefault(item, "link", "#")

		sb.WriteString(`<a class="` + cardClass + ` ` + cardClass + `--` + cardHeight + `" href="` + escape(link) + `">`)
		if strings.TrimSpace(image) != "" {
			sb.WriteString(`<img src="` + escape(image) + `" alt="` + escape(itemTitle) + `" loading="lazy" />`)
		}
		if strings.TrimSpace(itemTitle) != "" {
			sb.WriteString(`<span class="` + cardClass + `-label">` + escape(itemTitle) + `</span>`)
		}
		sb.WriteString(`</a>`)
	}
	sb.WriteString(`</div>`)

	sb.WriteString(`</section>`)
	return sb.String()
}
