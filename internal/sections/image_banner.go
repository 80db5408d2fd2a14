package sections

import (
	"strings"

	"sheweds-backend/internal/models"
)

// RegisterImageBanner registers the full-width image banner section.
func RegisterImageBanner(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&Descriptor{
		Type: "ImageBanner",
		Name: "Image Banner",
		Icon: "Image",
		Fields: []Field{
			{Name: "image", Type: FieldImage, Label: "Image"},
			{Name: "title", Type: FieldText, Label: "Title"},
			{Name: "titleStyle", Type: FieldTypography, Label: "Title Style"},
			{Name: "subtitle", Type: FieldText, Label: "Subtitle"},
			{Name: "subtitleStyle", Type: FieldTypography, Label: "Subtitle Style"},
			{Name: "ctaText", Type: FieldText, Label: "Button Text"},
			{Name: "ctaLink", Type: FieldText, Label: "Button Link"},
			{Name: "align", Type: FieldSelect, Options: []string{"left", "center", "right"}, Label: "Alignment"},
			{Name: "height", Type: FieldSelect, Options: []string{"small", "medium", "large"}, Label: "Height"},
		},
		Renderer: renderImageBanner,
	})
}

func renderImageBanner(ctx RenderContext, prefix string, section models.Section, data RenderData) string {
	content := section.Content
	image := getString(content, "image")
	title := getString(content, "title")
	subtitle := getString(content, "subtitle")
	ctaText := getString(content, "ctaText")
	ctaLink := getStringDefault(content, "ctaLink", "#")
	align := normalizeOption(getString(content, "align"), []string{"left", "center", "right"}, "center")
	height := normalizeOption(getString(content, "height"), []string{"small", "medium", "large"}, "medium")

	bannerClass := prefix + "__banner"

	var sb strings.Builder
	sb.WriteString(`<section class="` + bannerClass + ` ` + bannerClass + `--` + height + ` ` + bannerClass + `--align-` + align + `">`)

	if strings.TrimSpace(image) != "" {
		sb.WriteString(`<img class="` + bannerClass + `-image" src="` + escape(image) + `" alt="` + escape(title) + `" />`)
	}

	sb.WriteString(`<div class="` + bannerClass + `-overlay">`)
	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h2` + mergedAttrs(bannerClass+"-title", content, "titleStyle") + `>` + ctx.SanitizeHTML(title) + `</h2>`)
	}
	if strings.TrimSpace(subtitle) != "" {
		sb.WriteString(`<p` + mergedAttrs(bannerClass+"-subtitle", content, "subtitleStyle") + `>` + ctx.SanitizeHTML(subtitle) + `</p>`)
	}
	if strings.TrimSpace(ctaText) != "" {
		sb.WriteString(`<a class="` + bannerClass + `-cta" href="` + escape(ctaLink) + `">` + escape(ctaText) + `</a>`)
	}
	sb.WriteString(`</div>`)

	sb.WriteString(`</section>`)
	return sb.String()
}

func normalizeOption(value string, options []string, fallback string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	for _, option := range options {
		if value == option {
			return option
		}
	}
	return fallback
}
