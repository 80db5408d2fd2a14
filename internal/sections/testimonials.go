package sections

import (
	"strings"

	"sheweds-backend/internal/models"
)

// RegisterTestimonials registers the customer quotes slider.
func RegisterTestimonials(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&Descriptor{
		Type: "TestimonialSlider",
		Name: "Testimonials",
		Icon: "MessageSquareQuote",
		Fields: []Field{
			{Name: "title", Type: FieldText, Label: "Section Title"},
			{Name: "titleStyle", Type: FieldTypography, Label: "Title Style"},
			{Name: "testimonials", Type: FieldArray, Label: "Testimonials", Items: []Field{
				{Name: "text", Type: FieldTextarea, Label: "Quote"},
				{Name: "author", Type: FieldText, Label: "Author Name"},
				{Name: "location", Type: FieldText, Label: "Location"},
			}},
		},
		Renderer: renderTestimonials,
	})
}

func renderTestimonials(ctx RenderContext, prefix string, section models.Section, data RenderData) string {
	content := section.Content
	title := getString(content, "title")
	items := getList(content, "testimonials")

	sliderClass := prefix + "__testimonials"
	quoteClass := prefix + "__testimonial"

	var sb strings.Builder
	sb.WriteString(`<section class="` + sliderClass + `">`)

	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h2` + mergedAttrs(sliderClass+"-title", content, "titleStyle") + `>` + ctx.SanitizeHTML(title) + `</h2>`)
	}

	sb.WriteString(`<div class="` + sliderClass + `-track">`)
	for _, item := range items {
		text := getString(item, "text")
		author := getString(item, "author")
		location := getString(item, "location")

		sb.WriteString(`<blockquote class="` + quoteClass + `">`)
		if strings.TrimSpace(text) != "" {
			sb.WriteString(`<p class="` + quoteClass + `-text">` + ctx.SanitizeHTML(text) + `</p>`)
		}
		if strings.TrimSpace(author) != "" {
			sb.WriteString(`<footer class="` + quoteClass + `-author">` + escape(author))
			if strings.TrimSpace(location) != "" {
				sb.WriteString(`<span class="` + quoteClass + `-location">` + escape(location) + `</span>`)
			}
			sb.WriteString(`</footer>`)
		}
		sb.WriteString(`</blockquote>`)
	}
	sb.WriteString(`</div>`)

	sb.WriteString(`</section>`)
	return sb.String()
}
