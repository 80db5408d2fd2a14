package sections

import (
	"strconv"
	"strings"

	"sheweds-backend/internal/models"
	"sheweds-backend/internal/styles"
)

// RegisterHero registers the hero slider section.
func RegisterHero(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&Descriptor{
		Type: "Hero",
		Name: "Hero Slider",
		Icon: "GalleryHorizontal",
		Fields: []Field{
			{Name: "slides", Type: FieldArray, Label: "Slides", Items: []Field{
				{Name: "type", Type: FieldSelect, Options: []string{"image", "video"}, Label: "Type"},
				{Name: "url", Type: FieldImage, Label: "Media (Image/Video)"},
				{Name: "title", Type: FieldText, Label: "Title"},
				{Name: "titleStyle", Type: FieldTypography, Label: "Title Style"},
				{Name: "subtitle", Type: FieldText, Label: "Subtitle"},
				{Name: "subtitleStyle", Type: FieldTypography, Label: "Subtitle Style"},
				{Name: "ctaText", Type: FieldText, Label: "Button Text"},
				{Name: "ctaLink", Type: FieldText, Label: "Button Link"},
			}},
		},
		Renderer: renderHero,
	})
}

func renderHero(ctx RenderContext, prefix string, section models.Section, data RenderData) string {
	slides := heroSlides(section.Content, data)
	if len(slides) == 0 {
		return ""
	}

	heroClass := prefix + "__hero"
	slideClass := prefix + "__hero-slide"
	mediaClass := prefix + "__hero-media"
	contentClass := prefix + "__hero-content"
	titleClass := prefix + "__hero-title"
	subtitleClass := prefix + "__hero-subtitle"
	ctaClass := prefix + "__hero-cta"

	var sb strings.Builder
	sb.WriteString(`<section class="` + heroClass + `" data-slide-interval="5000">`)

	for i, slide := range slides {
		active := ""
		if i == 0 {
			active = " is-active"
		}
		sb.WriteString(`<div class="` + slideClass + active + `" data-slide-index="` + strconv.Itoa(i) + `">`)

		sb.WriteString(`<div class="` + mediaClass + `">`)
		if slide.Type == "video" {
			sb.WriteString(`<video autoplay loop muted playsinline><source src="` + escape(slide.URL) + `" type="video/mp4" /></video>`)
		} else {
			sb.WriteString(`<img src="` + escape(slide.URL) + `" alt="` + escape(slide.Title) + `" loading="eager" />`)
		}
		sb.WriteString(`</div>`)

		sb.WriteString(`<div class="` + contentClass + `">`)
		if strings.TrimSpace(slide.Title) != "" {
			sb.WriteString(`<h1 class="` + titleClass + ` ` + escape(styles.TypographyClasses(slide.TitleStyle)) + `"`)
			if style := styles.TypographyStyle(slide.TitleStyle); style != "" {
				sb.WriteString(` style="` + escape(style) + `"`)
			}
			// Stored titles may carry line breaks for stacked headings.
			sb.WriteString(`>` + multiline(ctx, slide.Title) + `</h1>`)
		}
		if strings.TrimSpace(slide.Subtitle) != "" {
			sb.WriteString(`<p class="` + subtitleClass + ` ` + escape(styles.TypographyClasses(slide.SubtitleStyle)) + `"`)
			if style := styles.TypographyStyle(slide.SubtitleStyle); style != "" {
				sb.WriteString(` style="` + escape(style) + `"`)
			}
			sb.WriteString(`>` + ctx.SanitizeHTML(slide.Subtitle) + `</p>`)
		}
		if strings.TrimSpace(slide.CTAText) != "" {
			link := slide.CTALink
			if strings.TrimSpace(link) == "" {
				link = "#"
			}
			sb.WriteString(`<a class="` + ctaClass + `" href="` + escape(link) + `">` + escape(slide.CTAText) + `</a>`)
		}
		sb.WriteString(`</div>`)

		sb.WriteString(`</div>`)
	}

	if len(slides) > 1 {
		sb.WriteString(`<button class="` + prefix + `__hero-prev" aria-label="Previous slide"></button>`)
		sb.WriteString(`<button class="` + prefix + `__hero-next" aria-label="Next slide"></button>`)
	}

	sb.WriteString(`</section>`)
	return sb.String()
}

// heroSlides prefers the slides edited into the section content and falls
// back to the site-wide hero document when the section carries none.
func heroSlides(content map[string]interface{}, data RenderData) []models.HeroSlide {
	items := getList(content, "slides")
	if len(items) == 0 {
		return data.HeroSlides
	}

	slides := make([]models.HeroSlide, 0, len(items))
	for _, item := range items {
		slides = append(slides, models.HeroSlide{
			ID:            getString(item, "id"),
			Type:          getStringDefault(item, "type", "image"),
			URL:           getString(item, "url"),
			Title:         getString(item, "title"),
			TitleStyle:    styles.TypographyFromMap(item["titleStyle"]),
			Subtitle:      getString(item, "subtitle"),
			SubtitleStyle: styles.TypographyFromMap(item["subtitleStyle"]),
			CTAText:       getString(item, "ctaText"),
			CTALink:       getString(item, "ctaLink"),
		})
	}
	return slides
}

func multiline(ctx RenderContext, value string) string {
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		lines[i] = ctx.SanitizeHTML(line)
	}
	return strings.Join(lines, "<br />")
}
