package renderer

import (
	"strings"
	"testing"

	"sheweds-backend/internal/models"
	"sheweds-backend/internal/sections"
)

func newTestRenderer() *PageRenderer {
	return NewPageRenderer(sections.NewDefaultRegistry(), func(s string) string { return s })
}

func TestUnknownSectionTypeRendersPlaceholder(t *testing.T) {
	r := newTestRenderer()
	page := models.PageConfig{
		ID:   "home",
		Slug: "home",
		Sections: []models.Section{
			{ID: "s1", Type: "NoSuchType"},
			{ID: "s2", Type: "RichText", Content: map[string]interface{}{"title": "Still here"}},
		},
	}

	html := r.Render(page, sections.RenderData{})
	if !strings.Contains(html, "Unknown Section Type: NoSuchType") {
		t.Fatalf("expected placeholder for unknown type, got %s", html)
	}
	if !strings.Contains(html, "Still here") {
		t.Fatal("sections after the unknown one must still render")
	}
}

func TestHiddenSectionsSkippedOnPublicPath(t *testing.T) {
	r := newTestRenderer()
	page := models.PageConfig{
		ID:   "home",
		Slug: "home",
		Sections: []models.Section{
			{ID: "s1", Type: "RichText", Content: map[string]interface{}{"title": "Visible"}},
			{ID: "s2", Type: "RichText", Hidden: true, Content: map[string]interface{}{"title": "Draft"}},
		},
	}

	html := r.Render(page, sections.RenderData{})
	if strings.Contains(html, "Draft") {
		t.Fatal("hidden section leaked into public output")
	}

	preview := r.RenderPreview(page, sections.RenderData{})
	if !strings.Contains(preview, "Draft") || !strings.Contains(preview, "sw__section--hidden") {
		t.Fatal("editor preview should show hidden sections with a marker class")
	}
}

func TestEmptyPageMessage(t *testing.T) {
	r := newTestRenderer()
	html := r.Render(models.PageConfig{ID: "p", Slug: "p"}, sections.RenderData{})
	if !strings.Contains(html, "This page is empty") {
		t.Fatalf("expected empty page message, got %s", html)
	}
}

func TestPaddingBuckets(t *testing.T) {
	r := newTestRenderer()
	cases := []struct {
		value string
		want  string
	}{
		{"none", "pt-none"},
		{"medium", "pt-medium"},
		{"large", "pt-large"},
		{"", "pt-medium"},
		{"giant", "pt-medium"},
	}

	for _, tc := range cases {
		page := models.PageConfig{Sections: []models.Section{{
			ID:       "s1",
			Type:     "RichText",
			Settings: map[string]interface{}{"paddingTop": tc.value},
		}}}
		html := r.Render(page, sections.RenderData{})
		if !strings.Contains(html, "sw__section--"+tc.want) {
			t.Fatalf("padding %q: expected bucket %s in %s", tc.value, tc.want, html)
		}
	}
}

func TestBucketKeywordsExcludedFromInlineStyle(t *testing.T) {
	r := newTestRenderer()
	page := models.PageConfig{Sections: []models.Section{{
		ID:   "s1",
		Type: "RichText",
		Settings: map[string]interface{}{
			"paddingTop":    "large",
			"paddingBottom": "24px",
		},
	}}}

	html := r.Render(page, sections.RenderData{})
	if strings.Contains(html, "padding-top: large") {
		t.Fatal("bucket keyword leaked into inline style")
	}
	if !strings.Contains(html, "padding-bottom: 24px") {
		t.Fatalf("concrete padding value should pass through, got %s", html)
	}
}

func TestProductsInjectedOnlyIntoFeaturedCollection(t *testing.T) {
	r := newTestRenderer()
	data := sections.RenderData{Products: []models.Product{
		{ID: "p1", Name: "Banarasi Lehenga", Price: 45000, Images: []string{"/l.jpg"}},
	}}
	page := models.PageConfig{Sections: []models.Section{
		{ID: "s1", Type: "FeaturedCollection", Content: map[string]interface{}{}},
		{ID: "s2", Type: "RichText", Content: map[string]interface{}{"title": "Text"}},
	}}

	html := r.Render(page, data)
	if strings.Count(html, "Banarasi Lehenga") != 1 {
		t.Fatalf("product should appear exactly once, got %s", html)
	}
}

func TestAnimationAttributeAlwaysPresent(t *testing.T) {
	r := newTestRenderer()
	page := models.PageConfig{Sections: []models.Section{
		{ID: "s1", Type: "RichText", Settings: map[string]interface{}{"animationName": "vortex-in"}},
		{ID: "s2", Type: "RichText", Settings: map[string]interface{}{"animationName": "bogus"}},
		{ID: "s3", Type: "RichText"},
	}}

	html := r.Render(page, sections.RenderData{})
	if !strings.Contains(html, `data-animate="vortex-in"`) {
		t.Fatal("known preset dropped")
	}
	if strings.Count(html, `data-animate="fade-up"`) != 2 {
		t.Fatalf("unknown and missing presets should both fall back to fade-up: %s", html)
	}
}
