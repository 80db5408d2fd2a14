package sections

import (
	"strings"
	"testing"

	"sheweds-backend/internal/models"
)

// recordingContext passes content through unchanged while noting every value
// routed through the sanitizer.
type recordingContext struct {
	sanitized []string
}

func (c *recordingContext) SanitizeHTML(input string) string {
	c.sanitized = append(c.sanitized, input)
	return input
}

func TestDefaultRegistryTypes(t *testing.T) {
	reg := NewDefaultRegistry()

	want := []string{
		"AboutSection", "BridalJourney", "FeaturedCollection",
		"Hero", "ImageBanner", "RichText", "TestimonialSlider",
	}
	got := reg.Types()
	if len(got) != len(want) {
		t.Fatalf("expected %d types, got %v", len(want), got)
	}
	for i, typ := range want {
		if got[i] != typ {
			t.Fatalf("type list mismatch at %d: got %q, want %q", i, got[i], typ)
		}
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	reg := NewDefaultRegistry()

	if _, ok := reg.Get("Hero"); !ok {
		t.Fatal("registered type not found")
	}
	if _, ok := reg.Get("hero"); ok {
		t.Fatal("lookup should not fold case; stored configs use exact type keys")
	}
	if _, ok := reg.Get("NoSuchType"); ok {
		t.Fatal("unregistered type resolved")
	}
}

func TestRegisterRejectsBadDescriptors(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(nil); err == nil {
		t.Fatal("nil descriptor accepted")
	}
	if err := reg.Register(&Descriptor{Type: " ", Renderer: renderHero}); err == nil {
		t.Fatal("blank type accepted")
	}
	if err := reg.Register(&Descriptor{Type: "Custom"}); err == nil {
		t.Fatal("nil renderer accepted")
	}
}

func TestHeroFallsBackToSiteSlides(t *testing.T) {
	ctx := &recordingContext{}
	section := models.Section{ID: "h1", Type: "Hero", Content: map[string]interface{}{}}
	data := RenderData{HeroSlides: []models.HeroSlide{
		{ID: "1", Type: "image", URL: "/uploads/bride.jpg", Title: "Wedding Edit", CTAText: "SHOP", CTALink: "/shop"},
	}}

	html := renderHero(ctx, "sw", section, data)
	if !strings.Contains(html, "/uploads/bride.jpg") || !strings.Contains(html, "Wedding Edit") {
		t.Fatalf("expected fallback slide in output, got %s", html)
	}

	// Content slides take priority once present.
	section.Content["slides"] = []interface{}{
		map[string]interface{}{"type": "video", "url": "/uploads/promo.mp4", "title": "Festive"},
	}
	html = renderHero(ctx, "sw", section, data)
	if strings.Contains(html, "Wedding Edit") || !strings.Contains(html, "/uploads/promo.mp4") {
		t.Fatalf("content slides should shadow site slides, got %s", html)
	}
	if !strings.Contains(html, "<video") {
		t.Fatal("video slide should render a video element")
	}
}

func TestHeroTitleLineBreaks(t *testing.T) {
	ctx := &recordingContext{}
	section := models.Section{Type: "Hero", Content: map[string]interface{}{
		"slides": []interface{}{
			map[string]interface{}{"url": "/a.jpg", "title": "Mohey Rang Do\nBurnt Caramel"},
		},
	}}

	html := renderHero(ctx, "sw", section, RenderData{})
	if !strings.Contains(html, "Mohey Rang Do<br />Burnt Caramel") {
		t.Fatalf("expected stacked title lines, got %s", html)
	}
}

func TestFeaturedCollectionLimitsAndPrice(t *testing.T) {
	ctx := &recordingContext{}
	products := make([]models.Product, 6)
	for i := range products {
		products[i] = models.Product{ID: string(rune('a' + i)), Name: "Item", Price: 12999, Images: []string{"/p.jpg"}}
	}

	section := models.Section{Type: "FeaturedCollection", Content: map[string]interface{}{
		"itemCount": "4",
		"showPrice": "false",
	}}

	html := renderFeaturedCollection(ctx, "sw", section, RenderData{Products: products})
	if got := strings.Count(html, "sw__product-card-name"); got != 4 {
		t.Fatalf("expected 4 cards, got %d", got)
	}
	if strings.Contains(html, "sw__product-card-price") {
		t.Fatal("price should be hidden when showPrice is false")
	}

	section.Content["showPrice"] = "true"
	html = renderFeaturedCollection(ctx, "sw", section, RenderData{Products: products})
	if !strings.Contains(html, "&#8377;12999") {
		t.Fatalf("expected rupee price in output, got %s", html)
	}
}

func TestRichTextBodyGoesThroughSanitizer(t *testing.T) {
	ctx := &recordingContext{}
	body := `<p>Fine <em>zardozi</em> work</p>`
	section := models.Section{Type: "RichText", Content: map[string]interface{}{
		"title":   "Craft",
		"content": body,
	}}

	renderRichText(ctx, "sw", section, RenderData{})

	found := false
	for _, s := range ctx.sanitized {
		if s == body {
			found = true
		}
	}
	if !found {
		t.Fatal("rich text body must pass through the sanitizer")
	}
}

func TestSelectFieldsNormalizeToKnownOptions(t *testing.T) {
	ctx := &recordingContext{}
	section := models.Section{Type: "ImageBanner", Content: map[string]interface{}{
		"image":  "/banner.jpg",
		"title":  "Sale",
		"align":  "sideways",
		"height": "HUGE",
	}}

	html := renderImageBanner(ctx, "sw", section, RenderData{})
	if !strings.Contains(html, "sw__banner--medium") || !strings.Contains(html, "sw__banner--align-center") {
		t.Fatalf("unknown options should fall back to defaults, got %s", html)
	}
}
