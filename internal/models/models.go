package models

import "strings"

// TypographyConfig carries per-text style overrides editable in the builder.
type TypographyConfig struct {
	Size   string `json:"size,omitempty"`
	Weight string `json:"weight,omitempty"`
	Align  string `json:"align,omitempty"`
	Color  string `json:"color,omitempty"`
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Videos      []string `json:"videos"`
	Description string   `json:"description"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors,omitempty"`
	Material    string   `json:"material,omitempty"`
	Work        string   `json:"work,omitempty"`
	Fabric      string   `json:"fabric,omitempty"`
	WashCare    string   `json:"washCare,omitempty"`
	SKU         string   `json:"sku,omitempty"`
}

// Normalize backfills fields for records written by older versions of the
// catalog: singular image promoted into images, default SKU derived from id.
func (p *Product) Normalize() {
	if len(p.Images) == 0 && p.Image != "" {
		p.Images = []string{p.Image}
	}
	if p.Image == "" && len(p.Images) > 0 {
		p.Image = p.Images[0]
	}
	if p.Videos == nil {
		p.Videos = []string{}
	}
	if p.Colors == nil {
		p.Colors = []string{}
	}
	if p.Sizes == nil {
		p.Sizes = []string{}
	}
	if strings.TrimSpace(p.SKU) == "" {
		p.SKU = "SKU-" + p.ID
	}
}

type HeroSlide struct {
	ID            string            `json:"id"`
	Type          string            `json:"type"`
	URL           string            `json:"url"`
	Title         string            `json:"title"`
	TitleStyle    *TypographyConfig `json:"titleStyle,omitempty"`
	Subtitle      string            `json:"subtitle"`
	SubtitleStyle *TypographyConfig `json:"subtitleStyle,omitempty"`
	CTAText       string            `json:"ctaText"`
	CTALink       string            `json:"ctaLink"`
}

// HeroSlidesDoc is the wrapper persisted in hero-slides.json.
type HeroSlidesDoc struct {
	Slides []HeroSlide `json:"slides"`
}

type HomeLink struct {
	Title string `json:"title"`
	Image string `json:"image"`
	Link  string `json:"link"`
}

type HomePageData struct {
	HeroSlides         []HeroSlide `json:"heroSlides"`
	FeaturedCategories []HomeLink  `json:"featuredCategories"`
	BridalJourney      []HomeLink  `json:"bridalJourney"`

	// Legacy single-video hero fields, migrated on read.
	HeroVideoURL string `json:"heroVideoUrl,omitempty"`
	HeroTitle    string `json:"heroTitle,omitempty"`
	HeroSubtitle string `json:"heroSubtitle,omitempty"`
}

// Section is one configurable, orderable block of a page. Content keys are
// described by the section type's field schema; settings are interpreted by
// the style resolver. Neither is validated at write time.
type Section struct {
	ID       string                 `json:"id"`
	Type     string                 `json:"type"`
	Content  map[string]interface{} `json:"content"`
	Settings map[string]interface{} `json:"settings"`
	Hidden   bool                   `json:"hidden,omitempty"`
}

type PageConfig struct {
	ID       string    `json:"id"`
	Slug     string    `json:"slug"`
	Name     string    `json:"name"`
	Sections []Section `json:"sections"`
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type CreatePageRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

type SavePageRequest struct {
	Config PageConfig `json:"config" binding:"required"`
}

type BackupData struct {
	Pages     map[string]PageConfig `json:"pages"`
	Products  []Product             `json:"products"`
	Timestamp string                `json:"timestamp"`
}
