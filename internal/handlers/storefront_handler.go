package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sheweds-backend/internal/config"
	"sheweds-backend/internal/middleware"
	"sheweds-backend/internal/models"
	"sheweds-backend/internal/renderer"
	"sheweds-backend/internal/sections"
	"sheweds-backend/internal/service"
	"sheweds-backend/pkg/logger"
)

const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>{{.Title}} | {{.SiteName}}</title>
<link rel="stylesheet" href="/static/site.css" />
</head>
<body class="sw">
<header class="sw__header">
<a class="sw__logo" href="/">{{.SiteName}}</a>
<nav class="sw__nav">
<a href="/shop">Shop</a>
{{range .NavPages}}<a href="/page/{{.Slug}}">{{.Name}}</a>
{{end}}</nav>
</header>
<main class="sw__main">{{.Body}}</main>
<footer class="sw__footer">
<p>&copy; {{.SiteName}}. Crafted for every celebration.</p>
<a class="sw__whatsapp" href="{{.WhatsAppLink}}" target="_blank" rel="noopener">Chat on WhatsApp</a>
</footer>
{{if .PreviewScript}}<script src="/static/preview.js"></script>{{end}}
</body>
</html>`

// StorefrontHandler serves the public HTML pages and the editor preview.
type StorefrontHandler struct {
	pageService    *service.PageService
	productService *service.ProductService
	homeService    *service.HomeService
	editorService  *service.EditorService
	renderer       *renderer.PageRenderer
	cfg            *config.Config
	layout         *template.Template
}

func NewStorefrontHandler(
	pageService *service.PageService,
	productService *service.ProductService,
	homeService *service.HomeService,
	editorService *service.EditorService,
	pageRenderer *renderer.PageRenderer,
	cfg *config.Config,
) *StorefrontHandler {
	return &StorefrontHandler{
		pageService:    pageService,
		productService: productService,
		homeService:    homeService,
		editorService:  editorService,
		renderer:       pageRenderer,
		cfg:            cfg,
		layout:         template.Must(template.New("layout").Parse(layoutTemplate)),
	}
}

type layoutData struct {
	Title         string
	SiteName      string
	NavPages      []models.PageConfig
	Body          template.HTML
	WhatsAppLink  string
	PreviewScript bool
}

// Home renders the page config stored under the "home" slug. When no such
// page exists yet, a default layout is synthesized from the home document so
// a fresh install still shows a storefront.
func (h *StorefrontHandler) Home(c *gin.Context) {
	page, err := h.pageService.GetBySlug("home")
	if err != nil {
		if !errors.Is(err, service.ErrPageNotFound) {
			h.serverError(c, err, "home")
			return
		}
		page = h.defaultHomePage()
	}
	h.renderPage(c, *page, "Home")
}

// Page renders any stored page by slug.
func (h *StorefrontHandler) Page(c *gin.Context) {
	slug := c.Param("slug")
	page, err := h.pageService.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, err, slug)
		return
	}
	h.renderPage(c, *page, page.Name)
}

// Preview renders the working copy of an editing session, hidden sections
// included.
func (h *StorefrontHandler) Preview(c *gin.Context) {
	page, err := h.editorService.Snapshot(c.Param("id"))
	if err != nil {
		h.notFound(c)
		return
	}

	data, err := h.renderData()
	if err != nil {
		h.serverError(c, err, page.Slug)
		return
	}

	h.writeLayout(c, layoutData{
		Title:         page.Name + " (Preview)",
		Body:          template.HTML(h.renderer.RenderPreview(*page, data)),
		PreviewScript: true,
	})
}

// Shop renders the full catalog grid.
func (h *StorefrontHandler) Shop(c *gin.Context) {
	products, err := h.productService.GetAll()
	if err != nil {
		h.serverError(c, err, "shop")
		return
	}

	var sb strings.Builder
	sb.WriteString(`<section class="sw__shop"><h1 class="sw__shop-title">Shop</h1><div class="sw__shop-grid">`)
	for _, p := range products {
		sb.WriteString(productCard(p))
	}
	sb.WriteString(`</div></section>`)

	middleware.CountPageRender("shop")
	h.writeLayout(c, layoutData{Title: "Shop", Body: template.HTML(sb.String())})
}

// Product renders one product's detail page with related items and the
// WhatsApp inquiry link.
func (h *StorefrontHandler) Product(c *gin.Context) {
	product, err := h.productService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, err, "product")
		return
	}

	related, _ := h.productService.GetRelated(product.Category, product.ID)
	inquiry := service.WhatsAppLink(h.cfg.WhatsAppNumber, service.ProductInquiryMessage(product.Name, product.ID))

	var sb strings.Builder
	sb.WriteString(`<article class="sw__product">`)
	sb.WriteString(`<div class="sw__product-gallery">`)
	for _, img := range product.Images {
		sb.WriteString(`<img src="` + template.HTMLEscapeString(img) + `" alt="` + template.HTMLEscapeString(product.Name) + `" />`)
	}
	for _, video := range product.Videos {
		sb.WriteString(`<video controls playsinline><source src="` + template.HTMLEscapeString(video) + `" type="video/mp4" /></video>`)
	}
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="sw__product-info">`)
	sb.WriteString(`<h1>` + template.HTMLEscapeString(product.Name) + `</h1>`)
	sb.WriteString(`<p class="sw__product-price">` + fmt.Sprintf("&#8377;%.0f", product.Price) + `</p>`)
	if product.Description != "" {
		sb.WriteString(`<p class="sw__product-description">` + template.HTMLEscapeString(product.Description) + `</p>`)
	}
	if len(product.Sizes) > 0 {
		sb.WriteString(`<p class="sw__product-sizes">Sizes: ` + template.HTMLEscapeString(strings.Join(product.Sizes, ", ")) + `</p>`)
	}
	sb.WriteString(`<dl class="sw__product-details">`)
	for _, detail := range []struct{ label, value string }{
		{"Material", product.Material},
		{"Work", product.Work},
		{"Wash Care", product.WashCare},
		{"SKU", product.SKU},
	} {
		if detail.value != "" {
			sb.WriteString(`<dt>` + detail.label + `</dt><dd>` + template.HTMLEscapeString(detail.value) + `</dd>`)
		}
	}
	sb.WriteString(`</dl>`)
	sb.WriteString(`<a class="sw__product-inquiry" href="` + template.HTMLEscapeString(inquiry) + `" target="_blank" rel="noopener">Inquire on WhatsApp</a>`)
	sb.WriteString(`</div>`)
	sb.WriteString(`</article>`)

	if len(related) > 0 {
		sb.WriteString(`<section class="sw__related"><h2>You may also like</h2><div class="sw__shop-grid">`)
		for _, p := range related {
			sb.WriteString(productCard(p))
		}
		sb.WriteString(`</div></section>`)
	}

	middleware.CountPageRender("product")
	h.writeLayout(c, layoutData{Title: product.Name, Body: template.HTML(sb.String())})
}

func (h *StorefrontHandler) renderPage(c *gin.Context, page models.PageConfig, title string) {
	data, err := h.renderData()
	if err != nil {
		h.serverError(c, err, page.Slug)
		return
	}

	middleware.CountPageRender(page.Slug)
	h.writeLayout(c, layoutData{
		Title: title,
		Body:  template.HTML(h.renderer.Render(page, data)),
	})
}

func (h *StorefrontHandler) renderData() (sections.RenderData, error) {
	products, err := h.productService.GetAll()
	if err != nil {
		return sections.RenderData{}, err
	}

	home, err := h.homeService.Get()
	if err != nil {
		return sections.RenderData{}, err
	}

	slides := home.HeroSlides
	if doc, err := h.homeService.HeroSlides(); err == nil && len(doc.Slides) > 0 {
		slides = doc.Slides
	}

	return sections.RenderData{Products: products, HeroSlides: slides}, nil
}

// defaultHomePage synthesizes a hero plus featured collection layout for
// installs that have not saved a home page yet.
func (h *StorefrontHandler) defaultHomePage() *models.PageConfig {
	return &models.PageConfig{
		ID:   "home",
		Slug: "home",
		Name: "Home",
		Sections: []models.Section{
			{ID: "hero-default", Type: "Hero", Content: map[string]interface{}{}, Settings: map[string]interface{}{"paddingTop": "none", "paddingBottom": "none"}},
			{ID: "collection-default", Type: "FeaturedCollection", Content: map[string]interface{}{}, Settings: map[string]interface{}{}},
		},
	}
}

func (h *StorefrontHandler) writeLayout(c *gin.Context, data layoutData) {
	data.SiteName = h.cfg.SiteName
	data.WhatsAppLink = service.WhatsAppLink(h.cfg.WhatsAppNumber, "Hello "+h.cfg.SiteName+", I have a question.")
	if pages, err := h.pageService.GetAll(); err == nil {
		for _, page := range pages {
			if page.Slug != "home" {
				data.NavPages = append(data.NavPages, page)
			}
		}
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.layout.Execute(c.Writer, data); err != nil {
		logger.Error(err, "Failed to execute layout", nil)
	}
}

func (h *StorefrontHandler) notFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
	c.Header("Content-Type", "text/html; charset=utf-8")
	_ = h.layout.Execute(c.Writer, layoutData{
		Title:    "Not Found",
		SiteName: h.cfg.SiteName,
		Body:     template.HTML(`<div class="sw__empty">The page you are looking for does not exist.</div>`),
	})
}

func (h *StorefrontHandler) serverError(c *gin.Context, err error, slug string) {
	logger.Error(err, "Storefront render failed", map[string]interface{}{"slug": slug})
	c.String(http.StatusInternalServerError, "something went wrong")
}

func productCard(p models.Product) string {
	var sb strings.Builder
	sb.WriteString(`<a class="sw__product-card" href="/product/` + template.HTMLEscapeString(p.ID) + `">`)
	if len(p.Images) > 0 {
		sb.WriteString(`<img src="` + template.HTMLEscapeString(p.Images[0]) + `" alt="` + template.HTMLEscapeString(p.Name) + `" loading="lazy" />`)
	}
	sb.WriteString(`<h3>` + template.HTMLEscapeString(p.Name) + `</h3>`)
	sb.WriteString(`<p>` + fmt.Sprintf("&#8377;%.0f", p.Price) + `</p>`)
	sb.WriteString(`</a>`)
	return sb.String()
}
