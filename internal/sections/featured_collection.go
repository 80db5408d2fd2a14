package sections

import (
	"fmt"
	"strings"

	"sheweds-backend/internal/models"
)

// RegisterFeaturedCollection registers the product showcase section.
func RegisterFeaturedCollection(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(&Descriptor{
		Type: "FeaturedCollection",
		Name: "Featured Collection",
		Icon: "LayoutGrid",
		Fields: []Field{
			{Name: "title", Type: FieldText, Label: "Section Title"},
			{Name: "titleStyle", Type: FieldTypography, Label: "Title Style"},
			{Name: "description", Type: FieldTextarea, Label: "Description"},
			{Name: "layout", Type: FieldSelect, Options: []string{"grid", "carousel"}, Label: "Layout Mode"},
			{Name: "itemCount", Type: FieldSelect, Options: []string{"4", "8", "12"}, Label: "Number of Products"},
			{Name: "productCardStyle", Type: FieldSelect, Options: []string{"standard", "minimal"}, Label: "Card Style"},
			{Name: "showPrice", Type: FieldSelect, Options: []string{"true", "false"}, Label: "Show Price"},
			{Name: "showAddToCart", Type: FieldSelect, Options: []string{"true", "false"}, Label: "Show Add to Cart"},
		},
		Renderer: renderFeaturedCollection,
	})
}

func renderFeaturedCollection(ctx RenderContext, prefix string, section models.Section, data RenderData) string {
	content := section.Content
	title := getStringDefault(content, "title", "Curated Masterpieces")
	description := getStringDefault(content, "description",
		"Handpicked selections that define luxury and tradition. Each piece tells a story of heritage and craftsmanship.")
	layout := normalizeOption(getString(content, "layout"), []string{"grid", "carousel"}, "grid")
	cardStyle := normalizeOption(getString(content, "productCardStyle"), []string{"standard", "minimal"}, "standard")
	itemCount := getInt(content, "itemCount", 4)
	showPrice := parseBool(content["showPrice"], true)
	showAddToCart := parseBool(content["showAddToCart"], false)

	products := data.Products
	if itemCount > 0 && len(products) > itemCount {
		products = products[:itemCount]
	}

	collectionClass := prefix + "__collection"
	cardClass := prefix + "__product-card"

	var sb strings.Builder
	sb.WriteString(`<section class="` + collectionClass + ` ` + collectionClass + `--` + layout + `">`)

	sb.WriteString(`<div class="` + collectionClass + `-header">`)
	sb.WriteString(`<h2` + mergedAttrs(collectionClass+"-title", content, "titleStyle") + `>` + ctx.SanitizeHTML(title) + `</h2>`)
	sb.WriteString(`<p class="` + collectionClass + `-description">` + ctx.SanitizeHTML(description) + `</p>`)
	sb.WriteString(`<a class="` + collectionClass + `-view-all" href="/shop">View All Collection</a>`)
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="` + collectionClass + `-items">`)
	for _, product := range products {
		sb.WriteString(`<article class="` + cardClass + ` ` + cardClass + `--` + cardStyle + `">`)
		sb.WriteString(`<a href="/product/` + escape(product.ID) + `">`)
		if len(product.Images) > 0 {
			sb.WriteString(`<img class="` + cardClass + `-image" src="` + escape(product.Images[0]) + `" alt="` + escape(product.Name) + `" loading="lazy" />`)
		}
		sb.WriteString(`<h3 class="` + cardClass + `-name">` + escape(product.Name) + `</h3>`)
		if showPrice {
			sb.WriteString(`<p class="` + cardClass + `-price">` + formatPrice(product.Price) + `</p>`)
		}
		sb.WriteString(`</a>`)
		if showAddToCart {
			sb.WriteString(`<button class="` + cardClass + `-add" data-product-id="` + escape(product.ID) + `">Add to Cart</button>`)
		}
		sb.WriteString(`</article>`)
	}
	sb.WriteString(`</div>`)

	sb.WriteString(`</section>`)
	return sb.String()
}

func formatPrice(price float64) string {
	if price == float64(int64(price)) {
		return fmt.Sprintf("&#8377;%d", int64(price))
	}
	return fmt.Sprintf("&#8377;%.2f", price)
}
