package repository

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"sheweds-backend/internal/models"
)

func newTestStore(t *testing.T) *DocStore {
	t.Helper()
	store, err := NewDocStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create doc store: %v", err)
	}
	return store
}

func TestPageSaveLoadRoundTrip(t *testing.T) {
	repo := NewPageRepository(newTestStore(t))

	page := models.PageConfig{
		ID:   "lookbook",
		Slug: "lookbook",
		Name: "Lookbook",
		Sections: []models.Section{
			{
				ID:   "s1",
				Type: "Hero",
				Content: map[string]interface{}{
					"slides": []interface{}{
						map[string]interface{}{"title": "Sale", "ctaLink": "/shop"},
					},
				},
				Settings: map[string]interface{}{"paddingTop": "none"},
			},
		},
	}

	if err := repo.Save(page); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := repo.GetBySlug("lookbook")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if !reflect.DeepEqual(*loaded, page) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", *loaded, page)
	}
}

func TestPageMissingFileReturnsEmpty(t *testing.T) {
	repo := NewPageRepository(newTestStore(t))

	pages, err := repo.GetAll()
	if err != nil {
		t.Fatalf("expected missing file to be treated as empty, got %v", err)
	}
	if len(pages) != 0 {
		t.Fatalf("expected no pages, got %d", len(pages))
	}

	if _, err := repo.GetBySlug("nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAtomicWriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDocStore(dir)
	if err != nil {
		t.Fatalf("failed to create doc store: %v", err)
	}

	if err := store.Save("products.json", []models.Product{{ID: "1", Name: "Lehenga"}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "products.json.tmp")); !os.IsNotExist(err) {
		t.Fatal("temp file should not survive a successful save")
	}
	if _, err := os.Stat(filepath.Join(dir, "products.json")); err != nil {
		t.Fatalf("target file missing after save: %v", err)
	}
}

// Two writers that both read before either writes: the second rename wins
// the entire document, silently discarding the first writer's changes. This
// pins down the known lost-update behavior rather than a merge guarantee.
func TestConcurrentPageSavesLastWriteWins(t *testing.T) {
	repo := NewPageRepository(newTestStore(t))

	base := models.PageConfig{ID: "home", Slug: "home", Name: "Home", Sections: []models.Section{}}
	if err := repo.Save(base); err != nil {
		t.Fatalf("seed save failed: %v", err)
	}

	fromA, _ := repo.GetBySlug("home")
	fromB, _ := repo.GetBySlug("home")

	editB := *fromB
	editB.Name = "Home (B)"
	if err := repo.Save(editB); err != nil {
		t.Fatalf("writer B save failed: %v", err)
	}

	editA := *fromA
	editA.Name = "Home (A)"
	if err := repo.Save(editA); err != nil {
		t.Fatalf("writer A save failed: %v", err)
	}

	final, err := repo.GetBySlug("home")
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if final.Name != "Home (A)" {
		t.Fatalf("expected the later write to win, got %q", final.Name)
	}
}

func TestProductNormalizationOnRead(t *testing.T) {
	store := newTestStore(t)

	// Legacy record: singular image, no sku, nil slices.
	if err := store.Save("products.json", []map[string]interface{}{
		{"id": "42", "name": "Silk Saree", "price": 12999, "category": "saree", "image": "/uploads/saree.jpg"},
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	repo := NewProductRepository(store)
	products, err := repo.GetAll()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}

	p := products[0]
	if len(p.Images) != 1 || p.Images[0] != "/uploads/saree.jpg" {
		t.Fatalf("expected legacy image promoted to images, got %v", p.Images)
	}
	if p.SKU != "SKU-42" {
		t.Fatalf("expected default sku, got %q", p.SKU)
	}
	if p.Videos == nil || p.Sizes == nil {
		t.Fatal("expected empty slices, not nil")
	}
}

func TestHomeRepositoryLegacyMigration(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save("homepage.json", map[string]interface{}{
		"heroVideoUrl": "/uploads/hero.mp4",
		"heroTitle":    "Grand Opening",
		"heroSubtitle": "New collection",
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	repo := NewHomeRepository(store)
	data, err := repo.Get()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(data.HeroSlides) != 1 {
		t.Fatalf("expected migrated hero slide, got %d", len(data.HeroSlides))
	}
	slide := data.HeroSlides[0]
	if slide.Type != "video" || slide.URL != "/uploads/hero.mp4" || slide.Title != "Grand Opening" {
		t.Fatalf("unexpected migrated slide: %#v", slide)
	}
}

func TestHeroRepositoryDefaultsToEmpty(t *testing.T) {
	repo := NewHeroRepository(newTestStore(t))

	doc, err := repo.Get()
	if err != nil {
		t.Fatalf("expected default doc, got %v", err)
	}
	if doc.Slides == nil || len(doc.Slides) != 0 {
		t.Fatalf("expected empty slides list, got %#v", doc.Slides)
	}
}
