package service

import (
	"strings"
	"testing"

	"sheweds-backend/internal/config"
	"sheweds-backend/internal/editor"
	"sheweds-backend/internal/models"
	"sheweds-backend/internal/renderer"
	"sheweds-backend/internal/repository"
	"sheweds-backend/internal/sections"
	"sheweds-backend/pkg/cache"
)

type testEnv struct {
	pages    *PageService
	products *ProductService
	home     *HomeService
	backup   *BackupService
	editor   *EditorService
	registry *sections.Registry
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := repository.NewDocStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create doc store: %v", err)
	}

	cfg := config.New()
	cfg.UploadDir = t.TempDir()

	disabled, err := cache.NewCache("", false)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	uploads, err := NewUploadService(cfg)
	if err != nil {
		t.Fatalf("failed to create upload service: %v", err)
	}

	pageRepo := repository.NewPageRepository(store)
	productRepo := repository.NewProductRepository(store)
	registry := sections.NewDefaultRegistry()
	pages := NewPageService(pageRepo, disabled)

	return &testEnv{
		pages:    pages,
		products: NewProductService(productRepo, uploads, disabled),
		home:     NewHomeService(repository.NewHomeRepository(store), repository.NewHeroRepository(store), disabled),
		backup:   NewBackupService(pageRepo, productRepo, disabled),
		editor:   NewEditorService(pages, registry),
		registry: registry,
	}
}

// Full authoring round trip: create a page, edit it in a session, save, and
// render the stored result.
func TestAuthoringRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.pages.Create("Lookbook", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Slug != "lookbook" || created.ID != "lookbook" {
		t.Fatalf("unexpected page identity: %#v", created)
	}
	if len(created.Sections) != 0 {
		t.Fatalf("new page should have no sections, got %d", len(created.Sections))
	}

	opened, err := env.editor.Open("lookbook")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	section, err := env.editor.AddSection(opened.ID, "RichText")
	if err != nil {
		t.Fatalf("add section failed: %v", err)
	}
	if err := env.editor.UpdateContent(opened.ID, section.ID, "title", "Bridal Edit 2026"); err != nil {
		t.Fatalf("update content failed: %v", err)
	}

	if _, err := env.editor.Save(opened.ID); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	stored, err := env.pages.GetBySlug("lookbook")
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	r := renderer.NewPageRenderer(env.registry, func(s string) string { return s })
	html := r.Render(*stored, sections.RenderData{})
	if !strings.Contains(html, "Bridal Edit 2026") {
		t.Fatalf("saved content missing from render: %s", html)
	}
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.pages.Create("Lookbook", ""); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := env.pages.Create("Lookbook", ""); err != ErrPageExists {
		t.Fatalf("expected ErrPageExists, got %v", err)
	}
}

func TestAddSectionRejectsUnknownType(t *testing.T) {
	env := newTestEnv(t)

	page, err := env.pages.Create("Home", "home")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := env.editor.Open("home"); err != nil {
		t.Fatalf("open failed: %v", err)
	}

	if _, err := env.editor.AddSection(page.ID, "NoSuchType"); err == nil {
		t.Fatal("unknown section type should be rejected")
	}
}

// Mutations do not touch disk until save, and every mutation broadcasts the
// full config to subscribers.
func TestEditorMutationsBroadcastAndDeferPersist(t *testing.T) {
	env := newTestEnv(t)

	page, err := env.pages.Create("Home", "home")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := env.editor.Open("home"); err != nil {
		t.Fatalf("open failed: %v", err)
	}

	ch, cancel, err := env.editor.Subscribe(page.ID)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	defer cancel()

	if _, err := env.editor.AddSection(page.ID, "Hero"); err != nil {
		t.Fatalf("add section failed: %v", err)
	}

	msg := <-ch
	if msg.Type != editor.TypeUpdatePageConfig {
		t.Fatalf("expected %s, got %s", editor.TypeUpdatePageConfig, msg.Type)
	}
	snapshot, ok := msg.Payload.(models.PageConfig)
	if !ok {
		t.Fatalf("payload should be the full page config, got %T", msg.Payload)
	}
	if len(snapshot.Sections) != 1 {
		t.Fatalf("broadcast config should carry the new section, got %d", len(snapshot.Sections))
	}

	// Unsaved work stays out of the store.
	stored, err := env.pages.GetBySlug("home")
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(stored.Sections) != 0 {
		t.Fatal("mutation leaked to disk before save")
	}

	if err := env.editor.SelectSection(page.ID, snapshot.Sections[0].ID); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	msg = <-ch
	if msg.Type != editor.TypeSelectSection {
		t.Fatalf("expected %s, got %s", editor.TypeSelectSection, msg.Type)
	}
}

func TestProductLegacyImageURLFallback(t *testing.T) {
	env := newTestEnv(t)

	product, err := env.products.Create(ProductInput{
		Name:     "Chikankari Kurta",
		Price:    5999,
		Category: "kurta",
		ImageURL: "/uploads/kurta.jpg",
	}, nil, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if len(product.Images) != 1 || product.Images[0] != "/uploads/kurta.jpg" {
		t.Fatalf("legacy image url should seed the gallery, got %v", product.Images)
	}
	if product.Image != "/uploads/kurta.jpg" {
		t.Fatalf("legacy image field should be back-filled, got %q", product.Image)
	}
	if !strings.HasPrefix(product.SKU, "SKU-") {
		t.Fatalf("missing sku should default, got %q", product.SKU)
	}
}

func TestRelatedProductsSameCategoryCapFour(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 6; i++ {
		input := ProductInput{Name: "Saree", Price: 1000, Category: "saree"}
		if i == 5 {
			input.Category = "lehenga"
		}
		if _, err := env.products.Create(input, nil, nil); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	all, err := env.products.GetAll()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	related, err := env.products.GetRelated("saree", all[0].ID)
	if err != nil {
		t.Fatalf("related failed: %v", err)
	}
	if len(related) != 4 {
		t.Fatalf("expected 4 related products, got %d", len(related))
	}
	for _, p := range related {
		if p.Category != "saree" || p.ID == all[0].ID {
			t.Fatalf("unexpected related product: %#v", p)
		}
	}
}

func TestBackupExportImportRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.pages.Create("Home", "home"); err != nil {
		t.Fatalf("create page failed: %v", err)
	}
	if _, err := env.products.Create(ProductInput{Name: "Lehenga", Price: 45000}, nil, nil); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	exported, err := env.backup.Export()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if len(exported.Pages) != 1 || len(exported.Products) != 1 || exported.Timestamp == "" {
		t.Fatalf("unexpected export: %#v", exported)
	}

	// Restore into a fresh environment.
	fresh := newTestEnv(t)
	if err := fresh.backup.Import(*exported); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	page, err := fresh.pages.GetBySlug("home")
	if err != nil || page.Name != "Home" {
		t.Fatalf("page not restored: %v %#v", err, page)
	}
	products, err := fresh.products.GetAll()
	if err != nil || len(products) != 1 {
		t.Fatalf("products not restored: %v %d", err, len(products))
	}
}

func TestAuthLoginAndTokenValidation(t *testing.T) {
	cfg := config.New()
	cfg.AdminPassword = "admin123"
	cfg.SessionSecret = "test-secret"
	auth := NewAuthService(cfg)

	if _, err := auth.Login("wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	token, err := auth.Login("admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if err := auth.ValidateToken(token); err != nil {
		t.Fatalf("token should validate: %v", err)
	}
	if err := auth.ValidateToken(token + "x"); err == nil {
		t.Fatal("tampered token should fail")
	}

	other := NewAuthService(&config.Config{AdminPassword: "admin123", SessionSecret: "other-secret"})
	if err := other.ValidateToken(token); err == nil {
		t.Fatal("token signed with a different secret should fail")
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("918920268840", ProductInquiryMessage("Silk Saree", "42"))
	if !strings.HasPrefix(link, "https://wa.me/918920268840?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if !strings.Contains(link, "Silk+Saree") || !strings.Contains(link, "%28ID%3A+42%29") {
		t.Fatalf("message not encoded as expected: %s", link)
	}
}
