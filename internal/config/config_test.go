package config

import "testing"

func TestNewDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("ENABLE_CACHE", "")

	cfg := New()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DataDir != "./data" {
		t.Fatalf("expected default data dir ./data, got %q", cfg.DataDir)
	}
	if cfg.EnableCache {
		t.Fatal("expected cache to be disabled by default")
	}
	if cfg.MaxUploadSize != 10*1024*1024 {
		t.Fatalf("unexpected default max upload size: %d", cfg.MaxUploadSize)
	}
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CORS_ORIGINS", "https://sheweds.example,https://admin.sheweds.example")
	t.Setenv("MAX_UPLOAD_SIZE", "1048576")

	cfg := New()

	if cfg.Port != "9090" {
		t.Fatalf("expected port override, got %q", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Fatal("expected production environment")
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 CORS origins, got %d", len(cfg.CORSOrigins))
	}
	if cfg.MaxUploadSize != 1048576 {
		t.Fatalf("expected max upload size override, got %d", cfg.MaxUploadSize)
	}
}
