package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("CORS_ORIGINS", "https://naebak.com, https://admin.naebak.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.CacheBackend != "memory" {
		t.Errorf("expected memory cache backend, got %s", cfg.CacheBackend)
	}
	if !cfg.IsProduction() {
		t.Error("expected production environment")
	}
	origins := cfg.AllowedOrigins()
	if len(origins) != 2 || origins[1] != "https://admin.naebak.com" {
		t.Errorf("unexpected origins: %v", origins)
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DRIVER", "oracle")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{PgUser: "u", PgPassword: "p", PgHost: "db", PgPort: 5433, PgDB: "naebak"}
	if got := cfg.PostgresDSN(); got != "postgres://u:p@db:5433/naebak?sslmode=disable" {
		t.Errorf("unexpected dsn: %s", got)
	}

	cfg.DatabaseURL = "postgres://override"
	if got := cfg.PostgresDSN(); got != "postgres://override" {
		t.Errorf("expected DATABASE_URL to win, got %s", got)
	}
}
