package config

import (
	"testing"
	"time"
)

// clearEnv blanks every variable Load reads so the host environment does not leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL", "DB_DRIVER", "PG_HOST", "PG_PORT", "PG_USER", "PG_PASSWORD", "PG_DATABASE",
		"PG_SSLMODE", "SQLITE_PATH", "DB_MAX_CONNECTIONS", "DB_MAX_IDLE_CONNECTIONS", "DB_AUTO_MIGRATE",
		"SERVER_PORT", "SERVER_HOST", "GIN_MODE", "STATIC_DIR", "CORS_ALLOWED_ORIGINS",
		"CORS_ALLOWED_METHODS", "CORS_ALLOWED_HEADERS", "UTM_COOKIE_DAYS",
		"LISTING_DEFAULT_PAGE_SIZE", "LISTING_MAX_PAGE_SIZE",
		"CACHE_ENABLED", "CACHE_MAX_ITEMS", "CACHE_TTL_SECONDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Driver = %q, want sqlite", cfg.Database.Driver)
	}
	if got := cfg.GetDSN(); got != "file:propertyhub.db?_pragma=busy_timeout(5000)" {
		t.Errorf("GetDSN() = %q", got)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Listing.DefaultPageSize != 12 || cfg.Listing.MaxPageSize != 50 {
		t.Errorf("page sizes = %d/%d", cfg.Listing.DefaultPageSize, cfg.Listing.MaxPageSize)
	}
	if !cfg.Cache.Enabled || cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if !cfg.Database.AutoMigrate {
		t.Error("AutoMigrate should default to true")
	}
}

func TestLoad_DatabaseURLSelectsPostgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/propertyhub?sslmode=disable")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Driver = %q, want postgres", cfg.Database.Driver)
	}
	if cfg.GetDSN() != "postgres://app:secret@db:5432/propertyhub?sslmode=disable" {
		t.Errorf("GetDSN() = %q", cfg.GetDSN())
	}
}

func TestLoad_PostgresFromFields(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("PG_HOST", "db")
	t.Setenv("PG_PASSWORD", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := "host=db port=5432 user=postgres password=secret dbname=propertyhub sslmode=disable"
	if got := cfg.GetDSN(); got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "eighty")
	t.Setenv("CACHE_ENABLED", "maybe")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want default 8080", cfg.Server.Port)
	}
	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled should fall back to true")
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "Unknown driver", env: map[string]string{"DB_DRIVER": "mysql"}},
		{name: "Default above max", env: map[string]string{"LISTING_DEFAULT_PAGE_SIZE": "80"}},
		{name: "Zero max page size", env: map[string]string{"LISTING_MAX_PAGE_SIZE": "0"}},
		{name: "Cache without capacity", env: map[string]string{"CACHE_MAX_ITEMS": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
