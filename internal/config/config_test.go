package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port == "" {
		t.Error("Port should have a default")
	}
	if cfg.BaseURL != "https://teknoblogoji.com.tr" {
		t.Errorf("BaseURL = %q, want default site URL", cfg.BaseURL)
	}
	if cfg.SitemapTimeout != 25*time.Second {
		t.Errorf("SitemapTimeout = %v, want 25s", cfg.SitemapTimeout)
	}
}

func TestLoadProductionRequiresPassword(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("POSTGRES_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Error("Load() in production with default password should fail")
	}
}

func TestSitemapTimeoutOverride(t *testing.T) {
	t.Setenv("SITEMAP_TIMEOUT_SECONDS", "10")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.SitemapTimeout != 10*time.Second {
		t.Errorf("SitemapTimeout = %v, want 10s", cfg.SitemapTimeout)
	}

	t.Setenv("SITEMAP_TIMEOUT_SECONDS", "garbage")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.SitemapTimeout != 25*time.Second {
		t.Errorf("SitemapTimeout with bad value = %v, want fallback 25s", cfg.SitemapTimeout)
	}
}

func TestHasDatabase(t *testing.T) {
	clearDBEnv := func(t *testing.T) {
		t.Setenv("POSTGRES_HOST", "")
		t.Setenv("POSTGRES_USER", "")
		t.Setenv("POSTGRES_DB", "")
	}

	t.Run("production without database env", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("POSTGRES_PASSWORD", "secret")
		clearDBEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if cfg.HasDatabase() {
			t.Error("HasDatabase() = true, want false when no database env is set")
		}
	})

	t.Run("production with database host", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("POSTGRES_PASSWORD", "secret")
		clearDBEnv(t)
		t.Setenv("POSTGRES_HOST", "db.internal")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if !cfg.HasDatabase() {
			t.Error("HasDatabase() = false, want true when POSTGRES_HOST is set")
		}
	})

	t.Run("development defaults", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		clearDBEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if !cfg.HasDatabase() {
			t.Error("HasDatabase() = false, want true with development defaults")
		}
	})
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d",
	}
	want := "postgres://u:p@h:5432/d?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
