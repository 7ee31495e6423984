package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error without DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "sqlite://todo.db")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error without JWT_SECRET")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://todo.db")
	t.Setenv("JWT_SECRET", "test-secret")
	// t.Setenv registers the restore; unset so the defaults apply
	t.Setenv("PORT", "placeholder")
	os.Unsetenv("PORT")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "placeholder")
	os.Unsetenv("ACCESS_TOKEN_EXPIRE_MINUTES")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "3000" {
		t.Fatalf("expected default port 3000, got %q", cfg.Port)
	}
	if cfg.TokenTTL() != 30*time.Minute {
		t.Fatalf("expected 30m token lifetime, got %v", cfg.TokenTTL())
	}

	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TokenTTL() != 5*time.Minute {
		t.Fatalf("expected 5m token lifetime, got %v", cfg.TokenTTL())
	}
}
