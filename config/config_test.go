package config

import (
	"testing"
	"time"

	"laptopshop/core"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "production") // skip .env
	t.Setenv("DATABASE_URL", "postgres://shop@localhost/shop")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PageSize != 12 {
		t.Errorf("PageSize = %d; want 12", cfg.PageSize)
	}
	if cfg.SnapshotTTL != 30*time.Second {
		t.Errorf("SnapshotTTL = %s; want 30s", cfg.SnapshotTTL)
	}
	if cfg.Environment() != core.Production {
		t.Errorf("Environment = %s; want production", cfg.Environment())
	}
	dsn, err := cfg.DSN()
	if err != nil || dsn != "postgres://shop@localhost/shop" {
		t.Errorf("DSN = (%q, %v); want DATABASE_URL", dsn, err)
	}
}

func TestLoadRejectsBadPageSize(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PAGE_SIZE", "0")

	if _, err := Load(); err == nil {
		t.Error("expected error for PAGE_SIZE=0")
	}
}

func TestAddr(t *testing.T) {
	tests := []struct {
		port, want string
	}{
		{"8080", "0.0.0.0:8080"},
		{":9000", "0.0.0.0:9000"},
	}
	for _, tt := range tests {
		c := &Config{Port: tt.port}
		if got := c.Addr(); got != tt.want {
			t.Errorf("Addr(%q) = %q; want %q", tt.port, got, tt.want)
		}
	}
}
