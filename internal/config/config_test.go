package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rebelice/lazystay/internal/models"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestGetDefaults_Valid(t *testing.T) {
	if err := GetDefaults().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadFile_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
general:
  default_screen: bookings
ui:
  theme: catppuccin-mocha
data:
  source: postgres
  property_id: pg-42
database:
  host: db.internal
  user: owner
store:
  backend: memory
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if screen, _ := cfg.Screen(); screen != models.DomainBookings {
		t.Errorf("expected advance bookings screen, got %q", screen)
	}
	if cfg.UI.Theme != "catppuccin-mocha" {
		t.Errorf("expected theme override, got %q", cfg.UI.Theme)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.User != "owner" {
		t.Errorf("unexpected database config %+v", cfg.Database)
	}
	// Untouched keys keep their defaults
	if cfg.Database.Port != 5432 {
		t.Errorf("expected default port, got %d", cfg.Database.Port)
	}
	if !cfg.UI.MouseEnabled {
		t.Error("expected mouse enabled by default")
	}
	if cfg.Store.Backend != "memory" {
		t.Errorf("expected memory store, got %q", cfg.Store.Backend)
	}
}

func TestLoadFile_EnvOverride(t *testing.T) {
	t.Setenv("LAZYSTAY_LOG_DEBUG", "true")
	t.Setenv("LAZYSTAY_UI_CARD_WIDTH", "44")

	cfg, err := LoadFile(writeConfig(t, "general:\n  persist_filters: false\n"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !cfg.Log.Debug {
		t.Error("expected env to enable debug logging")
	}
	if cfg.UI.CardWidth != 44 {
		t.Errorf("expected card width 44, got %d", cfg.UI.CardWidth)
	}
	if cfg.General.PersistFilters {
		t.Error("expected persist_filters false from file")
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"screen", "general:\n  default_screen: dashboard\n"},
		{"source", "data:\n  source: csv\n"},
		{"backend", "store:\n  backend: redis\n"},
		{"card width", "ui:\n  card_width: 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFile(writeConfig(t, tt.body)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestStorePath(t *testing.T) {
	cfg := GetDefaults()
	if got := cfg.StorePath("/cfg"); got != filepath.Join("/cfg", "filters.db") {
		t.Errorf("unexpected default store path %q", got)
	}
	cfg.Store.Path = "/tmp/x.db"
	if got := cfg.StorePath("/cfg"); got != "/tmp/x.db" {
		t.Errorf("expected explicit path, got %q", got)
	}
}
