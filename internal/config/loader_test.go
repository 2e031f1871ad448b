package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Packs.Dir == "" || cfg.Database.Path == "" {
		t.Errorf("default config has empty paths: %+v", cfg)
	}
	if cfg.History.Capacity != 10000 {
		t.Errorf("default history capacity = %d, want 10000", cfg.History.Capacity)
	}
	if cfg.Theme.Box == "" {
		t.Error("default theme is empty")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	src := `packs:
  dir: /srv/packs
history:
  capacity: 50
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Packs.Dir != "/srv/packs" {
		t.Errorf("packs dir = %q, want /srv/packs", cfg.Packs.Dir)
	}
	if cfg.History.Capacity != 50 {
		t.Errorf("history capacity = %d, want 50", cfg.History.Capacity)
	}
	// Unset fields fall back to defaults.
	if cfg.Database.Path != Default().Database.Path {
		t.Errorf("database path = %q, want default", cfg.Database.Path)
	}
	if cfg.Theme.Wall == "" {
		t.Error("theme not defaulted for partial config")
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandPath("~/x.db"); got != filepath.Join(home, "x.db") {
		t.Errorf("ExpandPath(~/x.db) = %q", got)
	}
	if got := ExpandPath("/abs/x.db"); got != "/abs/x.db" {
		t.Errorf("ExpandPath(/abs/x.db) = %q", got)
	}
}
