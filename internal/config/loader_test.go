package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, path, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if path != "" {
		t.Errorf("expected embedded defaults, got file %q", path)
	}
	if cfg != DefaultSettings() {
		t.Errorf("embedded YAML drifted from DefaultSettings():\n%+v\n%+v", cfg, DefaultSettings())
	}
}

func TestLoadCustomPathOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("theme:\n  x: red\nlayout:\n  cell_width: 9\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != path {
		t.Errorf("Load() path = %q, expected %q", got, path)
	}
	if cfg.Theme.X != "red" {
		t.Errorf("Theme.X = %q, expected red", cfg.Theme.X)
	}
	if cfg.Theme.O != "bright-magenta" {
		t.Errorf("Theme.O should keep its default, got %q", cfg.Theme.O)
	}
	if cfg.Layout.CellWidth != 9 || cfg.Layout.CellHeight != 3 {
		t.Errorf("Layout = %+v", cfg.Layout)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("layout: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}

	tiny := filepath.Join(t.TempDir(), "tiny.yaml")
	if err := os.WriteFile(tiny, []byte("layout:\n  cell_width: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(tiny); err == nil {
		t.Error("expected validation error for too small cell")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".tictactoe")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("theme:\n  win: red\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, path, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if path != filepath.Join(dir, "config.yaml") {
		t.Errorf("path = %q", path)
	}
	if cfg.Theme.Win != "red" {
		t.Errorf("Theme.Win = %q, expected red", cfg.Theme.Win)
	}
}

func TestThemeResolve(t *testing.T) {
	theme, err := DefaultSettings().Theme.Resolve()
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if theme.X != core.ColorBrightCyan || theme.Win != core.ColorBrightGreen {
		t.Errorf("unexpected theme %+v", theme)
	}

	bad := DefaultSettings().Theme
	bad.Cursor = "plaid"
	if _, err := bad.Resolve(); err == nil {
		t.Error("expected error for unknown colour")
	}
}

func TestLoadServerDefaults(t *testing.T) {
	cfg, err := LoadServer("")
	if err != nil {
		t.Fatalf("LoadServer() failed: %v", err)
	}
	if cfg.Address != ":23234" {
		t.Errorf("Address = %q", cfg.Address)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v", cfg.IdleTimeout)
	}
}

func TestLoadServerFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  address: \":2222\"\n  idle_timeout: 5m\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TICTACTOE_LOG_LEVEL", "debug")

	cfg, err := LoadServer(path)
	if err != nil {
		t.Fatalf("LoadServer() failed: %v", err)
	}
	if cfg.Address != ":2222" {
		t.Errorf("Address = %q, expected :2222", cfg.Address)
	}
	if cfg.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v", cfg.IdleTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, expected env override", cfg.LogLevel)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandPath("~/x.db"); got != filepath.Join(home, "x.db") {
		t.Errorf("ExpandPath() = %q", got)
	}
	if got := ExpandPath("/abs/x.db"); got != "/abs/x.db" {
		t.Errorf("ExpandPath() should leave absolute paths, got %q", got)
	}
}
