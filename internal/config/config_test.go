package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"proofsheet/internal/config"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Render.ManimBinary != "manim" {
		t.Fatalf("unexpected manim binary: %q", cfg.Render.ManimBinary)
	}
	if cfg.Render.FPS != 2 {
		t.Fatalf("unexpected default fps: %d", cfg.Render.FPS)
	}
	if cfg.Sheet.Grid != "4x4" {
		t.Fatalf("unexpected default grid: %q", cfg.Sheet.Grid)
	}
	if cfg.Sheet.MaxWidth != 320 {
		t.Fatalf("unexpected default max width: %d", cfg.Sheet.MaxWidth)
	}
	if cfg.Sheet.Backend != "auto" {
		t.Fatalf("unexpected default backend: %q", cfg.Sheet.Backend)
	}
	if !cfg.History.Enabled {
		t.Fatal("history should be enabled by default")
	}
	wantLogDir := filepath.Join(tempHome, ".local", "share", "proofsheet", "logs")
	if cfg.Paths.LogDir != wantLogDir {
		t.Fatalf("log dir = %q, want %q", cfg.Paths.LogDir, wantLogDir)
	}
	if cfg.HistoryPath() != filepath.Join(wantLogDir, "history.db") {
		t.Fatalf("history path = %q", cfg.HistoryPath())
	}
}

func TestLoadParsesAndNormalizesFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	content := `
[paths]
media_dir = "~/renders"

[render]
fps = 5
quality = "M"

[sheet]
grid = "3X2"
grid_color = "#FF00FF"

[logging]
level = "DEBUG"
`
	path := filepath.Join(tempHome, "proofsheet.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.Paths.MediaDir != filepath.Join(tempHome, "renders") {
		t.Fatalf("media dir not expanded: %q", cfg.Paths.MediaDir)
	}
	if cfg.Render.FPS != 5 {
		t.Fatalf("fps = %d", cfg.Render.FPS)
	}
	if cfg.Render.Quality != "m" {
		t.Fatalf("quality not lowercased: %q", cfg.Render.Quality)
	}
	if cfg.Sheet.Grid != "3x2" {
		t.Fatalf("grid not lowercased: %q", cfg.Sheet.Grid)
	}
	if cfg.Sheet.GridColor != "FF00FF" {
		t.Fatalf("grid color hash not stripped: %q", cfg.Sheet.GridColor)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level not lowercased: %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cases := map[string]string{
		"bad grid":    "[sheet]\ngrid = \"0x4\"\n",
		"bad color":   "[sheet]\ngrid_color = \"xyz\"\n",
		"bad backend": "[sheet]\nbackend = \"gpu\"\n",
		"bad quality": "[render]\nquality = \"ultra\"\n",
		"bad format":  "[logging]\nformat = \"xml\"\n",
	}
	for name, content := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, _, _, err := config.Load(path); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestMediaDirEnvOverride(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	override := filepath.Join(tempHome, "elsewhere")
	t.Setenv("PROOFSHEET_MEDIA_DIR", override)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Paths.MediaDir != override {
		t.Fatalf("media dir = %q, want env override %q", cfg.Paths.MediaDir, override)
	}
}

func TestFrameDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.MediaDir = "/work/media"
	got := cfg.FrameDir("/work/scenes/hello_world.py")
	want := filepath.Join("/work/media", "images", "hello_world")
	if got != want {
		t.Fatalf("FrameDir = %q, want %q", got, want)
	}
}

func TestCreateSampleParses(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	target := filepath.Join(tempHome, ".config", "proofsheet", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Sheet.Grid != "4x4" {
		t.Fatalf("sample grid = %q", cfg.Sheet.Grid)
	}
}
