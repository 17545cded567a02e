package main

import (
	"os"
	"path/filepath"
	"testing"

	"proofsheet/internal/testsupport"
)

func TestRenderCommandWithStubbedManim(t *testing.T) {
	_, configPath := newCLIConfig(t, testsupport.WithStubbedBinaries("manim"))

	source := filepath.Join(t.TempDir(), "scene.py")
	if err := os.WriteFile(source, []byte("class Demo: pass\n"), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}

	out, _, err := runCLI(t, []string{"render", source, "Demo"}, configPath)
	if err != nil {
		t.Fatalf("render command: %v", err)
	}
	requireContains(t, out, "Rendered 0 frames")
}

func TestRenderCommandMissingSource(t *testing.T) {
	_, configPath := newCLIConfig(t, testsupport.WithStubbedBinaries("manim"))

	missing := filepath.Join(t.TempDir(), "missing.py")
	if _, _, err := runCLI(t, []string{"render", missing, "Demo"}, configPath); err == nil {
		t.Fatal("expected error for missing source file")
	}
}
