package services_test

import (
	"errors"
	"strings"
	"testing"

	"proofsheet/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("exit status 1")
	err := services.Wrap(services.ErrExternalTool, "manim", "render", "scene HelloWorld", base)

	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatal("wrapped error should match its marker")
	}
	if !errors.Is(err, base) {
		t.Fatal("wrapped error should match the underlying cause")
	}
	for _, want := range []string{"manim", "render", "scene HelloWorld"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error message missing %q: %s", want, err)
		}
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := services.Wrap(services.ErrNotFound, "sheet", "discover", "no PNG frames", nil)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatal("expected ErrNotFound marker")
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "", "", "", errors.New("x"))
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatal("nil marker should default to ErrExternalTool")
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("empty detail should fall back: %s", err)
	}
}
