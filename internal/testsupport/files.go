package testsupport

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// WritePNG writes a solid-color PNG of the given dimensions to path,
// creating parent directories as needed.
func WritePNG(t testing.TB, path string, width, height int) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	fill := color.NRGBA{R: 40, G: 120, B: 200, A: 0xff}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

// WriteFrameSequence writes count numbered PNG frames into dir using the
// renderer's zero-padded naming convention.
func WriteFrameSequence(t testing.TB, dir string, count, width, height int) {
	t.Helper()
	for i := 0; i < count; i++ {
		WritePNG(t, filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i)), width, height)
	}
}
