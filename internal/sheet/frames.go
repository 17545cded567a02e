package sheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"proofsheet/internal/services"
)

// Frame is a discovered still image. Index is the frame's position in the
// full sorted directory listing, not the sampled subset; timing labels are
// derived from it.
type Frame struct {
	Path  string
	Index int
}

// Name returns the frame's base filename.
func (f Frame) Name() string {
	return filepath.Base(f.Path)
}

// Discover lists the PNG frames in dir in lexicographic filename order.
// Previously generated sheet outputs are excluded so a rerun over the same
// directory selects the same frames.
func Discover(dir string) ([]Frame, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, services.Wrap(services.ErrNotFound, "sheet", "discover", fmt.Sprintf("frame directory not found: %s", dir), nil)
		}
		return nil, fmt.Errorf("read frame directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".png") {
			continue
		}
		if isSheetOutput(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, services.Wrap(services.ErrNotFound, "sheet", "discover", fmt.Sprintf("no PNG frames found in %s", dir), nil)
	}

	frames := make([]Frame, len(names))
	for i, name := range names {
		frames[i] = Frame{Path: filepath.Join(dir, name), Index: i}
	}
	return frames, nil
}

func isSheetOutput(name string) bool {
	lower := strings.ToLower(name)
	return lower == defaultOutputName || strings.HasSuffix(lower, "_sheet.png")
}
