package sheet

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"
	"strings"

	"proofsheet/internal/services"
	"proofsheet/internal/services/magick"
)

const defaultOutputName = "contact_sheet.png"

// Request describes one contact-sheet composition. Grid shape and color are
// parsed before the request is built, so a malformed invocation fails before
// any filesystem work.
type Request struct {
	Dir       string
	SceneName string
	Output    string
	Cols      int
	Rows      int
	MaxWidth  int
	FPS       int
	LineColor color.NRGBA
	LabelSize int
}

// OutputPath resolves the sheet destination: explicit output name, else
// <scene>_sheet.png, else a fixed default, always inside the frame directory.
func (r Request) OutputPath() string {
	name := strings.TrimSpace(r.Output)
	if name == "" {
		if scene := strings.TrimSpace(r.SceneName); scene != "" {
			name = scene + "_sheet.png"
		} else {
			name = defaultOutputName
		}
	}
	return filepath.Join(r.Dir, name)
}

// Renderer produces a contact sheet for a request and returns the written
// output path.
type Renderer interface {
	Render(ctx context.Context, req Request) (string, error)
}

// NewRenderer selects a backend once at startup. "auto" and "native" use the
// in-process compositor; "montage" shells out to ImageMagick, losing grid
// lines and labels.
func NewRenderer(backend string, logger *slog.Logger) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "auto", "native":
		return &nativeRenderer{}, nil
	case "montage":
		client, err := magick.Probe()
		if err != nil {
			return nil, err
		}
		return &montageRenderer{client: client, logger: logger}, nil
	default:
		return nil, services.Wrap(services.ErrConfiguration, "sheet", "backend", fmt.Sprintf("unknown backend %q", backend), nil)
	}
}

type montageRenderer struct {
	client *magick.Client
	logger *slog.Logger
}

func (m *montageRenderer) Render(ctx context.Context, req Request) (string, error) {
	frames, err := Discover(req.Dir)
	if err != nil {
		return "", err
	}
	selected := Select(frames, req.Cols*req.Rows)

	if m.logger != nil {
		m.logger.Warn("montage backend active; grid lines and labels are unavailable")
	}

	paths := make([]string, len(selected))
	for i, frame := range selected {
		paths[i] = frame.Path
	}
	outputPath := req.OutputPath()
	if err := m.client.Montage(ctx, paths, req.Cols, req.Rows, req.MaxWidth, outputPath); err != nil {
		return "", err
	}
	return outputPath, nil
}
