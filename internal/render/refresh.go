package render

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"proofsheet/internal/config"
	"proofsheet/internal/fileutil"
	"proofsheet/internal/history"
	"proofsheet/internal/logging"
	"proofsheet/internal/services"
	"proofsheet/internal/services/manim"
	"proofsheet/internal/sheet"
)

// Options describes one refresh invocation.
type Options struct {
	SourcePath   string
	SceneName    string
	FPS          int
	ContactSheet bool
}

// Result reports what a refresh produced.
type Result struct {
	RunID      string
	FrameDir   string
	FrameCount int
	FirstFrame string
	LastFrame  string
	Elapsed    time.Duration
	SheetPath  string
}

// Refresher deletes stale frames, re-renders a scene, and optionally chains
// into the contact-sheet compositor. The history store may be nil when the
// ledger is disabled.
type Refresher struct {
	cfg      *config.Config
	logger   *slog.Logger
	renderer manim.Renderer
	sheets   sheet.Renderer
	store    *history.Store
}

// New constructs a Refresher.
func New(cfg *config.Config, logger *slog.Logger, renderer manim.Renderer, sheets sheet.Renderer, store *history.Store) *Refresher {
	return &Refresher{
		cfg:      cfg,
		logger:   logger,
		renderer: renderer,
		sheets:   sheets,
		store:    store,
	}
}

// Run executes the refresh: clear old frames, render, count, optionally
// compose a sheet, and record the run. Each run is independent; reruns
// overwrite the previous frames and sheet.
func (r *Refresher) Run(ctx context.Context, opts Options) (*Result, error) {
	if _, err := os.Stat(opts.SourcePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, services.Wrap(services.ErrNotFound, "render", "refresh", fmt.Sprintf("file not found: %s", opts.SourcePath), nil)
		}
		return nil, fmt.Errorf("inspect source file: %w", err)
	}
	if opts.SceneName == "" {
		return nil, services.Wrap(services.ErrValidation, "render", "refresh", "scene name required", nil)
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = r.cfg.Render.FPS
	}

	frameDir := r.cfg.FrameDir(opts.SourcePath)
	if err := os.MkdirAll(frameDir, 0o755); err != nil {
		return nil, fmt.Errorf("create frame directory: %w", err)
	}

	// One refresh per frame directory at a time; a second invocation fails
	// fast instead of interleaving deletes with a running render.
	lock := flock.New(filepath.Join(frameDir, ".render.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire frame directory lock: %w", err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrValidation, "render", "refresh", fmt.Sprintf("another render is already running for %s", frameDir), nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	runID := uuid.NewString()
	logger := r.logger.With(logging.String("run_id", runID), logging.String("scene", opts.SceneName))

	removed, err := fileutil.RemoveExt(frameDir, ".png")
	if err != nil {
		return nil, fmt.Errorf("clear stale frames: %w", err)
	}
	if removed > 0 {
		logger.Debug("removed stale frames", logging.Int("count", removed))
	}

	logger.Info("rendering scene",
		logging.String("source", opts.SourcePath),
		logging.Int("fps", fps))

	start := time.Now()
	if err := r.renderer.Render(ctx, opts.SourcePath, opts.SceneName, fps); err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	count, first, last, err := fileutil.CountExt(frameDir, ".png")
	if err != nil {
		return nil, fmt.Errorf("count frames: %w", err)
	}

	result := &Result{
		RunID:      runID,
		FrameDir:   frameDir,
		FrameCount: count,
		FirstFrame: first,
		LastFrame:  last,
		Elapsed:    elapsed,
	}

	logger.Info("render complete",
		logging.Int("frames", count),
		logging.Duration("elapsed", elapsed))
	if count == 0 {
		logger.Warn("renderer produced no frames", logging.String("frame_dir", frameDir))
	}

	if opts.ContactSheet {
		sheetPath, err := r.composeSheet(ctx, frameDir, opts.SceneName, fps)
		if err != nil {
			return nil, err
		}
		result.SheetPath = sheetPath
		logger.Info("contact sheet written", logging.String("output", sheetPath))
	}

	if r.store != nil {
		run := &history.Run{
			ID:             runID,
			Scene:          opts.SceneName,
			SourcePath:     opts.SourcePath,
			FPS:            fps,
			FrameCount:     count,
			ElapsedSeconds: elapsed.Seconds(),
			SheetPath:      result.SheetPath,
		}
		if err := r.store.Record(ctx, run); err != nil {
			return nil, fmt.Errorf("record render run: %w", err)
		}
	}

	return result, nil
}

func (r *Refresher) composeSheet(ctx context.Context, frameDir, sceneName string, fps int) (string, error) {
	if r.sheets == nil {
		return "", services.Wrap(services.ErrUnavailable, "render", "contact sheet", "no sheet renderer configured", nil)
	}
	cols, rows, err := sheet.ParseGrid(r.cfg.Sheet.Grid)
	if err != nil {
		return "", services.Wrap(services.ErrConfiguration, "render", "contact sheet", "", err)
	}
	lineColor, err := sheet.ParseHexColor(r.cfg.Sheet.GridColor)
	if err != nil {
		return "", services.Wrap(services.ErrConfiguration, "render", "contact sheet", "", err)
	}
	return r.sheets.Render(ctx, sheet.Request{
		Dir:       frameDir,
		SceneName: sceneName,
		Cols:      cols,
		Rows:      rows,
		MaxWidth:  r.cfg.Sheet.MaxWidth,
		FPS:       fps,
		LineColor: lineColor,
		LabelSize: r.cfg.Sheet.LabelSize,
	})
}
