package config

import (
	"errors"
	"fmt"

	"proofsheet/internal/sheet"
)

var validQualities = map[string]struct{}{
	"l": {}, "m": {}, "h": {}, "p": {}, "k": {},
}

var validBackends = map[string]struct{}{
	"auto": {}, "native": {}, "montage": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateSheet(); err != nil {
		return err
	}
	if err := c.validateDocs(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRender() error {
	if _, ok := validQualities[c.Render.Quality]; !ok {
		return fmt.Errorf("render.quality must be one of l, m, h, p, k (got %q)", c.Render.Quality)
	}
	if c.Render.FPS <= 0 {
		return errors.New("render.fps must be positive")
	}
	return nil
}

func (c *Config) validateSheet() error {
	if _, _, err := sheet.ParseGrid(c.Sheet.Grid); err != nil {
		return fmt.Errorf("sheet.grid: %w", err)
	}
	if _, err := sheet.ParseHexColor(c.Sheet.GridColor); err != nil {
		return fmt.Errorf("sheet.grid_color: %w", err)
	}
	if c.Sheet.MaxWidth <= 0 {
		return errors.New("sheet.max_width must be positive")
	}
	if c.Sheet.LabelSize <= 0 {
		return errors.New("sheet.label_size must be positive")
	}
	if _, ok := validBackends[c.Sheet.Backend]; !ok {
		return fmt.Errorf("sheet.backend must be auto, native, or montage (got %q)", c.Sheet.Backend)
	}
	return nil
}

func (c *Config) validateDocs() error {
	if c.Docs.RepoURL == "" {
		return errors.New("docs.repo_url must be set")
	}
	if c.Docs.RepoDir == "" {
		return errors.New("docs.repo_dir must be set")
	}
	if c.Docs.OutDir == "" {
		return errors.New("docs.out_dir must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	return nil
}
