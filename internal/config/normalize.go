package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeDocs(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeRender()
	c.normalizeSheet()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	c.Paths.MediaDir = strings.TrimSpace(c.Paths.MediaDir)
	if c.Paths.MediaDir == "" {
		c.Paths.MediaDir = defaultMediaDir
	}
	if value, ok := os.LookupEnv("PROOFSHEET_MEDIA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.MediaDir = strings.TrimSpace(value)
	}
	if c.Paths.MediaDir, err = expandPath(c.Paths.MediaDir); err != nil {
		return fmt.Errorf("paths.media_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDocs() error {
	var err error
	c.Docs.RepoURL = strings.TrimSpace(c.Docs.RepoURL)
	if c.Docs.RepoURL == "" {
		c.Docs.RepoURL = defaultDocsRepoURL
	}
	if c.Docs.RepoDir, err = expandPath(c.Docs.RepoDir); err != nil {
		return fmt.Errorf("docs.repo_dir: %w", err)
	}
	if c.Docs.OutDir, err = expandPath(c.Docs.OutDir); err != nil {
		return fmt.Errorf("docs.out_dir: %w", err)
	}
	c.Docs.SphinxBuild = strings.TrimSpace(c.Docs.SphinxBuild)
	if c.Docs.SphinxBuild == "" {
		c.Docs.SphinxBuild = defaultSphinxBuild
	}
	c.Docs.GitBinary = strings.TrimSpace(c.Docs.GitBinary)
	if c.Docs.GitBinary == "" {
		c.Docs.GitBinary = defaultGitBinary
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = ""
		return nil
	}
	expanded, err := expandPath(c.History.Path)
	if err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	c.History.Path = expanded
	return nil
}

func (c *Config) normalizeRender() {
	c.Render.ManimBinary = strings.TrimSpace(c.Render.ManimBinary)
	if c.Render.ManimBinary == "" {
		c.Render.ManimBinary = defaultManimBinary
	}
	c.Render.Quality = strings.ToLower(strings.TrimSpace(c.Render.Quality))
	if c.Render.Quality == "" {
		c.Render.Quality = defaultRenderQuality
	}
	if c.Render.FPS <= 0 {
		c.Render.FPS = defaultRenderFPS
	}
	if c.Render.TimeoutSeconds <= 0 {
		c.Render.TimeoutSeconds = defaultRenderTimeout
	}
}

func (c *Config) normalizeSheet() {
	c.Sheet.Grid = strings.ToLower(strings.TrimSpace(c.Sheet.Grid))
	if c.Sheet.Grid == "" {
		c.Sheet.Grid = defaultSheetGrid
	}
	if c.Sheet.MaxWidth <= 0 {
		c.Sheet.MaxWidth = defaultSheetMaxWidth
	}
	c.Sheet.GridColor = strings.TrimPrefix(strings.TrimSpace(c.Sheet.GridColor), "#")
	if c.Sheet.GridColor == "" {
		c.Sheet.GridColor = defaultSheetGridColor
	}
	if c.Sheet.LabelSize <= 0 {
		c.Sheet.LabelSize = defaultSheetLabelSize
	}
	c.Sheet.Backend = strings.ToLower(strings.TrimSpace(c.Sheet.Backend))
	if c.Sheet.Backend == "" {
		c.Sheet.Backend = defaultSheetBackend
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
