package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"proofsheet/internal/config"
	"proofsheet/internal/history"
	"proofsheet/internal/logging"
	"proofsheet/internal/sheet"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() *slog.Logger {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		return logging.NewNop()
	}
	return logging.NewFromConfig(cfg)
}

func (c *commandContext) sheetRenderer(backend string, logger *slog.Logger) (sheet.Renderer, error) {
	if strings.TrimSpace(backend) == "" {
		if cfg, err := c.ensureConfig(); err == nil && cfg != nil {
			backend = cfg.Sheet.Backend
		}
	}
	return sheet.NewRenderer(backend, logger)
}

// openHistory returns nil without error when the ledger is disabled.
func (c *commandContext) openHistory() (*history.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.History.Enabled {
		return nil, nil
	}
	return history.Open(cfg.HistoryPath())
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
