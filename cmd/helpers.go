package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ziadkadry99/synthesis/internal/config"
	"github.com/ziadkadry99/synthesis/internal/content"
	"github.com/ziadkadry99/synthesis/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `synthesis init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger returns the stderr logger at the configured level; --verbose
// forces debug.
func newLogger(cfg *config.Config) *slog.Logger {
	if verbose {
		return logging.New(slog.LevelDebug)
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return logging.New(level)
}

// loadContent reads the configured content file over the built-in content.
func loadContent(cfg *config.Config) (*content.Content, error) {
	c, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return c, nil
}
