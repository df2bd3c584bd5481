// Package main is the entry point for the interactive text viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/textmesh/internal/config"
	"github.com/Faultbox/textmesh/internal/inspector"
	"github.com/Faultbox/textmesh/internal/logger"
	"github.com/Faultbox/textmesh/internal/viewer"
)

// app is the plain viewer or the inspector.
type app interface {
	Run() error
	Close()
}

func newApp(cfg *config.Config) (app, error) {
	if cfg.Display.Inspector {
		return inspector.New(cfg)
	}
	return viewer.New(cfg)
}

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== textview ===")
	logger.Debug("config",
		zap.Int("fonts", len(cfg.Fonts)),
		zap.Int("styles", len(cfg.Styles)),
		zap.Int("segments", len(cfg.Text.Segments)),
		zap.Bool("inspector", cfg.Display.Inspector),
	)

	a, err := newApp(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
