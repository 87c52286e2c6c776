// Package main is the entry point for the interactive glow plane viewer.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/glowplane/internal/config"
	"github.com/Faultbox/glowplane/internal/logger"
)

func main() {
	runtime.LockOSThread()

	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Glow Plane ===")
	logger.Debug("config loaded",
		zap.String("displacement", cfg.Displacement.Mode),
		zap.Any("plane", cfg.World.Plane),
		zap.Stringer("base_color", cfg.World.BaseColor),
		zap.Stringer("hover_color", cfg.World.HoverColor),
		zap.Duration("glow", cfg.Glow.Duration),
	)

	app, err := NewApp(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer app.Close()

	app.Run()

	logger.Info("window closed normally")
}
