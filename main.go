package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/soocke/snapnote/app"
	"github.com/soocke/snapnote/config"
)

func main() {
	var (
		configPath  = flag.String("config", "snapnote.json", "path to the JSON config file")
		envPath     = flag.String("env", ".env", "optional dotenv file with SNAPNOTE_* overrides")
		debugFlag   = flag.Bool("debug", false, "enable debug logging and runtime stats")
		surface     = flag.String("surface", "", "capture surface: screen, displays or file")
		surfacePath = flag.String("surface-path", "", "image file rendered by the file surface")
		saveConfig  = flag.Bool("save-config", false, "write the effective config back to -config")
	)
	flag.Parse()

	// Logs go to stderr; stdout carries capture results when that consumer is enabled.
	logger := NewLogger(os.Stderr, slog.LevelInfo)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *configPath, "error", err)
	}
	if err := config.LoadEnv(cfg, *envPath); err != nil {
		logger.Warn("environment overrides", "error", err)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *surface != "" {
		cfg.Surface = *surface
	}
	if *surfacePath != "" {
		cfg.SurfacePath = *surfacePath
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("config adjusted", "error", err)
	}
	if cfg.Debug {
		logger = NewLogger(os.Stderr, slog.LevelDebug)
	}
	if *saveConfig {
		if err := cfg.Save(*configPath); err != nil {
			logger.Error("save config", "path", *configPath, "error", err)
		}
	}

	application, err := app.NewApp("SnapNote", 360, 420, cfg, logger, os.Stdout)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	if err := application.Start(); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}
