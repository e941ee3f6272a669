package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"diorama/internal/drag"
	"diorama/internal/game"
	"diorama/internal/world"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	scenePath := flag.String("scene", "assets/scenes/demo.json", "scene file to load")
	tuningPath := flag.String("tuning", "assets/config/drag.yaml", "drag tuning YAML; empty uses built-in defaults")
	debug := flag.Bool("debug", false, "verbose logging and debug overlay")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	logger := newLogger(*debug)
	defer logger.Sync()

	tuning := drag.DefaultTuning()
	if *tuningPath != "" {
		var err error
		if tuning, err = drag.LoadTuning(*tuningPath); err != nil {
			logger.Error("failed to load tuning", zap.String("path", *tuningPath), zap.Error(err))
			os.Exit(1)
		}
	}

	w := world.New(tuning, logger)
	if err := w.LoadScene(*scenePath); err != nil {
		logger.Error("failed to load scene", zap.String("path", *scenePath), zap.Error(err))
		os.Exit(1)
	}

	g := game.New(w, logger.Named("game"))
	g.DebugMode = *debug
	g.Run()
}

func newLogger(debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	encoding := "json"
	encoder := zap.NewProductionEncoderConfig()
	if debug {
		level = zapcore.DebugLevel
		encoding = "console"
		encoder = zap.NewDevelopmentEncoderConfig()
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      debug,
		Encoding:         encoding,
		EncoderConfig:    encoder,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    !debug,
	}
	logger, err := config.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
