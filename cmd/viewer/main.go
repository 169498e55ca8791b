// Package main is the entry point for the terminal quote viewer.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/riyasahamed27/book-quote-shorts/internal/platform/config"
	"github.com/riyasahamed27/book-quote-shorts/internal/viewer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Logs go to a file: stdout belongs to the TUI.
	logWriter := &lumberjack.Logger{
		Filename:   cfg.Viewer.LogPath,
		MaxSize:    10,
		MaxBackups: 2,
	}
	logger := slog.New(slog.NewJSONHandler(logWriter, nil)).With(
		slog.String("service_name", cfg.App.Name+"-viewer"),
	)

	client, err := viewer.NewClient(cfg.Viewer.APIBaseURL)
	if err != nil {
		return fmt.Errorf("creating API client: %w", err)
	}

	model := viewer.New(viewer.Options{
		Context:          context.Background(),
		Client:           client,
		Logger:           logger,
		BatchLimit:       cfg.Viewer.BatchLimit,
		AutoplayInterval: cfg.Viewer.AutoplayInterval,
	})

	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}

	return nil
}
