package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/purrfect-pixels/internal/config"
	"github.com/phrazzld/purrfect-pixels/internal/gallery"
	"github.com/phrazzld/purrfect-pixels/internal/generation"
	"github.com/phrazzld/purrfect-pixels/internal/platform/gemini"
	"github.com/phrazzld/purrfect-pixels/internal/platform/metrics"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator generation.Generator
	metrics   *metrics.Recorder
	gallery   *gallery.Gallery
}

// newApplication creates the application with the Gemini generator.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := gemini.NewGenerator(logger.With("component", "llm_generator"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized")

	return newApplicationWithGenerator(cfg, logger, generator)
}

// newApplicationWithGenerator creates the application around an existing
// generator.
func newApplicationWithGenerator(
	cfg *config.Config,
	logger *slog.Logger,
	generator generation.Generator,
) (*application, error) {
	recorder := metrics.NewRecorder()

	g, err := gallery.New(generator, logger, gallery.WithRecorder(recorder))
	if err != nil {
		return nil, fmt.Errorf("failed to create gallery: %w", err)
	}

	return &application{
		config:    cfg,
		logger:    logger,
		generator: generator,
		metrics:   recorder,
		gallery:   g,
	}, nil
}

// Run starts the HTTP server and blocks until it has shut down.
func (app *application) Run(ctx context.Context) error {
	router, err := app.setupRouter()
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
