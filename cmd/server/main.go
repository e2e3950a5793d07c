// Package main implements the entry point for the Purrfect Pixels server,
// which summons imaginary cats with Gemini and shows them in an in-memory
// gallery.
package main

import (
	"context"
	"fmt"
	"log"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("Purrfect Pixels server failed: %v", err)
	}
}

// run wires the application together and blocks until the server stops.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"image_model", cfg.LLM.ImageModel,
		"text_model", cfg.LLM.TextModel)
	if cfg.LLM.GeminiAPIKey == "" {
		logger.Warn("no Gemini API key configured, every generation will fail")
	}

	app, err := newApplication(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
