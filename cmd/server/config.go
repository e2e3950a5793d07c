package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/phrazzld/purrfect-pixels/internal/config"
)

// loadAppConfig loads a .env file from the working directory, if there is
// one, and then the application configuration. Variables already set in the
// environment take precedence over the .env file.
func loadAppConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}
