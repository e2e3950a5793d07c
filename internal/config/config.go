package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey is deliberately optional: a missing or invalid key surfaces
	// as a generation failure on first use rather than at startup.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	// ImageModel is the Gemini model used for image generation.
	ImageModel string `mapstructure:"image_model" validate:"required"`

	// TextModel is the Gemini model used for the name and backstory.
	TextModel string `mapstructure:"text_model" validate:"required"`

	// ImageTemperature is the sampling temperature of the image request.
	// It defaults to DefaultImageTemperature.
	ImageTemperature float32 `mapstructure:"image_temperature" validate:"gte=0,lte=2"`
}
