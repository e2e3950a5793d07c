package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/purrfect-pixels/internal/config"
	"github.com/phrazzld/purrfect-pixels/internal/generation"
	"github.com/phrazzld/purrfect-pixels/internal/redact"
	"google.golang.org/genai"
)

// jsonMIMEType constrains the text request to a JSON answer.
const jsonMIMEType = "application/json"

// ContentGenerator is the part of the genai client the generator needs.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// ClientFactory creates the ContentGenerator on first use.
type ClientFactory func(ctx context.Context) (ContentGenerator, error)

// Generator implements the generation.Generator interface using
// Google's Gemini API.
type Generator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// prompts holds the parsed request templates
	prompts *prompts

	// newClient creates the API client lazily
	newClient ClientFactory

	mu     sync.Mutex
	client ContentGenerator
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Generator backed by the genai client.
//
// The API key is not checked here: the client is created on the first call
// to GenerateCat, and a missing or invalid key makes that call fail with
// generation.ErrGenerationFailed.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	return NewGeneratorWithFactory(logger, cfg, genaiClientFactory(cfg.GeminiAPIKey))
}

// NewGeneratorWithFactory creates a Generator that obtains its client from
// factory. It is used by tests to substitute a fake client.
func NewGeneratorWithFactory(logger *slog.Logger, cfg config.LLMConfig, factory ClientFactory) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if factory == nil {
		return nil, fmt.Errorf("%w: client factory cannot be nil", generation.ErrInvalidConfig)
	}

	if cfg.ImageModel == "" {
		return nil, fmt.Errorf("%w: image model cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.TextModel == "" {
		return nil, fmt.Errorf("%w: text model cannot be empty", generation.ErrInvalidConfig)
	}

	p, err := loadPrompts()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger:    logger,
		config:    cfg,
		prompts:   p,
		newClient: factory,
	}, nil
}

// genaiClientFactory returns a factory that creates a Gemini API client.
func genaiClientFactory(apiKey string) ClientFactory {
	return func(ctx context.Context) (ContentGenerator, error) {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, err
		}
		return client.Models, nil
	}
}

// contentClient returns the cached client, creating it if needed. A failed
// creation is not cached, so the next call tries again.
func (g *Generator) contentClient(ctx context.Context) (ContentGenerator, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}

	client, err := g.newClient(ctx)
	if err != nil {
		return nil, err
	}
	g.client = client
	return client, nil
}

// GenerateCat creates the image, name and description for the cat described
// by userPrompt. The image request runs first; the text request only runs
// once an image was produced.
func (g *Generator) GenerateCat(ctx context.Context, userPrompt string) (*generation.Content, error) {
	if userPrompt == "" {
		return nil, fmt.Errorf("%w: %w", generation.ErrGenerationFailed, generation.ErrEmptyPrompt)
	}

	client, err := g.contentClient(ctx)
	if err != nil {
		g.logger.ErrorContext(ctx, "failed to create Gemini client", "error", redact.Error(err))
		return nil, fmt.Errorf("%w: client setup: %w", generation.ErrGenerationFailed, err)
	}

	imageURL, err := g.generateImage(ctx, client, userPrompt)
	if err != nil {
		return nil, err
	}

	details, err := g.generateDetails(ctx, client, userPrompt)
	if err != nil {
		return nil, err
	}

	return &generation.Content{
		ImageURL:    imageURL,
		Name:        details.Name,
		Description: details.Description,
	}, nil
}

// generateImage issues the image request and returns the image as a data URI.
func (g *Generator) generateImage(ctx context.Context, client ContentGenerator, userPrompt string) (string, error) {
	prompt, err := render(g.prompts.image, userPrompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	g.logger.InfoContext(ctx, "requesting cat image",
		"model", g.config.ImageModel,
		"prompt_length", len(userPrompt))

	started := time.Now()
	resp, err := client.GenerateContent(ctx, g.config.ImageModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.config.ImageTemperature),
	})
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini image request failed",
			"model", g.config.ImageModel,
			"error", redact.Error(err))
		return "", fmt.Errorf("%w: image request: %w", generation.ErrGenerationFailed, err)
	}

	imageURL, ok := extractImageDataURI(resp)
	if !ok {
		g.logger.WarnContext(ctx, "Gemini image response contained no image data",
			"model", g.config.ImageModel,
			"finish_reason", finishReason(resp))
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, generation.ErrNoImageProduced)
	}

	g.logger.DebugContext(ctx, "cat image generated",
		"duration_ms", time.Since(started).Milliseconds(),
		"data_uri_length", len(imageURL))

	return imageURL, nil
}

// generateDetails issues the JSON text request. Only a failed request is an
// error; unusable JSON falls back to fixed values.
func (g *Generator) generateDetails(ctx context.Context, client ContentGenerator, userPrompt string) (catDetails, error) {
	prompt, err := render(g.prompts.text, userPrompt)
	if err != nil {
		return catDetails{}, fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	g.logger.InfoContext(ctx, "requesting cat name and description", "model", g.config.TextModel)

	resp, err := client.GenerateContent(ctx, g.config.TextModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: jsonMIMEType,
	})
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini text request failed",
			"model", g.config.TextModel,
			"error", redact.Error(err))
		return catDetails{}, fmt.Errorf("%w: text request: %w", generation.ErrGenerationFailed, err)
	}

	details, parseErr := parseCatDetails(responseText(resp))
	if parseErr != nil {
		g.logger.WarnContext(ctx, "using fallback cat details",
			"model", g.config.TextModel,
			"error", parseErr)
	}

	return details, nil
}

func finishReason(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return ""
	}
	return string(resp.Candidates[0].FinishReason)
}
