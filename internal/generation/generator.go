package generation

import "context"

// Text used when the language model does not return a usable name or
// description.
const (
	FallbackName        = "Unknown Kitty"
	FallbackDescription = "A mysterious cat appeared from the void."
)

// Content is the provider output for one cat, before it becomes a domain record.
type Content struct {
	// ImageURL is a data URI carrying the generated image.
	ImageURL string

	// Name is a short display name for the cat.
	Name string

	// Description is a short whimsical backstory.
	Description string
}

// Generator defines the interface for generating cat content from a prompt.
// This interface serves as a boundary between the application core and
// external AI/LLM services.
type Generator interface {
	// GenerateCat produces the image, name and description for the cat
	// described by prompt. The caller is responsible for rejecting empty
	// prompts. Failures wrap ErrGenerationFailed.
	GenerateCat(ctx context.Context, prompt string) (*Content, error)
}
