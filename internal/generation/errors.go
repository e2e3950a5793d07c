package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when either outbound call fails or the
	// image call yields no usable image. Provider errors are wrapped alongside
	// it, so errors.Is works for both this sentinel and the original error.
	ErrGenerationFailed = errors.New("failed to generate cat content")

	// ErrNoImageProduced is returned together with ErrGenerationFailed when
	// the image response carries no inline image data.
	ErrNoImageProduced = errors.New("no image produced")

	// ErrMalformedTextResponse describes a text response that is not valid
	// JSON or lacks a field. Generators absorb it and fall back to fixed
	// values; it is only ever logged.
	ErrMalformedTextResponse = errors.New("malformed text response from language model")

	// ErrEmptyPrompt is returned when a generator is called with an empty prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
