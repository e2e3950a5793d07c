// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API to create a cat from a free-text description.
//
// One generation issues two sequential requests:
//
//  1. an image request against the image model, whose response is scanned for
//     the first inline image part and turned into a data URI;
//  2. a text request against the text model, constrained to JSON, that yields
//     the cat's name and backstory.
//
// A failure of either request, or an image response without image data, fails
// the whole generation with generation.ErrGenerationFailed. A text response
// that is not the expected JSON is not fatal: the missing values are replaced
// with generation.FallbackName and generation.FallbackDescription.
//
// Requests are never retried. The underlying genai client is created on first
// use, so a missing API key is reported as a generation failure rather than at
// startup.
package gemini
