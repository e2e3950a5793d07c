// Package generation defines the boundary between the application and the
// external generative AI service. The Generator interface turns a free-text
// prompt into the content of one cat (image, name, description) without
// coupling callers to a specific provider such as Gemini.
package generation
