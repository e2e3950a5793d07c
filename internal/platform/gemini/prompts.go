package gemini

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

// promptData represents the data passed to the prompt templates
type promptData struct {
	Prompt string
}

// prompts holds the parsed request templates.
type prompts struct {
	image *template.Template
	text  *template.Template
}

func loadPrompts() (*prompts, error) {
	image, err := template.ParseFS(promptFS, "prompts/image.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse image prompt template: %w", err)
	}

	text, err := template.ParseFS(promptFS, "prompts/text.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text prompt template: %w", err)
	}

	return &prompts{image: image, text: text}, nil
}

// render executes tmpl with the user's description embedded.
func render(tmpl *template.Template, userPrompt string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, promptData{Prompt: userPrompt}); err != nil {
		return "", fmt.Errorf("failed to execute %s prompt template: %w", tmpl.Name(), err)
	}
	return strings.TrimSpace(buf.String()), nil
}
