package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/phrazzld/purrfect-pixels/internal/domain"
	"github.com/phrazzld/purrfect-pixels/internal/generation"
	"google.golang.org/genai"
)

// firstCandidateParts returns the parts of the first candidate, or nil when
// the response carries no content.
func firstCandidateParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return nil
	}
	return candidate.Content.Parts
}

// extractImageDataURI scans the first candidate for the first part holding
// inline binary data and encodes it as a data URI.
func extractImageDataURI(resp *genai.GenerateContentResponse) (string, bool) {
	for _, part := range firstCandidateParts(resp) {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return domain.EncodeDataURI(part.InlineData.MIMEType, part.InlineData.Data), true
		}
	}
	return "", false
}

// responseText concatenates the non-thought text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, part := range firstCandidateParts(resp) {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// extractJSON strips markdown code fences and any prose around the outermost
// JSON object.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if end := strings.LastIndex(s, "```"); end != -1 {
			s = s[:end]
		}
		s = strings.TrimSpace(s)
	}
	if i := strings.Index(s, "{"); i != -1 {
		s = s[i:]
		if j := strings.LastIndex(s, "}"); j != -1 {
			s = s[:j+1]
		}
	}
	return strings.TrimSpace(s)
}

// catDetails is the name and description read from the text response.
type catDetails struct {
	Name        string
	Description string
}

// parseCatDetails reads the name and description from the model's JSON text.
// Missing, empty or non-string fields are replaced with the fallback values;
// the returned error wraps generation.ErrMalformedTextResponse whenever a
// fallback was needed and is meant for logging only.
func parseCatDetails(text string) (catDetails, error) {
	details := catDetails{
		Name:        generation.FallbackName,
		Description: generation.FallbackDescription,
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(extractJSON(text)), &fields); err != nil {
		return details, fmt.Errorf("%w: %v", generation.ErrMalformedTextResponse, err)
	}

	var missing []string
	if name, ok := stringField(fields, "name"); ok {
		details.Name = name
	} else {
		missing = append(missing, "name")
	}
	if description, ok := stringField(fields, "description"); ok {
		details.Description = description
	} else {
		missing = append(missing, "description")
	}

	if len(missing) > 0 {
		return details, fmt.Errorf("%w: missing %s", generation.ErrMalformedTextResponse,
			strings.Join(missing, ", "))
	}
	return details, nil
}

func stringField(fields map[string]any, key string) (string, bool) {
	value, ok := fields[key].(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return strings.TrimSpace(value), true
}
