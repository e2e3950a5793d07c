package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Cat-specific validation errors
var (
	// ErrCatIDEmpty is returned when a cat ID is empty or nil.
	ErrCatIDEmpty = errors.New("cat ID cannot be empty")

	// ErrCatImageURLEmpty is returned when a cat has no image.
	ErrCatImageURLEmpty = errors.New("cat image URL cannot be empty")

	// ErrCatNameEmpty is returned when a cat has no name.
	ErrCatNameEmpty = errors.New("cat name cannot be empty")

	// ErrCatDescriptionEmpty is returned when a cat has no description.
	ErrCatDescriptionEmpty = errors.New("cat description cannot be empty")

	// ErrCatCreatedAtInvalid is returned when the creation timestamp is not positive.
	ErrCatCreatedAtInvalid = errors.New("cat creation timestamp must be positive")
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// GeneratedCat is one generation result: an image plus the name and
// backstory written for it. A GeneratedCat is immutable once created.
type GeneratedCat struct {
	ID          uuid.UUID `json:"id"`
	ImageURL    string    `json:"image_url"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	// CreatedAt is milliseconds since the Unix epoch.
	CreatedAt int64 `json:"created_at"`
}

// NewGeneratedCat creates a GeneratedCat with a fresh UUID and a creation
// timestamp taken from now.
// Returns an error if validation fails.
func NewGeneratedCat(imageURL, name, description string, now time.Time) (*GeneratedCat, error) {
	cat := &GeneratedCat{
		ID:          uuid.New(),
		ImageURL:    imageURL,
		Name:        name,
		Description: description,
		CreatedAt:   now.UnixMilli(),
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return cat, nil
}

// Validate checks if the GeneratedCat has valid data.
func (c *GeneratedCat) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCatIDEmpty
	}

	if c.ImageURL == "" {
		return ErrCatImageURLEmpty
	}

	if strings.TrimSpace(c.Name) == "" {
		return ErrCatNameEmpty
	}

	if strings.TrimSpace(c.Description) == "" {
		return ErrCatDescriptionEmpty
	}

	if c.CreatedAt <= 0 {
		return ErrCatCreatedAtInvalid
	}

	return nil
}

// CreatedTime returns the creation timestamp as a time.Time in UTC.
func (c *GeneratedCat) CreatedTime() time.Time {
	return time.UnixMilli(c.CreatedAt).UTC()
}

// DownloadFilename returns the file name offered when the image is saved:
// "cat-" followed by the lower-cased name with every whitespace run
// replaced by a hyphen, and a ".png" extension.
func (c *GeneratedCat) DownloadFilename() string {
	return "cat-" + whitespaceRun.ReplaceAllString(strings.ToLower(c.Name), "-") + ".png"
}
