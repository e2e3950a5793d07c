package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/purrfect-pixels/internal/domain"
	"github.com/phrazzld/purrfect-pixels/internal/gallery"
)

// Gallery is the part of *gallery.Gallery the handlers use.
type Gallery interface {
	Submit(ctx context.Context, prompt string) (*domain.GeneratedCat, error)
	Start(ctx context.Context, prompt string) error
	SetPrompt(prompt string) bool
	Snapshot() gallery.Snapshot
	Get(id uuid.UUID) (*domain.GeneratedCat, error)
}

var _ Gallery = (*gallery.Gallery)(nil)
