package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/purrfect-pixels/internal/gallery"
	"github.com/phrazzld/purrfect-pixels/internal/generation"
	"github.com/phrazzld/purrfect-pixels/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

// testImageURL is a one-pixel PNG as a data URI.
const testImageURL = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

var fixedNow = time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC)

func newTestGallery(t *testing.T, gen generation.Generator) *gallery.Gallery {
	t.Helper()

	l, _ := logger.GetTestLogger(t)
	g, err := gallery.New(gen, l, gallery.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return g
}

// newTestRouter mounts the handlers on the same paths the server uses.
func newTestRouter(t *testing.T, g Gallery) http.Handler {
	t.Helper()

	l, _ := logger.GetTestLogger(t)
	cats := NewCatHandler(g, l)
	pages, err := NewPageHandler(g, l, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Get("/", pages.ShowGallery)
	r.Post("/generate", pages.Generate)
	r.Handle("/static/*", StaticHandler())
	r.Route("/api", func(r chi.Router) {
		r.Get("/cats", cats.ListCats)
		r.Post("/cats", cats.CreateCat)
		r.Get("/cats/{id}", cats.GetCat)
		r.Get("/cats/{id}/image", cats.GetCatImage)
		r.Get("/status", cats.GetStatus)
		r.Put("/prompt", cats.UpdatePrompt)
	})
	return r
}
