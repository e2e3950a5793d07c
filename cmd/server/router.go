package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/purrfect-pixels/internal/api"
	apiMiddleware "github.com/phrazzld/purrfect-pixels/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	pageHandler, err := api.NewPageHandler(app.gallery, app.logger)
	if err != nil {
		return nil, err
	}
	catHandler := api.NewCatHandler(app.gallery, app.logger)

	r.Get("/", pageHandler.ShowGallery)
	r.Post("/generate", pageHandler.Generate)
	r.Handle("/static/*", api.StaticHandler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/cats", catHandler.ListCats)
		r.Post("/cats", catHandler.CreateCat)
		r.Get("/cats/{id}", catHandler.GetCat)
		r.Get("/cats/{id}/image", catHandler.GetCatImage)
		r.Get("/status", catHandler.GetStatus)
		r.Put("/prompt", catHandler.UpdatePrompt)
	})

	r.Handle("/metrics", app.metrics.Handler())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r, nil
}
