package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/purrfect-pixels/internal/api/shared"
	"github.com/phrazzld/purrfect-pixels/internal/domain"
	"github.com/phrazzld/purrfect-pixels/internal/gallery"
	"github.com/phrazzld/purrfect-pixels/internal/platform/logger"
)

// CatHandler serves the JSON API over the gallery.
type CatHandler struct {
	gallery Gallery
	logger  *slog.Logger
}

// NewCatHandler creates a new CatHandler
func NewCatHandler(g Gallery, logger *slog.Logger) *CatHandler {
	if g == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("gallery cannot be nil for CatHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CatHandler")
	}

	return &CatHandler{
		gallery: g,
		logger:  logger.With(slog.String("component", "cat_handler")),
	}
}

// ListCats handles GET /api/cats requests.
func (h *CatHandler) ListCats(w http.ResponseWriter, r *http.Request) {
	snap := h.gallery.Snapshot()
	shared.RespondWithJSON(w, r, http.StatusOK, catsToResponse(snap.Cats))
}

// GetCat handles GET /api/cats/{id} requests.
func (h *CatHandler) GetCat(w http.ResponseWriter, r *http.Request) {
	cat, ok := h.lookup(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, catToResponse(cat))
}

// GetCatImage handles GET /api/cats/{id}/image requests. It decodes the
// cat's data URI and serves the raw bytes as an attachment.
func (h *CatHandler) GetCatImage(w http.ResponseWriter, r *http.Request) {
	cat, ok := h.lookup(w, r)
	if !ok {
		return
	}

	mimeType, data, err := domain.ParseDataURI(cat.ImageURL)
	if err != nil {
		// Stored images are always built by the generator, so this is ours.
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"An unexpected error occurred", err)
		return
	}

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", `attachment; filename="`+cat.DownloadFilename()+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Warn("failed to write image response", "error", err)
	}
}

// CreateCat handles POST /api/cats requests. It blocks until the generation
// finishes and returns the new cat.
func (h *CatHandler) CreateCat(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateCatRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		var validationErrs validator.ValidationErrors
		message := "Validation error"
		if errors.As(err, &validationErrs) {
			message = SanitizeValidationError(err)
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, message, err)
		return
	}

	log.Debug("creating cat", slog.Int("prompt_length", len(req.Prompt)))

	cat, err := h.gallery.Submit(r.Context(), req.Prompt)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("cat created", slog.String("cat_id", cat.ID.String()))
	w.Header().Set("Location", "/api/cats/"+cat.ID.String())
	shared.RespondWithJSON(w, r, http.StatusCreated, catToResponse(cat))
}

// GetStatus handles GET /api/status requests.
func (h *CatHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	snap := h.gallery.Snapshot()
	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{
		IsLoading: snap.Status.IsLoading,
		Error:     snap.Status.Error,
		Prompt:    snap.Prompt,
	})
}

// UpdatePrompt handles PUT /api/prompt requests. The draft is read-only
// while a generation is pending.
func (h *CatHandler) UpdatePrompt(w http.ResponseWriter, r *http.Request) {
	var req UpdatePromptRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	if !h.gallery.SetPrompt(req.Prompt) {
		err := gallery.ErrSubmissionInFlight
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.GetStatus(w, r)
}

// lookup resolves the {id} path parameter to a cat, writing an error
// response when that fails.
func (h *CatHandler) lookup(w http.ResponseWriter, r *http.Request) (*domain.GeneratedCat, bool) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return nil, false
	}

	cat, err := h.gallery.Get(id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return nil, false
	}

	return cat, true
}
