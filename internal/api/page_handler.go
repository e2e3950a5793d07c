package api

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/phrazzld/purrfect-pixels/internal/api/shared"
	"github.com/phrazzld/purrfect-pixels/internal/domain"
	"github.com/phrazzld/purrfect-pixels/internal/gallery"
	"github.com/phrazzld/purrfect-pixels/internal/platform/logger"
	"github.com/phrazzld/purrfect-pixels/internal/redact"
)

// CardDateLayout is the layout of the creation date shown on a card.
const CardDateLayout = "1/2/2006"

const generateButtonLabel = "Generate"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type buttonView struct {
	Label     string
	Disabled  bool
	IsLoading bool
}

type cardView struct {
	ID               string
	Name             string
	Description      string
	ImageSrc         template.URL
	DownloadFilename string
	Date             string
	ISODate          string
}

type pageView struct {
	Cats      []cardView
	Count     int
	Prompt    string
	Error     string
	IsLoading bool
	Button    buttonView
	Year      int

	MaxPromptLength int
}

// PageHandler renders the gallery page and accepts the prompt form.
type PageHandler struct {
	gallery   Gallery
	logger    *slog.Logger
	templates *template.Template
	now       func() time.Time
}

// PageOption configures a PageHandler.
type PageOption func(*PageHandler)

// WithClock replaces the time source used for the footer year.
func WithClock(now func() time.Time) PageOption {
	return func(h *PageHandler) {
		h.now = now
	}
}

// NewPageHandler parses the embedded templates and creates a PageHandler.
func NewPageHandler(g Gallery, logger *slog.Logger, opts ...PageOption) (*PageHandler, error) {
	if g == nil {
		return nil, errors.New("gallery cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	h := &PageHandler{
		gallery:   g,
		logger:    logger.With(slog.String("component", "page_handler")),
		templates: tmpl,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// StaticHandler serves the embedded stylesheet under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// ALLOW-PANIC: the embedded directory is fixed at build time
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// ShowGallery handles GET / requests.
func (h *PageHandler) ShowGallery(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "page", h.buildView(h.gallery.Snapshot())); err != nil {
		log.Error("failed to render gallery page", "error", redact.Error(err))
		http.Error(w, "An unexpected error occurred", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn("failed to write gallery page", "error", err)
	}
}

// Generate handles POST /generate form submissions. The generation runs in
// the background, so the redirected page shows it as pending and refreshes
// until the outcome is recorded in the gallery state.
func (h *PageHandler) Generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	r.Body = http.MaxBytesReader(w, r.Body, shared.MaxRequestBodyBytes)
	if err := r.ParseForm(); err != nil {
		log.Debug("invalid form submission", "error", err)
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	prompt := r.PostFormValue("prompt")
	if utf8.RuneCountInString(prompt) > MaxPromptLength {
		log.Debug("form submission rejected", "reason", "prompt too long")
		http.Error(w, "Prompt must be at most "+strconv.Itoa(MaxPromptLength)+" characters", http.StatusBadRequest)
		return
	}

	err := h.gallery.Start(r.Context(), prompt)
	if err != nil {
		log.Debug("form submission ignored", "reason", err.Error())
	}

	http.Redirect(w, r, "/#gallery", http.StatusSeeOther)
}

func (h *PageHandler) buildView(snap gallery.Snapshot) pageView {
	cards := make([]cardView, 0, len(snap.Cats))
	for _, cat := range snap.Cats {
		cards = append(cards, toCardView(cat))
	}

	return pageView{
		Cats:      cards,
		Count:     snap.Count(),
		Prompt:    snap.Prompt,
		Error:     snap.Status.Error,
		IsLoading: snap.Status.IsLoading,
		Button: buttonView{
			Label:     generateButtonLabel,
			Disabled:  strings.TrimSpace(snap.Prompt) == "",
			IsLoading: snap.Status.IsLoading,
		},
		Year:            h.now().Year(),
		MaxPromptLength: MaxPromptLength,
	}
}

func toCardView(cat *domain.GeneratedCat) cardView {
	created := cat.CreatedTime().UTC()
	view := cardView{
		ID:               cat.ID.String(),
		Name:             cat.Name,
		Description:      cat.Description,
		DownloadFilename: cat.DownloadFilename(),
		Date:             created.Format(CardDateLayout),
		ISODate:          created.Format(time.DateOnly),
	}

	// Only well-formed base64 data URIs are trusted in src and href.
	if _, _, err := domain.ParseDataURI(cat.ImageURL); err == nil {
		view.ImageSrc = template.URL(cat.ImageURL)
	}
	return view
}
