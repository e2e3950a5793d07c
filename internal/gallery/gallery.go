package gallery

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/purrfect-pixels/internal/domain"
	"github.com/phrazzld/purrfect-pixels/internal/generation"
	"github.com/phrazzld/purrfect-pixels/internal/redact"
)

// Outcome labels reported to a Recorder.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Recorder receives observations about submissions. It is optional.
type Recorder interface {
	// ObserveGeneration is called once per submission that reached the generator.
	ObserveGeneration(outcome string, duration time.Duration)

	// SetGallerySize is called whenever the number of cats changes.
	SetGallerySize(size int)
}

// Snapshot is a consistent copy of the gallery state.
type Snapshot struct {
	// Cats is ordered newest first.
	Cats   []*domain.GeneratedCat
	Prompt string
	Status domain.GenerationStatus
}

// Count returns the number of cats in the snapshot.
func (s Snapshot) Count() int {
	return len(s.Cats)
}

// CanSubmit reports whether the submit control should be enabled.
func (s Snapshot) CanSubmit() bool {
	return !s.Status.IsLoading && strings.TrimSpace(s.Prompt) != ""
}

// Gallery is the state container for generated cats.
type Gallery struct {
	generator generation.Generator
	logger    *slog.Logger
	recorder  Recorder
	now       func() time.Time

	inflight sync.WaitGroup

	mu     sync.RWMutex
	cats   []*domain.GeneratedCat
	prompt string
	status domain.GenerationStatus
}

// Option configures a Gallery.
type Option func(*Gallery)

// WithRecorder attaches a Recorder.
func WithRecorder(r Recorder) Option {
	return func(g *Gallery) {
		g.recorder = r
	}
}

// WithClock replaces the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Gallery) {
		g.now = now
	}
}

// New creates an empty gallery that generates cats with generator.
func New(generator generation.Generator, logger *slog.Logger, opts ...Option) (*Gallery, error) {
	if generator == nil {
		return nil, fmt.Errorf("generator cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	g := &Gallery{
		generator: generator,
		logger:    logger.With("component", "gallery"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// SetPrompt replaces the prompt draft. It returns false, leaving the draft
// unchanged, while a submission is pending.
func (g *Gallery) SetPrompt(prompt string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status.IsLoading {
		return false
	}
	g.prompt = prompt
	return true
}

// Submit generates a new cat from prompt and waits for the outcome. The
// generator is called without holding the lock, and with a context that is
// not canceled when ctx is: once started, a submission always runs to
// completion or failure.
//
// A blank prompt is rejected without touching the draft. An accepted prompt
// becomes the draft, so a failed attempt can be retried.
//
// On success the new cat is returned and placed first in the gallery. On
// failure the generator's error is returned and the gallery status carries
// FailureMessage.
func (g *Gallery) Submit(ctx context.Context, prompt string) (*domain.GeneratedCat, error) {
	if err := g.begin(prompt, false); err != nil {
		return nil, err
	}
	return g.run(ctx, prompt)
}

// Start records prompt as the draft and, unless it is blank or another
// submission is pending, generates a new cat in the background. It returns
// as soon as the gallery is Pending; the outcome is read from the status.
func (g *Gallery) Start(ctx context.Context, prompt string) error {
	if err := g.begin(prompt, true); err != nil {
		return err
	}

	g.inflight.Add(1)
	go func() {
		defer g.inflight.Done()
		_, _ = g.run(context.WithoutCancel(ctx), prompt)
	}()
	return nil
}

// Wait blocks until the background submission started by Start, if any,
// has finished.
func (g *Gallery) Wait() {
	g.inflight.Wait()
}

func (g *Gallery) run(ctx context.Context, prompt string) (*domain.GeneratedCat, error) {
	started := g.now()
	content, err := g.generator.GenerateCat(context.WithoutCancel(ctx), strings.TrimSpace(prompt))
	if err == nil {
		var cat *domain.GeneratedCat
		cat, err = domain.NewGeneratedCat(content.ImageURL, content.Name, content.Description, g.now())
		if err == nil {
			g.onSuccess(cat)
			g.observe(OutcomeSuccess, started)
			g.logger.InfoContext(ctx, "cat generated", "cat_id", cat.ID.String(), "name", cat.Name)
			return cat, nil
		}
		err = fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	g.onFailure(FailureMessage)
	g.observe(OutcomeFailure, started)
	g.logger.ErrorContext(ctx, "cat generation failed", "error", redact.Error(err))
	return nil, err
}

// begin moves Idle -> Pending. Blank prompts and submissions arriving while
// another one is pending leave the status untouched. With recordBlank a
// blank prompt still replaces the draft, mirroring what the user typed.
func (g *Gallery) begin(prompt string, recordBlank bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status.IsLoading {
		return ErrSubmissionInFlight
	}

	if strings.TrimSpace(prompt) == "" {
		if recordBlank {
			g.prompt = prompt
		}
		return ErrEmptyPrompt
	}

	g.prompt = prompt
	g.status = domain.GenerationStatus{IsLoading: true}
	return nil
}

// onSuccess moves Pending -> Idle, prepending cat and clearing the prompt.
func (g *Gallery) onSuccess(cat *domain.GeneratedCat) {
	g.mu.Lock()
	cats := make([]*domain.GeneratedCat, 0, len(g.cats)+1)
	cats = append(cats, cat)
	g.cats = append(cats, g.cats...)
	g.prompt = ""
	g.status = domain.GenerationStatus{}
	size := len(g.cats)
	g.mu.Unlock()

	if g.recorder != nil {
		g.recorder.SetGallerySize(size)
	}
}

// onFailure moves Pending -> Idle, keeping the prompt and the collection.
func (g *Gallery) onFailure(message string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.status = domain.GenerationStatus{Error: message}
}

func (g *Gallery) observe(outcome string, started time.Time) {
	if g.recorder != nil {
		g.recorder.ObserveGeneration(outcome, g.now().Sub(started))
	}
}

// Snapshot returns a copy of the current state.
func (g *Gallery) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Snapshot{
		Cats:   append([]*domain.GeneratedCat(nil), g.cats...),
		Prompt: g.prompt,
		Status: g.status,
	}
}

// Status returns the current generation status.
func (g *Gallery) Status() domain.GenerationStatus {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.status
}

// Get returns the cat with the given ID.
func (g *Gallery) Get(id uuid.UUID) (*domain.GeneratedCat, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, cat := range g.cats {
		if cat.ID == id {
			return cat, nil
		}
	}
	return nil, ErrCatNotFound
}
