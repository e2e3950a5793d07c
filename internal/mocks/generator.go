package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/purrfect-pixels/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateCatFn allows test cases to mock the GenerateCat behavior
	GenerateCatFn func(ctx context.Context, prompt string) (*generation.Content, error)

	// Default response values
	Content *generation.Content
	Err     error

	// Call tracking for verification
	GenerateCatCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times GenerateCat was called
		Count int

		// Prompts contains all prompts passed to GenerateCat calls
		Prompts []string

		// Contexts contains all contexts passed to GenerateCat calls
		Contexts []context.Context
	}
}

var _ generation.Generator = (*MockGenerator)(nil)

// GenerateCat implements the generation.Generator interface
func (m *MockGenerator) GenerateCat(ctx context.Context, prompt string) (*generation.Content, error) {
	m.GenerateCatCalls.mu.Lock()
	m.GenerateCatCalls.Count++
	m.GenerateCatCalls.Prompts = append(m.GenerateCatCalls.Prompts, prompt)
	m.GenerateCatCalls.Contexts = append(m.GenerateCatCalls.Contexts, ctx)
	m.GenerateCatCalls.mu.Unlock()

	if m.GenerateCatFn != nil {
		return m.GenerateCatFn(ctx, prompt)
	}

	return m.Content, m.Err
}

// CallCount returns how many times GenerateCat was called.
func (m *MockGenerator) CallCount() int {
	m.GenerateCatCalls.mu.Lock()
	defer m.GenerateCatCalls.mu.Unlock()
	return m.GenerateCatCalls.Count
}

// LastPrompt returns the prompt of the most recent call, or "".
func (m *MockGenerator) LastPrompt() string {
	m.GenerateCatCalls.mu.Lock()
	defer m.GenerateCatCalls.mu.Unlock()
	if len(m.GenerateCatCalls.Prompts) == 0 {
		return ""
	}
	return m.GenerateCatCalls.Prompts[len(m.GenerateCatCalls.Prompts)-1]
}

// NewMockGeneratorWithContent creates a MockGenerator that returns the specified content
func NewMockGeneratorWithContent(content *generation.Content) *MockGenerator {
	return &MockGenerator{
		Content: content,
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

// NewMockGeneratorWithDefaultContent creates a MockGenerator with a sample cat
func NewMockGeneratorWithDefaultContent() *MockGenerator {
	return NewMockGeneratorWithContent(&generation.Content{
		ImageURL:    "data:image/png;base64,iVBORw0KGgo=",
		Name:        "Sir Fluffington",
		Description: "A distinguished gentleman of the windowsill. He judges pigeons for sport.",
	})
}

// MockGeneratorThatFails creates a MockGenerator that simulates a generation failure
func MockGeneratorThatFails() *MockGenerator {
	return &MockGenerator{
		Err: generation.ErrGenerationFailed,
	}
}

// NewBlockingMockGenerator creates a MockGenerator whose calls block until
// release is closed, then return content. started receives one value per
// call as soon as the call begins.
func NewBlockingMockGenerator(content *generation.Content) (m *MockGenerator, started <-chan struct{}, release chan<- struct{}) {
	startedCh := make(chan struct{}, 16)
	releaseCh := make(chan struct{})

	m = &MockGenerator{
		GenerateCatFn: func(ctx context.Context, prompt string) (*generation.Content, error) {
			startedCh <- struct{}{}
			<-releaseCh
			return content, nil
		},
	}
	return m, startedCh, releaseCh
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.GenerateCatCalls.mu.Lock()
	defer m.GenerateCatCalls.mu.Unlock()

	m.GenerateCatCalls.Count = 0
	m.GenerateCatCalls.Prompts = nil
	m.GenerateCatCalls.Contexts = nil
}
