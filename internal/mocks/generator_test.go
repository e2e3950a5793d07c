package mocks_test

import (
	"context"
	"testing"

	"github.com/phrazzld/purrfect-pixels/internal/generation"
	"github.com/phrazzld/purrfect-pixels/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGenerator(t *testing.T) {
	t.Parallel()

	t.Run("Default success case", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.NewMockGeneratorWithDefaultContent()

		content, err := mockGen.GenerateCat(context.Background(), "a fluffy cat")

		require.NoError(t, err, "Should not return an error")
		assert.Equal(t, "Sir Fluffington", content.Name)
		assert.Equal(t, 1, mockGen.CallCount(), "GenerateCat should be called once")
		assert.Equal(t, "a fluffy cat", mockGen.LastPrompt(), "Should record correct prompt")
	})

	t.Run("Error case", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.MockGeneratorThatFails()

		content, err := mockGen.GenerateCat(context.Background(), "a cat")

		assert.ErrorIs(t, err, generation.ErrGenerationFailed)
		assert.Nil(t, content)
		assert.Equal(t, 1, mockGen.CallCount())
	})

	t.Run("Reset clears call tracking", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.NewMockGeneratorWithDefaultContent()
		_, _ = mockGen.GenerateCat(context.Background(), "a cat")
		mockGen.Reset()

		assert.Equal(t, 0, mockGen.CallCount())
		assert.Equal(t, "", mockGen.LastPrompt())
	})

	t.Run("Blocking generator waits for release", func(t *testing.T) {
		t.Parallel()

		want := &generation.Content{ImageURL: "data:image/png;base64,AA==", Name: "Tom", Description: "A cat."}
		mockGen, started, release := mocks.NewBlockingMockGenerator(want)

		done := make(chan *generation.Content)
		go func() {
			content, _ := mockGen.GenerateCat(context.Background(), "a cat")
			done <- content
		}()

		<-started
		select {
		case <-done:
			t.Fatal("call returned before release")
		default:
		}

		close(release)
		assert.Equal(t, want, <-done)
	})
}
