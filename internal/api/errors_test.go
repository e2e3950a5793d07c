package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/purrfect-pixels/internal/domain"
	"github.com/phrazzld/purrfect-pixels/internal/gallery"
	"github.com/phrazzld/purrfect-pixels/internal/generation"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{
			name:   "generation failure",
			err:    fmt.Errorf("%w: image request: %w", generation.ErrGenerationFailed, errors.New("503")),
			status: http.StatusBadGateway,
			msg:    gallery.FailureMessage,
		},
		{
			name:   "invalid generated content",
			err:    fmt.Errorf("%w: %w", generation.ErrGenerationFailed, domain.ErrValidation),
			status: http.StatusBadGateway,
			msg:    gallery.FailureMessage,
		},
		{
			name:   "not found",
			err:    gallery.ErrCatNotFound,
			status: http.StatusNotFound,
			msg:    "Cat not found",
		},
		{
			name:   "in flight",
			err:    gallery.ErrSubmissionInFlight,
			status: http.StatusConflict,
			msg:    "A kitty is already being summoned. Please wait.",
		},
		{
			name:   "empty prompt",
			err:    gallery.ErrEmptyPrompt,
			status: http.StatusBadRequest,
			msg:    "Prompt cannot be empty",
		},
		{
			name:   "invalid id",
			err:    fmt.Errorf("%w: id has invalid format", domain.ErrInvalidID),
			status: http.StatusBadRequest,
			msg:    "Invalid cat ID",
		},
		{
			name:   "invalid data uri",
			err:    fmt.Errorf("%w: missing data scheme", domain.ErrInvalidFormat),
			status: http.StatusBadRequest,
			msg:    "Invalid image data",
		},
		{
			name:   "unknown",
			err:    errors.New("something odd at /home/app/secret.go"),
			status: http.StatusInternalServerError,
			msg:    "An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, MapErrorToStatusCode(tc.err))
			assert.Equal(t, tc.msg, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestGetSafeErrorMessage_Nil(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}

func TestSanitizeValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "required",
			err:      errors.New("Key: 'CreateCatRequest.Prompt' Error:Field validation for 'Prompt' failed on the 'required' tag"),
			expected: "Invalid Prompt: required field",
		},
		{
			name:     "max",
			err:      errors.New("Key: 'CreateCatRequest.Prompt' Error:Field validation for 'Prompt' failed on the 'max' tag"),
			expected: "Invalid Prompt: too long",
		},
		{
			name:     "unknown tag",
			err:      errors.New("Key: 'X.Y' Error:Field validation for 'Y' failed on the 'uuid' tag"),
			expected: "Invalid Y: validation failed",
		},
		{
			name:     "not a validation error",
			err:      errors.New("boom"),
			expected: "Validation error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeValidationError(tc.err))
		})
	}
}
