package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/purrfect-pixels/internal/domain"
	"github.com/phrazzld/purrfect-pixels/internal/gallery"
	"github.com/phrazzld/purrfect-pixels/internal/generation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Generation failures are checked first: they may also wrap domain
	// validation errors for content the provider returned.
	case errors.Is(err, generation.ErrGenerationFailed):
		return http.StatusBadGateway

	case errors.Is(err, gallery.ErrCatNotFound):
		return http.StatusNotFound

	case errors.Is(err, gallery.ErrSubmissionInFlight):
		return http.StatusConflict

	case errors.Is(err, gallery.ErrEmptyPrompt),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, generation.ErrGenerationFailed):
		return gallery.FailureMessage

	case errors.Is(err, gallery.ErrCatNotFound):
		return "Cat not found"

	case errors.Is(err, gallery.ErrSubmissionInFlight):
		return "A kitty is already being summoned. Please wait."

	case errors.Is(err, gallery.ErrEmptyPrompt):
		return "Prompt cannot be empty"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid cat ID"

	case errors.Is(err, domain.ErrInvalidFormat):
		return "Invalid image data"

	case errors.Is(err, domain.ErrValidation):
		return "Invalid cat data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'CreateCatRequest.Prompt' Error:Field validation for 'Prompt' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
