package gallery

import "errors"

// FailureMessage is the user-facing message set on any failed submission.
const FailureMessage = "Failed to summon the kitty. Please try again."

// Errors returned by the gallery.
var (
	// ErrEmptyPrompt is returned when a submission's prompt is empty or only
	// whitespace. The state is left untouched.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrSubmissionInFlight is returned when a submission arrives while
	// another one is pending. The submission is dropped.
	ErrSubmissionInFlight = errors.New("a generation request is already in flight")

	// ErrCatNotFound is returned by Get for an unknown ID.
	ErrCatNotFound = errors.New("cat not found")
)
