package domain

// GenerationStatus is the transient state of the current submission.
// It is never persisted.
type GenerationStatus struct {
	// IsLoading is true only while a generation request is in flight.
	IsLoading bool `json:"is_loading"`

	// Error holds the user-facing message of the last failed attempt.
	// It is cleared when the next attempt starts.
	Error string `json:"error,omitempty"`
}

// HasError reports whether the last attempt failed.
func (s GenerationStatus) HasError() bool {
	return s.Error != ""
}
