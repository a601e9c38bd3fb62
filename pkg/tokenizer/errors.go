package tokenizer

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration reports an invalid or missing language profile, or an
	// external segmenter that cannot be reached.
	ErrConfiguration = errors.New("configuration error")

	// ErrInput reports caller misuse such as a missing text id in persist mode.
	ErrInput = errors.New("input error")

	// ErrSegmentationUnavailable reports that the external segmenter timed out
	// or failed. Callers may retry later.
	ErrSegmentationUnavailable = errors.New("segmentation unavailable")
)

// ConfigError describes a profile field that failed validation.
type ConfigError struct {
	Profile string
	Field   string
	Reason  string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("profile %q: %s", e.Profile, e.Reason)
	}
	return fmt.Sprintf("profile %q: %s: %s", e.Profile, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfiguration }

// InputError describes a precondition the caller violated.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return "invalid input: " + e.Reason }

func (e *InputError) Unwrap() error { return ErrInput }
