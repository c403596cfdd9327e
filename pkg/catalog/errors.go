package catalog

import (
	"errors"
	"fmt"
)

// Field names reported by MissingFieldError.
const (
	FieldCode        = "code"
	FieldEnglishName = "englishName"
)

var (
	// ErrMissingField signals a catalog row without one of its required fields.
	ErrMissingField = errors.New("catalog: missing required field")
	// ErrInvalidFormat signals a trigram source that is not a map of maps of
	// strings.
	ErrInvalidFormat = errors.New("catalog: invalid trigram source")
)

// MissingFieldError identifies the field and source line of an incomplete
// catalog row. Line is zero when the row position is unknown.
type MissingFieldError struct {
	Field string
	Line  int
}

func (e *MissingFieldError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("catalog: line %d: missing required field %q", e.Line, e.Field)
	}
	return fmt.Sprintf("catalog: missing required field %q", e.Field)
}

// Is matches ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// FormatError describes where a trigram source diverged from the expected
// script → code → trigram string structure.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("catalog: invalid trigram source: %s", e.Reason)
	}
	return fmt.Sprintf("catalog: invalid trigram source at %s: %s", e.Path, e.Reason)
}

// Is matches ErrInvalidFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}
