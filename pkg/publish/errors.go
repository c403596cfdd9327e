package publish

import (
	"errors"
	"fmt"
)

var (
	// ErrAnchorNotFound signals that the document no longer contains the table
	// region the generator substitutes.
	ErrAnchorNotFound = errors.New("publish: table anchor not found")
	// ErrExternalTool signals that the formatter collaborator failed. The
	// artifact it was pointed at has already been written.
	ErrExternalTool = errors.New("publish: external tool failed")
	// ErrInvalidIdentifier signals that a catalog code or script name cannot be
	// emitted as a Go identifier, or collides with another one.
	ErrInvalidIdentifier = errors.New("publish: invalid identifier")
)

// IdentifierError names the catalog item behind a rejected identifier.
// Previous is set when the identifier was already taken.
type IdentifierError struct {
	Ident    string
	Owner    string
	Previous string
}

func (e *IdentifierError) Error() string {
	if e.Previous != "" {
		return fmt.Sprintf("publish: %s maps to identifier %s already used by %s", e.Owner, e.Ident, e.Previous)
	}
	return fmt.Sprintf("publish: %s maps to %q, which is not a Go identifier", e.Owner, e.Ident)
}

// Is matches ErrInvalidIdentifier.
func (e *IdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier
}

// ExternalToolError carries the tool invocation details of a formatter
// failure.
type ExternalToolError struct {
	Tool   string
	Path   string
	Output string
	Err    error
}

func (e *ExternalToolError) Error() string {
	msg := fmt.Sprintf("publish: %s %s: %v", e.Tool, e.Path, e.Err)
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

// Is matches ErrExternalTool.
func (e *ExternalToolError) Is(target error) bool {
	return target == ErrExternalTool
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}
