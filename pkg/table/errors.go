package table

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHeaders is returned when a table is rendered without columns.
	ErrNoHeaders = errors.New("table: at least one header is required")
	// ErrShapeMismatch signals a row whose cell count differs from the header
	// count.
	ErrShapeMismatch = errors.New("table: row shape mismatch")
)

// ShapeMismatchError reports the offending row (zero based) and its cell
// count.
type ShapeMismatchError struct {
	Row  int
	Got  int
	Want int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("table: row %d has %d cells, want %d", e.Row, e.Got, e.Want)
}

// Is matches ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}
