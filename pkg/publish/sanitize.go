package publish

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// CellSanitizer cleans a value before it becomes a table cell.
type CellSanitizer interface {
	Sanitize(cell string) string
}

// CellSanitizerFunc adapts a function to CellSanitizer.
type CellSanitizerFunc func(string) string

// Sanitize implements CellSanitizer.
func (f CellSanitizerFunc) Sanitize(cell string) string {
	return f(cell)
}

// MarkdownSanitizer strips markup from catalog values and escapes the bars
// that would otherwise split a markdown table cell. Entities produced while
// stripping are decoded again so plain names round-trip unchanged.
type MarkdownSanitizer struct {
	policy *bluemonday.Policy
}

// NewMarkdownSanitizer returns a sanitizer backed by bluemonday's strict
// policy.
func NewMarkdownSanitizer() *MarkdownSanitizer {
	return &MarkdownSanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize implements CellSanitizer.
func (s *MarkdownSanitizer) Sanitize(cell string) string {
	cleaned := html.UnescapeString(s.policy.Sanitize(cell))
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return strings.ReplaceAll(cleaned, "|", `\|`)
}

type passthroughSanitizer struct{}

func (passthroughSanitizer) Sanitize(cell string) string {
	return cell
}
