package publish

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultAnchor starts the language table inside the published document.
const DefaultAnchor = "| Language"

// Region is a byte range [Start, End) inside a document.
type Region struct {
	Start int
	End   int
}

// Text returns the slice of document covered by the region.
func (r Region) Text(document string) string {
	return document[r.Start:r.End]
}

// Locator finds the replaceable table region of a document.
type Locator interface {
	Locate(document string) (Region, error)
}

// LineLocator matches the first line beginning with Anchor plus every
// immediately following line that starts with a table bar. The region
// includes the newline of its last line.
type LineLocator struct {
	Anchor string
}

// Locate implements Locator.
func (l LineLocator) Locate(document string) (Region, error) {
	anchor := l.Anchor
	if anchor == "" {
		anchor = DefaultAnchor
	}

	start := -1
	pos := 0
	for pos < len(document) {
		end := lineEnd(document, pos)
		line := document[pos:end]
		switch {
		case start < 0 && strings.HasPrefix(line, anchor):
			start = pos
		case start >= 0 && !strings.HasPrefix(line, "|"):
			return Region{Start: start, End: pos}, nil
		}
		pos = end
	}
	if start < 0 {
		return Region{}, fmt.Errorf("%w: %q", ErrAnchorNotFound, anchor)
	}
	return Region{Start: start, End: len(document)}, nil
}

// lineEnd returns the index just past the newline ending the line at pos, or
// the document length for a final unterminated line.
func lineEnd(document string, pos int) int {
	if i := strings.IndexByte(document[pos:], '\n'); i >= 0 {
		return pos + i + 1
	}
	return len(document)
}

// PatternLocator matches the table region with a regular expression. The
// first match wins.
type PatternLocator struct {
	Pattern *regexp.Regexp
}

// NewPatternLocator builds a PatternLocator equivalent to LineLocator for
// anchor.
func NewPatternLocator(anchor string) PatternLocator {
	if anchor == "" {
		anchor = DefaultAnchor
	}
	return PatternLocator{
		Pattern: regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(anchor) + `.*(?:\n\|.*)*\n?`),
	}
}

// Locate implements Locator.
func (l PatternLocator) Locate(document string) (Region, error) {
	if l.Pattern == nil {
		return Region{}, fmt.Errorf("%w: no pattern configured", ErrAnchorNotFound)
	}
	loc := l.Pattern.FindStringIndex(document)
	if loc == nil {
		return Region{}, fmt.Errorf("%w: %s", ErrAnchorNotFound, l.Pattern.String())
	}
	return Region{Start: loc[0], End: loc[1]}, nil
}
