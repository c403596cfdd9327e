// Package template defines the renderer-agnostic template contract used to
// expand source templates. The gotemplate subpackage provides a pongo2-backed
// implementation with filters for emitting Go source.
package template
