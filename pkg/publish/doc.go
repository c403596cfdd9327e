// Package publish turns a loaded catalog model into the generator's two
// artifacts: the language table substituted into an existing markdown
// document, and a Go source file expanded from a pongo2 template. Locating the
// table region and formatting the generated file are delegated to the Locator
// and Formatter collaborators so either strategy can be swapped.
package publish
