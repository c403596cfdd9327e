// Package table renders headers and rows into an aligned, pipe-delimited text
// grid suitable for markdown documents. The renderer is data agnostic: it
// never sorts, filters, or interprets cells. Column widths are measured in
// runes and recomputed on every render.
package table
