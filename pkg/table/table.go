package table

import (
	"strings"
	"unicode/utf8"
)

const (
	separatorRune = "-"
	cellPadding   = " "
)

// Table accumulates rows for a fixed set of headers.
type Table struct {
	headers []string
	rows    [][]string
}

// New constructs a table with the supplied headers.
func New(headers ...string) *Table {
	return &Table{headers: append([]string(nil), headers...)}
}

// Headers returns a copy of the column names.
func (t *Table) Headers() []string {
	return append([]string(nil), t.headers...)
}

// Len returns the number of rows added so far.
func (t *Table) Len() int {
	return len(t.rows)
}

// Add appends a row. The row must carry exactly one cell per header.
func (t *Table) Add(cells ...string) error {
	if len(cells) != len(t.headers) {
		return &ShapeMismatchError{Row: len(t.rows), Got: len(cells), Want: len(t.headers)}
	}
	t.rows = append(t.rows, append([]string(nil), cells...))
	return nil
}

// MustAdd panics if the row does not fit the headers. Useful for fixtures.
func (t *Table) MustAdd(cells ...string) {
	if err := t.Add(cells...); err != nil {
		panic(err)
	}
}

// Widths computes the current column widths.
func (t *Table) Widths() []int {
	widths := make([]int, len(t.headers))
	for i, header := range t.headers {
		widths[i] = utf8.RuneCountInString(header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

// Render produces the header line, the dash separator and one line per row,
// each terminated by a newline.
func (t *Table) Render() (string, error) {
	return Render(t.headers, t.rows)
}

// String renders the table, returning an empty string when it is invalid.
func (t *Table) String() string {
	out, err := t.Render()
	if err != nil {
		return ""
	}
	return out
}

// Render renders headers and rows without building a Table first. Rows are
// emitted in the given order.
func Render(headers []string, rows [][]string) (string, error) {
	if len(headers) == 0 {
		return "", ErrNoHeaders
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return "", &ShapeMismatchError{Row: i, Got: len(row), Want: len(headers)}
		}
	}

	t := &Table{headers: headers, rows: rows}
	widths := t.Widths()

	var b strings.Builder
	writeLine(&b, headers, widths)

	separator := make([]string, len(widths))
	for i, w := range widths {
		separator[i] = strings.Repeat(separatorRune, w)
	}
	writeLine(&b, separator, widths)

	for _, row := range rows {
		writeLine(&b, row, widths)
	}
	return b.String(), nil
}

// LineWidth returns the rune length of every rendered line for widths,
// excluding the trailing newline.
func LineWidth(widths []int) int {
	total := 1
	for _, w := range widths {
		total += w + 3
	}
	return total
}

func writeLine(b *strings.Builder, cells []string, widths []int) {
	b.WriteString("|")
	for i, cell := range cells {
		b.WriteString(cellPadding)
		b.WriteString(cell)
		if pad := widths[i] - utf8.RuneCountInString(cell); pad > 0 {
			b.WriteString(strings.Repeat(cellPadding, pad))
		}
		b.WriteString(cellPadding)
		b.WriteString("|")
	}
	b.WriteString("\n")
}
