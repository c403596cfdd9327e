package table_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-langsync/pkg/table"
)

func TestRender_Example(t *testing.T) {
	got, err := table.Render(
		[]string{"Language", "Code"},
		[][]string{{"English", "eng"}, {"French", "fra"}},
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "| Language | Code |\n" +
		"| -------- | ---- |\n" +
		"| English  | eng  |\n" +
		"| French   | fra  |\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_EmptyRows(t *testing.T) {
	got, err := table.Render([]string{"Language", "ISO 639-3", "Enum"}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "| Language | ISO 639-3 | Enum |\n| -------- | --------- | ---- |\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Idempotent(t *testing.T) {
	tbl := table.New("Language", "ISO 639-3", "Enum")
	tbl.MustAdd("English", "eng", "`lang.Eng`")
	tbl.MustAdd("Ukrainian", "ukr", "`lang.Ukr`")

	first, err := tbl.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := tbl.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if first != second {
		t.Fatalf("render is not stable:\n%s\n---\n%s", first, second)
	}
	if tbl.String() != first {
		t.Fatal("String() disagrees with Render()")
	}
}

func TestRender_Alignment(t *testing.T) {
	tbl := table.New("Language", "ISO 639-3", "Enum")
	tbl.MustAdd("English", "eng", "`lang.Eng`")
	tbl.MustAdd("Русский", "rus", "`lang.Rus`")
	tbl.MustAdd("Old Church Slavonic", "chu", "`lang.Chu`")
	tbl.MustAdd("", "", "")

	out, err := tbl.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatal("output must end with a newline")
	}

	want := table.LineWidth(tbl.Widths())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2+tbl.Len() {
		t.Fatalf("expected %d lines, got %d", 2+tbl.Len(), len(lines))
	}
	for i, line := range lines {
		if got := utf8.RuneCountInString(line); got != want {
			t.Fatalf("line %d has width %d, want %d: %q", i, got, want, line)
		}
		if !strings.HasPrefix(line, "| ") || !strings.HasSuffix(line, " |") {
			t.Fatalf("line %d is not bounded by bars: %q", i, line)
		}
	}
}

func TestRender_WidthsTrackRows(t *testing.T) {
	tbl := table.New("Code")
	if diff := cmp.Diff([]int{4}, tbl.Widths()); diff != "" {
		t.Fatalf("widths mismatch (-want +got):\n%s", diff)
	}
	tbl.MustAdd("abcdefgh")
	if diff := cmp.Diff([]int{8}, tbl.Widths()); diff != "" {
		t.Fatalf("widths mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_ShapeMismatch(t *testing.T) {
	tbl := table.New("Language", "Code")
	err := tbl.Add("English")
	if !errors.Is(err, table.ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
	if tbl.Len() != 0 {
		t.Fatal("mismatched row must not be stored")
	}

	_, err = table.Render([]string{"Language", "Code"}, [][]string{{"English", "eng"}, {"French", "fra", "extra"}})
	var mismatch *table.ShapeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *ShapeMismatchError, got %v", err)
	}
	if diff := cmp.Diff(table.ShapeMismatchError{Row: 1, Got: 3, Want: 2}, *mismatch); diff != "" {
		t.Fatalf("error mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_NoHeaders(t *testing.T) {
	if _, err := table.Render(nil, nil); !errors.Is(err, table.ErrNoHeaders) {
		t.Fatalf("expected ErrNoHeaders, got %v", err)
	}
}
