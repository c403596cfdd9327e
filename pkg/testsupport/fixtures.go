package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-langsync/pkg/catalog"
)

// Catalog builds a catalog from code/englishName pairs. Testing helpers fail
// the test on invalid input to keep call sites concise.
func Catalog(t *testing.T, pairs ...string) *catalog.Catalog {
	t.Helper()

	if len(pairs)%2 != 0 {
		t.Fatalf("testsupport: catalog pairs must be code/name pairs, got %d values", len(pairs))
	}
	out := catalog.NewCatalog()
	for i := 0; i < len(pairs); i += 2 {
		record, err := catalog.NewLanguageRecord(pairs[i], pairs[i+1], "", "")
		if err != nil {
			t.Fatalf("testsupport: new record: %v", err)
		}
		out.Add(record)
	}
	return out
}

// Model wraps languages and an index built from script → code → trigrams
// triples into a catalog.Model.
func Model(t *testing.T, languages *catalog.Catalog, entries ...catalog.ScriptEntry) catalog.Model {
	t.Helper()

	index := catalog.NewScriptIndex()
	for _, entry := range entries {
		if !languages.Has(entry.Code) {
			t.Fatalf("testsupport: entry references unknown code %q", entry.Code)
		}
		index.Append(entry)
	}
	return catalog.Model{Languages: languages, Scripts: index}
}

// Entry builds a ScriptEntry from a pipe-joined trigram string.
func Entry(script, code, trigrams string) catalog.ScriptEntry {
	return catalog.ScriptEntry{
		Code:     code,
		Script:   script,
		Trigrams: strings.Split(trigrams, "|"),
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// WriteFile writes data under dir and returns the full path.
func WriteFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// MustReadFile returns the content of path as a string.
func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
