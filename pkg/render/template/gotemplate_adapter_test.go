package template_test

import (
	"io"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-langsync/pkg/render/template/gotemplate"
	"github.com/goliatone/go-langsync/pkg/testsupport"
)

var templatesFS = fstest.MapFS{
	"hello.tpl":    {Data: []byte("Hello {{ name }}!")},
	"lang.go.tmpl": {Data: []byte("// {{ name }}")},
	"enum.tpl":     {Data: []byte("{% for code in codes %}{{ code|ident }}{% if not forloop.Last %},{% endif %}{% endfor %}")},
	"quote.tpl":    {Data: []byte("{{ name|goquote }}")},
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := "Hello Ada!"
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_RenderTemplateKeepsExtension(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("lang.go.tmpl", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "// Ada" {
		t.Fatalf("unexpected output %q", result)
	}

	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestGoTemplateEngine_BaseDirIncludes(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, dir, "partial.tpl", "[{{ code|ident }}]")
	testsupport.WriteFile(t, dir, "main.tpl", `{% for code in codes %}{% include "partial.tpl" %}{% endfor %}`)

	engine, err := gotemplate.New(gotemplate.WithBaseDir(dir))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	result, err := engine.RenderTemplate("main.tpl", map[string]any{"codes": []string{"eng", "fra"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "[Eng][Fra]" {
		t.Fatalf("unexpected output %q", result)
	}

	if _, err := gotemplate.New(gotemplate.WithBaseDir(filepath.Join(dir, "missing"))); err == nil {
		t.Fatal("expected error for missing base dir")
	}
}

func TestGoTemplateEngine_DefaultFilters(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("enum", map[string]any{"codes": []string{"eng", "rus", "Ukr"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Eng,Rus,Ukr" {
		t.Fatalf("unexpected output %q", result)
	}

	result, err = engine.RenderTemplate("quote", map[string]any{"name": `N"Ko`})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != `"N\"Ko"` {
		t.Fatalf("unexpected output %q", result)
	}
}

func TestGoTemplateEngine_RenderString(t *testing.T) {
	engine, err := gotemplate.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, err := engine.RenderString("{{ greeting }}, {{ name }}", map[string]any{"greeting": "Hi", "name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hi, Ada" {
		t.Fatalf("unexpected output %q", result)
	}

	if _, err := engine.RenderString("{% for %}", nil); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestIdentifier(t *testing.T) {
	tests := map[string]string{
		"":      "",
		"eng":   "Eng",
		"Eng":   "Eng",
		"eNG":   "ENG",
		"ñandú": "Ñandú",
	}
	for in, want := range tests {
		if got := gotemplate.Identifier(in); got != want {
			t.Fatalf("identifier %q: want %q, got %q", in, want, got)
		}
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
