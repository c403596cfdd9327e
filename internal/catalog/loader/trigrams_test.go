package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-langsync/internal/catalog/loader"
	"github.com/goliatone/go-langsync/pkg/catalog"
)

func catalogOf(t *testing.T, codes ...string) *catalog.Catalog {
	t.Helper()
	out := catalog.NewCatalog()
	for _, code := range codes {
		record, err := catalog.NewLanguageRecord(code, strings.ToUpper(code), "", "")
		if err != nil {
			t.Fatalf("new record: %v", err)
		}
		out.Add(record)
	}
	return out
}

func TestLoadTrigrams_FiltersUnknownCodes(t *testing.T) {
	src := `{"Latin":{"eng":"the|and|ing","spa":"de|la|que"}}`

	index, unknown, err := loader.LoadTrigrams(strings.NewReader(src), catalog.FormatJSON, catalogOf(t, "eng"), "|", nil)
	if err != nil {
		t.Fatalf("load trigrams: %v", err)
	}

	want := []catalog.ScriptEntry{{Code: "eng", Script: "Latin", Trigrams: []string{"the", "and", "ing"}}}
	if diff := cmp.Diff(want, index.Entries("Latin")); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
	if unknown != 1 {
		t.Fatalf("expected 1 unknown code, got %d", unknown)
	}
}

func TestLoadTrigrams_PreservesSourceOrder(t *testing.T) {
	languages := catalogOf(t, "eng", "fra", "spa", "rus", "cmn")

	for _, name := range []string{"data.json", "data.yaml"} {
		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join("testdata", name))
			if err != nil {
				t.Fatalf("read fixture: %v", err)
			}
			format := catalog.FormatFor(catalog.SourceFromFile(name))

			index, unknown, err := loader.LoadTrigrams(strings.NewReader(string(data)), format, languages, "|", nil)
			if err != nil {
				t.Fatalf("load trigrams: %v", err)
			}

			if diff := cmp.Diff([]string{"Latin", "Cyrillic", "Arabic", "Mandarin"}, index.Scripts()); diff != "" {
				t.Fatalf("script order mismatch (-want +got):\n%s", diff)
			}

			var latin []string
			for _, entry := range index.Entries("Latin") {
				latin = append(latin, entry.Code)
			}
			if diff := cmp.Diff([]string{"spa", "eng", "fra"}, latin); diff != "" {
				t.Fatalf("latin order mismatch (-want +got):\n%s", diff)
			}

			wantCyrillic := []catalog.ScriptEntry{{Code: "rus", Script: "Cyrillic", Trigrams: []string{"ого", "ени", "ост"}}}
			if diff := cmp.Diff(wantCyrillic, index.Entries("Cyrillic")); diff != "" {
				t.Fatalf("cyrillic mismatch (-want +got):\n%s", diff)
			}
			if got := index.Entries("Arabic"); len(got) != 0 {
				t.Fatalf("expected Arabic script to be registered empty, got %+v", got)
			}
			wantMandarin := []catalog.ScriptEntry{{Code: "cmn", Script: "Mandarin", Trigrams: []string{}}}
			if diff := cmp.Diff(wantMandarin, index.Entries("Mandarin")); diff != "" {
				t.Fatalf("mandarin mismatch (-want +got):\n%s", diff)
			}
			if unknown != 2 {
				t.Fatalf("expected 2 unknown codes, got %d", unknown)
			}
		})
	}
}

func TestLoadTrigrams_RepeatedScriptAppends(t *testing.T) {
	src := `{"Latin":{"eng":"the"},"Cyrillic":{},"Latin":{"fra":"le"}}`

	index, _, err := loader.LoadTrigrams(strings.NewReader(src), catalog.FormatJSON, catalogOf(t, "eng", "fra"), "|", nil)
	if err != nil {
		t.Fatalf("load trigrams: %v", err)
	}
	if diff := cmp.Diff([]string{"Latin", "Cyrillic"}, index.Scripts()); diff != "" {
		t.Fatalf("script order mismatch (-want +got):\n%s", diff)
	}
	if got := len(index.Entries("Latin")); got != 2 {
		t.Fatalf("expected 2 latin entries, got %d", got)
	}
}

func TestLoadTrigrams_RepeatedCodeKeepsLast(t *testing.T) {
	tests := []struct {
		name   string
		format catalog.Format
		src    string
	}{
		{name: "json", format: catalog.FormatJSON, src: `{"Latin":{"eng":"a|b","fra":"le","eng":"c"}}`},
		{name: "yaml", format: catalog.FormatYAML, src: "Latin:\n  eng: a|b\n  fra: le\n  eng: c\n"},
		{name: "repeated script", format: catalog.FormatJSON, src: `{"Latin":{"eng":"a|b","fra":"le"},"Latin":{"eng":"c"}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			index, _, err := loader.LoadTrigrams(strings.NewReader(tc.src), tc.format, catalogOf(t, "eng", "fra"), "|", nil)
			if err != nil {
				t.Fatalf("load trigrams: %v", err)
			}
			want := []catalog.ScriptEntry{
				{Code: "eng", Script: "Latin", Trigrams: []string{"c"}},
				{Code: "fra", Script: "Latin", Trigrams: []string{"le"}},
			}
			if diff := cmp.Diff(want, index.Entries("Latin")); diff != "" {
				t.Fatalf("entries mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadTrigrams_CustomDelimiter(t *testing.T) {
	src := `{"Latin":{"eng":"the,and"}}`

	index, _, err := loader.LoadTrigrams(strings.NewReader(src), catalog.FormatJSON, catalogOf(t, "eng"), ",", nil)
	if err != nil {
		t.Fatalf("load trigrams: %v", err)
	}
	if diff := cmp.Diff([]string{"the", "and"}, index.Entries("Latin")[0].Trigrams); diff != "" {
		t.Fatalf("trigrams mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadTrigrams_InvalidStructure(t *testing.T) {
	tests := []struct {
		name   string
		format catalog.Format
		src    string
	}{
		{name: "json array", format: catalog.FormatJSON, src: `["Latin"]`},
		{name: "json number leaf", format: catalog.FormatJSON, src: `{"Latin":{"eng":3}}`},
		{name: "json flat", format: catalog.FormatJSON, src: `{"Latin":"eng"}`},
		{name: "json empty", format: catalog.FormatJSON, src: ``},
		{name: "json trailing", format: catalog.FormatJSON, src: `{} {}`},
		{name: "yaml sequence", format: catalog.FormatYAML, src: "- Latin\n"},
		{name: "yaml nested list", format: catalog.FormatYAML, src: "Latin:\n  eng: [the, and]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := loader.LoadTrigrams(strings.NewReader(tt.src), tt.format, catalogOf(t, "eng"), "|", nil)
			if !errors.Is(err, catalog.ErrInvalidFormat) {
				t.Fatalf("expected ErrInvalidFormat, got %v", err)
			}
		})
	}
}

func TestSplitTrigrams(t *testing.T) {
	tests := map[string][]string{
		"":       {},
		"a|b|c":  {"a", "b", "c"},
		"a|b|":   {"a", "b"},
		" a|b ":  {" a", "b "},
		"a||b":   {"a", "", "b"},
		"единый": {"единый"},
	}
	for raw, want := range tests {
		if diff := cmp.Diff(want, loader.SplitTrigrams(raw, "|")); diff != "" {
			t.Fatalf("split %q mismatch (-want +got):\n%s", raw, diff)
		}
	}
}
