package langsync_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-langsync"
	"github.com/goliatone/go-langsync/pkg/catalog"
	"github.com/goliatone/go-langsync/pkg/orchestrator"
	"github.com/goliatone/go-langsync/pkg/publish"
	"github.com/goliatone/go-langsync/pkg/testsupport"
)

func TestEmbeddedTemplates(t *testing.T) {
	data, err := fs.ReadFile(langsync.EmbeddedTemplates(), publish.DefaultTemplateName)
	if err != nil {
		t.Fatalf("read embedded template: %v", err)
	}
	if !strings.Contains(string(data), "type Lang int") {
		t.Fatal("embedded template does not declare the Lang enum")
	}
}

func TestNewLoader(t *testing.T) {
	loader := langsync.NewLoader()
	model, err := loader.Load(testsupport.Context(), catalog.LoadRequest{
		Languages: catalog.SourceFromFile(filepath.Join("misc", "supported_languages.csv")),
		Trigrams:  catalog.SourceFromFile(filepath.Join("misc", "data.json")),
	})
	if err != nil {
		t.Fatalf("load repository catalog: %v", err)
	}
	if model.Languages.Len() == 0 || model.Scripts.Len() == 0 {
		t.Fatalf("repository catalog is empty: %+v", model.Stats)
	}
}

func TestSyncAndCheck(t *testing.T) {
	dir := t.TempDir()
	copyFile(t, filepath.Join("misc", "supported_languages.csv"), filepath.Join(dir, "misc", "supported_languages.csv"))
	copyFile(t, filepath.Join("misc", "data.json"), filepath.Join(dir, "misc", "data.json"))
	copyFile(t, "SUPPORTED_LANGUAGES.md", filepath.Join(dir, "SUPPORTED_LANGUAGES.md"))
	cfg := testsupport.WriteFile(t, dir, "langsync.yaml", "formatter:\n  command: \"\"\n")
	ctx := testsupport.Context()

	if _, err := langsync.Check(ctx, cfg); !errors.Is(err, langsync.ErrStale) {
		t.Fatalf("expected stale artifacts before the first sync, got %v", err)
	}

	result, err := langsync.Sync(ctx, cfg)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if !result.Written {
		t.Fatal("sync did not write")
	}
	// The committed document already carries the current table.
	if got, want := testsupport.MustReadFile(t, filepath.Join(dir, "SUPPORTED_LANGUAGES.md")), testsupport.MustReadFile(t, "SUPPORTED_LANGUAGES.md"); got != want {
		t.Fatalf("committed SUPPORTED_LANGUAGES.md is out of date:\n%s", got)
	}

	if _, err := langsync.Check(ctx, cfg); err != nil {
		t.Fatalf("check after sync: %v", err)
	}
	if _, err := langsync.Sync(ctx, cfg, orchestrator.WithFormatter(publish.NopFormatter{})); err != nil {
		t.Fatalf("sync with extra options: %v", err)
	}
}

func copyFile(t *testing.T, from, to string) {
	t.Helper()
	data, err := os.ReadFile(from)
	if err != nil {
		t.Fatalf("read %s: %v", from, err)
	}
	testsupport.WriteFile(t, filepath.Dir(to), filepath.Base(to), string(data))
}
