package orchestrator

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiskFiles_WriteCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "lang.go")

	if err := (DiskFiles{}).WriteFile(path, []byte("package lang\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o644 {
		t.Fatalf("expected 0644 for a new file, got %o", got)
	}
	data, err := (DiskFiles{}).ReadFile(path)
	if err != nil || string(data) != "package lang\n" {
		t.Fatalf("unexpected content %q (%v)", data, err)
	}
}

func TestDiskFiles_OverwriteKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	if err := (DiskFiles{Perm: 0o644}).WriteFile(path, []byte("new")); err != nil {
		t.Fatalf("write: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Fatalf("expected existing mode 0600 to survive, got %o", got)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Fatalf("unexpected content %q", data)
	}
}
