package orchestrator

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Files reads and writes whole artifacts.
type Files interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// DiskFiles backs Files with the local filesystem. Writes go through a temp
// file renamed over the target, so readers never observe a partial artifact.
type DiskFiles struct {
	// Perm applies to files that did not exist before. Zero means 0o644.
	Perm fs.FileMode
}

var _ Files = DiskFiles{}

// ReadFile implements Files.
func (DiskFiles) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile implements Files. Missing parent directories are created and an
// existing file keeps its mode.
func (d DiskFiles) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	perm := d.Perm
	if perm == 0 {
		perm = 0o644
	}
	info, err := os.Stat(path)
	switch {
	case err == nil:
		perm = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	return os.Chmod(path, perm)
}
