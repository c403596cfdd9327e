package catalog

import (
	"path"
	"path/filepath"
	"strings"
)

// Source identifies where a catalog input lives so loaders can operate on
// files or fs.FS entries without leaking implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
)

// fileSource identifies on-disk inputs.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: path.Clean(name)}
}

// Format names the encoding of a trigram source.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor infers the trigram encoding from the source location. Unknown
// extensions fall back to JSON.
func FormatFor(src Source) Format {
	if src == nil {
		return FormatJSON
	}
	switch strings.ToLower(path.Ext(filepath.ToSlash(src.Location()))) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
