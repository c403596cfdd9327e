package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-langsync/pkg/catalog"
)

// Loader implements catalog.Loader by reading both sources whole and handing
// them to the CSV and trigram decoders. Construction helpers live in the
// top-level langsync package.
type Loader struct {
	fs        fs.FS
	delimiter string
	logger    logrus.FieldLogger
}

// Ensure the implementation satisfies the public interface.
var _ catalog.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options catalog.LoaderOptions) *Loader {
	delimiter := options.Delimiter
	if delimiter == "" {
		delimiter = catalog.DefaultDelimiter
	}
	logger := options.Logger
	if logger == nil {
		logger = catalog.DiscardLogger()
	}
	return &Loader{
		fs:        options.FileSystem,
		delimiter: delimiter,
		logger:    logger,
	}
}

// Load reads the language catalog first, then the trigram index filtered
// against it.
func (l *Loader) Load(ctx context.Context, req catalog.LoadRequest) (catalog.Model, error) {
	if req.Languages == nil {
		return catalog.Model{}, errors.New("catalog loader: languages source is nil")
	}
	if req.Trigrams == nil {
		return catalog.Model{}, errors.New("catalog loader: trigrams source is nil")
	}

	raw, err := l.read(ctx, req.Languages)
	if err != nil {
		return catalog.Model{}, fmt.Errorf("catalog loader: read %s: %w", req.Languages.Location(), err)
	}
	languages, duplicates, err := LoadLanguages(bytes.NewReader(raw), l.logger)
	if err != nil {
		return catalog.Model{}, fmt.Errorf("catalog loader: %s: %w", req.Languages.Location(), err)
	}

	raw, err = l.read(ctx, req.Trigrams)
	if err != nil {
		return catalog.Model{}, fmt.Errorf("catalog loader: read %s: %w", req.Trigrams.Location(), err)
	}
	format := req.TrigramFormat
	if format == "" {
		format = catalog.FormatFor(req.Trigrams)
	}
	scripts, unknown, err := LoadTrigrams(bytes.NewReader(raw), format, languages, l.delimiter, l.logger)
	if err != nil {
		return catalog.Model{}, fmt.Errorf("catalog loader: %s: %w", req.Trigrams.Location(), err)
	}

	l.logger.WithFields(logrus.Fields{
		"languages":  languages.Len(),
		"scripts":    scripts.Len(),
		"duplicates": duplicates,
		"unknown":    unknown,
	}).Debug("catalog loaded")

	return catalog.Model{
		Languages: languages,
		Scripts:   scripts,
		Stats: catalog.LoadStats{
			DuplicateCodes: duplicates,
			UnknownCodes:   unknown,
		},
	}, nil
}

// read returns the whole content of src. File sources hit the local disk; fs
// sources need the filesystem given through catalog.WithFileSystem.
func (l *Loader) read(ctx context.Context, src catalog.Source) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := src.Location()
	if name == "" || name == "." {
		return nil, fmt.Errorf("catalog loader: %s source has no location", src.Kind())
	}

	switch src.Kind() {
	case catalog.SourceKindFile:
		return os.ReadFile(name)
	case catalog.SourceKindFS:
		if l.fs == nil {
			return nil, errors.New("catalog loader: fs source without a filesystem")
		}
		return fs.ReadFile(l.fs, name)
	default:
		return nil, fmt.Errorf("catalog loader: unsupported source kind %q", src.Kind())
	}
}
