package catalog

import (
	"context"
	"io"
	"io/fs"

	"github.com/sirupsen/logrus"
)

// DefaultDelimiter separates trigrams inside a single source value.
const DefaultDelimiter = "|"

// Loader builds the merged model from a catalog source and a trigram source.
// Implementations live under internal/catalog but satisfy this contract.
type Loader interface {
	Load(ctx context.Context, req LoadRequest) (Model, error)
}

// LoadRequest names the two inputs of a catalog load.
type LoadRequest struct {
	// Languages points at the CSV catalog of language identities.
	Languages Source
	// Trigrams points at the script → code → trigram mapping.
	Trigrams Source
	// TrigramFormat overrides the format inferred from the Trigrams location.
	TrigramFormat Format
}

// LoaderOptions configures how a Loader resolves and decodes sources.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources; fs sources fail when nil.
	FileSystem fs.FS

	// Delimiter splits trigram strings. Empty means DefaultDelimiter.
	Delimiter string

	// Logger receives debug output about filtered and duplicate entries.
	Logger logrus.FieldLogger
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for fs sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithDelimiter overrides the trigram delimiter.
func WithDelimiter(delimiter string) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.Delimiter = delimiter
	}
}

// WithLogger attaches a logger to the loader.
func WithLogger(logger logrus.FieldLogger) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.Logger = logger
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration with defaults filled in.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = DefaultDelimiter
	}
	if cfg.Logger == nil {
		cfg.Logger = DiscardLogger()
	}
	return cfg
}

// DiscardLogger returns a logger that drops every entry.
func DiscardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
