package orchestrator

import (
	"github.com/goliatone/go-langsync/pkg/catalog"
	"github.com/goliatone/go-langsync/pkg/config"
	"github.com/goliatone/go-langsync/pkg/publish"
)

// ConfigOptions translates the loaded settings into generator options.
// Callers append their own options (logger, confirmation) after these.
func ConfigOptions(cfg *config.Config) []Option {
	options := []Option{
		WithPackage(cfg.Package),
		WithTrigramLimit(cfg.TrigramLimit),
		WithDelimiter(cfg.Delimiter),
		WithAnchor(cfg.Anchor),
		WithHeaders(cfg.Headers...),
	}

	if cfg.Formatter.Command == "" {
		options = append(options, WithFormatter(publish.NopFormatter{}))
	} else {
		options = append(options, WithFormatter(publish.CommandFormatter{
			Command: cfg.Formatter.Command,
			Args:    cfg.Formatter.Args,
		}))
	}
	if !cfg.Sanitize {
		options = append(options, WithSanitizer(nil))
	}
	return options
}

// RequestFromConfig builds the request for the configured paths.
func RequestFromConfig(cfg *config.Config) Request {
	return Request{
		Languages:    catalog.SourceFromFile(cfg.Catalog),
		Trigrams:     catalog.SourceFromFile(cfg.Trigrams),
		TemplatePath: cfg.Template,
		DocumentPath: cfg.Document,
		OutputPath:   cfg.Output,
	}
}
