package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	internalLoader "github.com/goliatone/go-langsync/internal/catalog/loader"
	"github.com/goliatone/go-langsync/pkg/catalog"
	"github.com/goliatone/go-langsync/pkg/publish"
)

// Option customises the generator configuration.
type Option func(*Generator)

// ConfirmFunc is asked before a run overwrites paths. Returning false skips
// the writes without failing the run.
type ConfirmFunc func(ctx context.Context, paths []string) (bool, error)

// WithLoader injects a custom catalog loader.
func WithLoader(loader catalog.Loader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithSourcePublisher injects the publisher expanding the source template.
func WithSourcePublisher(publisher *publish.SourcePublisher) Option {
	return func(g *Generator) {
		g.source = publisher
	}
}

// WithDocumentPublisher injects the publisher substituting the document
// table.
func WithDocumentPublisher(publisher *publish.DocumentPublisher) Option {
	return func(g *Generator) {
		g.document = publisher
	}
}

// WithFormatter overrides the formatter run over the generated source.
func WithFormatter(formatter publish.Formatter) Option {
	return func(g *Generator) {
		g.formatter = formatter
	}
}

// WithFiles swaps the filesystem used to read and write artifacts.
func WithFiles(files Files) Option {
	return func(g *Generator) {
		g.files = files
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithSanitizer sets the cleaner applied to language name cells. Nil leaves
// names untouched.
func WithSanitizer(sanitizer publish.CellSanitizer) Option {
	return func(g *Generator) {
		g.sanitizer = sanitizer
	}
}

// WithHeaders overrides the three table column titles.
func WithHeaders(headers ...string) Option {
	return func(g *Generator) {
		if len(headers) > 0 {
			g.headers = append([]string(nil), headers...)
		}
	}
}

// WithPackage sets the generated package name, also used to qualify the enum
// column of the table.
func WithPackage(name string) Option {
	return func(g *Generator) {
		if name != "" {
			g.packageName = name
		}
	}
}

// WithTrigramLimit caps trigrams per language in the generated source.
func WithTrigramLimit(limit int) Option {
	return func(g *Generator) {
		g.trigramLimit = limit
	}
}

// WithDelimiter overrides the trigram delimiter used by the default loader.
func WithDelimiter(delimiter string) Option {
	return func(g *Generator) {
		if delimiter != "" {
			g.delimiter = delimiter
		}
	}
}

// WithAnchor overrides the table anchor used by the default document
// publisher.
func WithAnchor(anchor string) Option {
	return func(g *Generator) {
		if anchor != "" {
			g.anchor = anchor
		}
	}
}

// WithConfirm registers a confirmation step run before any write.
func WithConfirm(confirm ConfirmFunc) Option {
	return func(g *Generator) {
		g.confirm = confirm
	}
}

// Generator coordinates a regeneration run from the two data sources to the
// two artifacts.
type Generator struct {
	loader    catalog.Loader
	source    *publish.SourcePublisher
	document  *publish.DocumentPublisher
	formatter publish.Formatter
	files     Files
	logger    logrus.FieldLogger
	sanitizer publish.CellSanitizer
	confirm   ConfirmFunc

	headers      []string
	packageName  string
	trigramLimit int
	delimiter    string
	anchor       string

	initialiseErr   error
	defaultsApplied bool
}

// New constructs a Generator applying any provided options. Missing
// collaborators are initialised with the built-in implementations.
func New(options ...Option) *Generator {
	g := &Generator{
		sanitizer:    publish.NewMarkdownSanitizer(),
		headers:      append([]string(nil), publish.DefaultHeaders...),
		packageName:  publish.DefaultPackage,
		trigramLimit: publish.DefaultTrigramLimit,
		delimiter:    catalog.DefaultDelimiter,
		anchor:       publish.DefaultAnchor,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

// Request names the inputs and outputs of a run.
type Request struct {
	// Languages points at the language catalog CSV.
	Languages catalog.Source
	// Trigrams points at the script → code → trigrams mapping.
	Trigrams catalog.Source
	// TrigramFormat overrides the format inferred from the Trigrams location.
	TrigramFormat catalog.Format

	// TemplatePath selects a source template file on disk. Its includes resolve
	// against the same directory. Empty uses the embedded template.
	TemplatePath string
	// DocumentPath is the markdown document whose table is regenerated.
	DocumentPath string
	// OutputPath receives the generated source.
	OutputPath string

	// DryRun renders everything but writes nothing.
	DryRun bool
}

// Artifact is one generated output.
type Artifact struct {
	Path    string
	Content []byte
	// Diff is filled by Check for stale artifacts, (-current +generated).
	Diff string
}

// Result reports what a run produced.
type Result struct {
	Model    catalog.Model
	Table    string
	Source   Artifact
	Document Artifact

	Written   bool
	Formatted bool
	Skipped   bool
}

// Render loads the model and produces both artifacts in memory. Nothing is
// written.
func (g *Generator) Render(ctx context.Context, req Request) (*Result, error) {
	if err := g.ready(ctx); err != nil {
		return nil, err
	}
	if req.DocumentPath == "" {
		return nil, errors.New("orchestrator: document path is required")
	}
	if req.OutputPath == "" {
		return nil, errors.New("orchestrator: output path is required")
	}

	model, err := g.loader.Load(ctx, catalog.LoadRequest{
		Languages:     req.Languages,
		Trigrams:      req.Trigrams,
		TrigramFormat: req.TrigramFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load catalog: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tbl, err := publish.LanguageTable(model.Languages.Records(), publish.TableOptions{
		Headers:   g.headers,
		Qualifier: g.packageName,
		Sanitizer: g.sanitizer,
		Logger:    g.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build table: %w", err)
	}
	rendered, err := tbl.Render()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render table: %w", err)
	}

	current, err := g.files.ReadFile(req.DocumentPath)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: read document %s: %w", req.DocumentPath, err)
	}
	document, err := g.document.Publish(string(current), rendered)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: publish document %s: %w", req.DocumentPath, err)
	}

	var source string
	if req.TemplatePath != "" {
		source, err = g.source.PublishFile(req.TemplatePath, model)
	} else {
		source, err = g.source.Publish("", model)
	}
	if err != nil {
		return nil, fmt.Errorf("orchestrator: publish source: %w", err)
	}

	return &Result{
		Model:    model,
		Table:    rendered,
		Source:   Artifact{Path: req.OutputPath, Content: []byte(source)},
		Document: Artifact{Path: req.DocumentPath, Content: []byte(document)},
	}, nil
}

// Run renders both artifacts and writes them: source first, then the
// formatter over it, then the document. A formatter failure leaves the
// unformatted source on disk and the document untouched.
func (g *Generator) Run(ctx context.Context, req Request) (*Result, error) {
	result, err := g.Render(ctx, req)
	if err != nil {
		return nil, err
	}
	logger := g.summary(result)

	if req.DryRun {
		logger.Info("dry run, nothing written")
		return result, nil
	}
	if g.confirm != nil {
		ok, err := g.confirm(ctx, []string{result.Source.Path, result.Document.Path})
		if err != nil {
			return nil, fmt.Errorf("orchestrator: confirm: %w", err)
		}
		if !ok {
			result.Skipped = true
			logger.Info("write declined")
			return result, nil
		}
	}

	if err := g.files.WriteFile(result.Source.Path, result.Source.Content); err != nil {
		return nil, fmt.Errorf("orchestrator: write source %s: %w", result.Source.Path, err)
	}
	logger.WithField("path", result.Source.Path).Debug("source written")

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.formatter.Format(ctx, result.Source.Path); err != nil {
		return nil, fmt.Errorf("orchestrator: format %s: %w", result.Source.Path, err)
	}
	result.Formatted = !isNop(g.formatter)

	if err := g.files.WriteFile(result.Document.Path, result.Document.Content); err != nil {
		return nil, fmt.Errorf("orchestrator: write document %s: %w", result.Document.Path, err)
	}
	logger.WithField("path", result.Document.Path).Debug("document written")

	result.Written = true
	logger.Info("artifacts regenerated")
	return result, nil
}

func (g *Generator) summary(result *Result) logrus.FieldLogger {
	stats := result.Model.Stats
	return g.logger.WithFields(logrus.Fields{
		"languages":  result.Model.Languages.Len(),
		"scripts":    result.Model.Scripts.Len(),
		"entries":    result.Model.Scripts.EntryCount(),
		"duplicates": stats.DuplicateCodes,
		"dropped":    stats.UnknownCodes,
	})
}

func (g *Generator) ready(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !g.defaultsApplied {
		g.applyDefaults()
	}
	return g.initialiseErr
}

func (g *Generator) applyDefaults() {
	if g.defaultsApplied {
		return
	}

	if g.logger == nil {
		g.logger = catalog.DiscardLogger()
	}
	if g.loader == nil {
		g.loader = internalLoader.New(catalog.NewLoaderOptions(
			catalog.WithDelimiter(g.delimiter),
			catalog.WithLogger(g.logger),
		))
	}
	if g.document == nil {
		g.document = publish.NewDocumentPublisher(
			publish.WithLocator(publish.LineLocator{Anchor: g.anchor}),
		)
	}
	if g.source == nil {
		publisher, err := publish.NewSourcePublisher(
			publish.WithPackage(g.packageName),
			publish.WithTrigramLimit(g.trigramLimit),
		)
		if err != nil {
			g.initialiseErr = fmt.Errorf("orchestrator: default source publisher: %w", err)
		} else {
			g.source = publisher
		}
	}
	if g.formatter == nil {
		g.formatter = publish.GoFormatter()
	}
	if g.files == nil {
		g.files = DiskFiles{}
	}

	g.defaultsApplied = true
}

func isNop(formatter publish.Formatter) bool {
	switch formatter.(type) {
	case publish.NopFormatter, *publish.NopFormatter:
		return true
	}
	return false
}
