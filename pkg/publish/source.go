package publish

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/goliatone/go-langsync/pkg/catalog"
	"github.com/goliatone/go-langsync/pkg/render/template"
	"github.com/goliatone/go-langsync/pkg/render/template/gotemplate"
)

const (
	// DefaultTrigramLimit caps the trigrams emitted per language.
	DefaultTrigramLimit = 300
	// DefaultPackage is the package clause of the generated source.
	DefaultPackage = "lang"
	// DefaultGenerator names the tool in the generated header.
	DefaultGenerator = "langsync"
)

// SourceOption configures a SourcePublisher.
type SourceOption func(*SourcePublisher)

// WithRenderer injects the template renderer.
func WithRenderer(renderer template.TemplateRenderer) SourceOption {
	return func(p *SourcePublisher) {
		p.renderer = renderer
	}
}

// WithTrigramLimit caps trigrams per language. Zero or negative disables the
// cap.
func WithTrigramLimit(limit int) SourceOption {
	return func(p *SourcePublisher) {
		p.trigramLimit = limit
	}
}

// WithPackage sets the package clause exposed to the template.
func WithPackage(name string) SourceOption {
	return func(p *SourcePublisher) {
		if name = strings.TrimSpace(name); name != "" {
			p.packageName = name
		}
	}
}

// WithGenerator sets the generator name exposed to the template.
func WithGenerator(name string) SourceOption {
	return func(p *SourcePublisher) {
		if name = strings.TrimSpace(name); name != "" {
			p.generator = name
		}
	}
}

// SourcePublisher expands a source template with the per-language
// enumeration of a catalog model.
type SourcePublisher struct {
	renderer     template.TemplateRenderer
	trigramLimit int
	packageName  string
	generator    string
}

// NewSourcePublisher constructs a publisher backed by the pongo2 engine unless
// a renderer is injected.
func NewSourcePublisher(options ...SourceOption) (*SourcePublisher, error) {
	p := &SourcePublisher{
		trigramLimit: DefaultTrigramLimit,
		packageName:  DefaultPackage,
		generator:    DefaultGenerator,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("publish: template engine: %w", err)
		}
		p.renderer = engine
	}
	return p, nil
}

// Publish expands templateText against model. An empty template selects the
// embedded default.
func (p *SourcePublisher) Publish(templateText string, model catalog.Model) (string, error) {
	data, err := p.Context(model)
	if err != nil {
		return "", err
	}

	var out string
	if strings.TrimSpace(templateText) == "" {
		out, err = p.renderer.RenderTemplate(DefaultTemplateName, data)
	} else {
		out, err = p.renderer.RenderString(templateText, data)
	}
	if err != nil {
		return "", fmt.Errorf("publish: expand source template: %w", err)
	}
	return out, nil
}

// PublishFile expands the template stored at path against model. Includes and
// imports inside the template resolve relative to its directory.
func (p *SourcePublisher) PublishFile(path string, model catalog.Model) (string, error) {
	data, err := p.Context(model)
	if err != nil {
		return "", err
	}

	engine, err := gotemplate.New(gotemplate.WithBaseDir(filepath.Dir(path)))
	if err != nil {
		return "", fmt.Errorf("publish: template engine for %s: %w", path, err)
	}
	out, err := engine.RenderTemplate(filepath.Base(path), data)
	if err != nil {
		return "", fmt.Errorf("publish: expand source template %s: %w", path, err)
	}
	return out, nil
}

// Context builds the template data for model. Slices preserve catalog and
// script order so expansion is deterministic. Every language and script must
// map to a distinct Go identifier.
func (p *SourcePublisher) Context(model catalog.Model) (map[string]any, error) {
	if model.Languages == nil {
		return nil, errors.New("publish: model has no language catalog")
	}
	seen := identifiers{}

	records := model.Languages.Records()
	languages := make([]map[string]any, 0, len(records))
	for _, record := range records {
		ident := gotemplate.Identifier(record.Code)
		if err := seen.add(ident, "language "+record.Code); err != nil {
			return nil, err
		}
		languages = append(languages, map[string]any{
			"ident":           ident,
			"code":            record.Code,
			"eng_name":        record.EnglishName,
			"name":            record.Name,
			"native_speakers": record.NativeSpeakers,
		})
	}

	names := model.Scripts.Scripts()
	scripts := make([]map[string]any, 0, len(names))
	for _, name := range names {
		ident := ScriptIdentifier(name)
		if err := seen.add(ident, "script "+name); err != nil {
			return nil, err
		}
		entries := model.Scripts.Entries(name)
		langs := make([]map[string]any, 0, len(entries))
		for _, entry := range entries {
			langs = append(langs, map[string]any{
				"ident":    gotemplate.Identifier(entry.Code),
				"code":     entry.Code,
				"trigrams": capTrigrams(entry.Trigrams, p.trigramLimit),
			})
		}
		scripts = append(scripts, map[string]any{
			"name":      name,
			"ident":     ident,
			"languages": langs,
		})
	}

	return map[string]any{
		"generator":     p.generator,
		"package":       p.packageName,
		"trigram_limit": p.trigramLimit,
		"languages":     languages,
		"scripts":       scripts,
	}, nil
}

// identifiers maps each generated identifier to the catalog item it names.
type identifiers map[string]string

func (ids identifiers) add(ident, owner string) error {
	if !token.IsIdentifier(ident) {
		return &IdentifierError{Ident: ident, Owner: owner}
	}
	if prev, ok := ids[ident]; ok {
		return &IdentifierError{Ident: ident, Owner: owner, Previous: prev}
	}
	ids[ident] = owner
	return nil
}

// ScriptIdentifier derives a Go identifier for a script name, dropping
// characters that cannot appear in identifiers.
func ScriptIdentifier(name string) string {
	var b strings.Builder
	b.WriteString("Script")
	upperNext := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upperNext = true
			continue
		}
		if upperNext {
			r = unicode.ToUpper(r)
			upperNext = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func capTrigrams(trigrams []string, limit int) []string {
	if limit > 0 && len(trigrams) > limit {
		trigrams = trigrams[:limit]
	}
	return append([]string{}, trigrams...)
}
