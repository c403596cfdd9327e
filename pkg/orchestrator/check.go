package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Check renders both artifacts and compares them with what is on disk,
// without writing. The generated source is formatted in a scratch directory
// first so it compares against the formatted file a run leaves behind. Stale
// artifacts are reported through a *StaleError matching ErrStale.
func (g *Generator) Check(ctx context.Context, req Request) (*Result, error) {
	result, err := g.Render(ctx, req)
	if err != nil {
		return nil, err
	}
	logger := g.summary(result)

	formatted, err := g.formatDetached(ctx, result.Source)
	if err != nil {
		return nil, err
	}
	result.Source.Content = formatted
	result.Formatted = !isNop(g.formatter)

	var stale []Artifact
	for _, artifact := range []*Artifact{&result.Source, &result.Document} {
		current, err := g.files.ReadFile(artifact.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			artifact.Diff = "missing"
		case err != nil:
			return nil, fmt.Errorf("orchestrator: read %s: %w", artifact.Path, err)
		case !bytes.Equal(current, artifact.Content):
			artifact.Diff = diffLines(string(current), string(artifact.Content))
		default:
			continue
		}
		logger.WithField("path", artifact.Path).Warn("artifact is stale")
		stale = append(stale, *artifact)
	}

	if len(stale) > 0 {
		return result, &StaleError{Artifacts: stale}
	}
	logger.Info("artifacts up to date")
	return result, nil
}

// formatDetached runs the formatter over a scratch copy of artifact, keeping
// the base name so tools keyed on the extension behave the same.
func (g *Generator) formatDetached(ctx context.Context, artifact Artifact) ([]byte, error) {
	if isNop(g.formatter) {
		return artifact.Content, nil
	}

	dir, err := os.MkdirTemp("", "langsync-check-")
	if err != nil {
		return nil, fmt.Errorf("orchestrator: scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	scratch := filepath.Join(dir, filepath.Base(artifact.Path))
	if err := os.WriteFile(scratch, artifact.Content, 0o600); err != nil {
		return nil, fmt.Errorf("orchestrator: scratch source: %w", err)
	}
	if err := g.formatter.Format(ctx, scratch); err != nil {
		return nil, fmt.Errorf("orchestrator: format %s: %w", artifact.Path, err)
	}
	formatted, err := os.ReadFile(scratch)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: read scratch source: %w", err)
	}
	return formatted, nil
}

func diffLines(current, generated string) string {
	return cmp.Diff(strings.Split(current, "\n"), strings.Split(generated, "\n"))
}
