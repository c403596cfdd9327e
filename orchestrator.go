package langsync

import (
	"context"

	"github.com/goliatone/go-langsync/pkg/config"
	"github.com/goliatone/go-langsync/pkg/orchestrator"
)

// Request aliases orchestrator.Request for callers driving a run by hand.
type Request = orchestrator.Request

// Result aliases orchestrator.Result.
type Result = orchestrator.Result

// ErrStale is returned by Check when an artifact on disk is out of date.
var ErrStale = orchestrator.ErrStale

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...orchestrator.Option) *orchestrator.Generator {
	return orchestrator.New(options...)
}

// Sync loads the config at path and regenerates both artifacts. Extra options
// are applied after the ones derived from the config.
func Sync(ctx context.Context, path string, options ...orchestrator.Option) (*Result, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	gen := orchestrator.New(append(orchestrator.ConfigOptions(cfg), options...)...)
	return gen.Run(ctx, orchestrator.RequestFromConfig(cfg))
}

// Check loads the config at path and reports whether both artifacts are up to
// date, returning an error matching ErrStale when they are not.
func Check(ctx context.Context, path string, options ...orchestrator.Option) (*Result, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	gen := orchestrator.New(append(orchestrator.ConfigOptions(cfg), options...)...)
	return gen.Check(ctx, orchestrator.RequestFromConfig(cfg))
}
