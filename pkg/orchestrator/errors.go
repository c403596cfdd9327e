package orchestrator

import (
	"errors"
	"strings"
)

// ErrStale signals that at least one artifact on disk differs from what a run
// would write.
var ErrStale = errors.New("orchestrator: artifacts are stale")

// StaleError lists the artifacts Check found out of date.
type StaleError struct {
	Artifacts []Artifact
}

func (e *StaleError) Error() string {
	paths := make([]string, 0, len(e.Artifacts))
	for _, artifact := range e.Artifacts {
		paths = append(paths, artifact.Path)
	}
	return ErrStale.Error() + ": " + strings.Join(paths, ", ")
}

// Is matches ErrStale.
func (e *StaleError) Is(target error) bool {
	return target == ErrStale
}
