// Package langsync keeps a markdown language table and a generated Go
// enumeration in sync with a CSV language catalog and a per-script trigram
// mapping.
//
// Most callers only need Sync or Check:
//
//	result, err := langsync.Sync(ctx, "langsync.yaml")
//
// Lower-level building blocks live under pkg/: catalog (model and loader
// contracts), table (fixed-width markdown tables), publish (document and
// source publishers, formatter), config and orchestrator.
package langsync

//go:generate go run ./cmd/langsync --config langsync.yaml
