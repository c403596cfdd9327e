// Package orchestrator wires the catalog loader, the table renderer and the
// two publishers into a single regeneration run. Collaborators are injected
// through options; missing ones fall back to the built-in implementations.
package orchestrator
