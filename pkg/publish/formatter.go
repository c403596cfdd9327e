package publish

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Formatter rewrites a generated file in place.
type Formatter interface {
	Format(ctx context.Context, path string) error
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(ctx context.Context, path string) error

// Format implements Formatter.
func (f FormatterFunc) Format(ctx context.Context, path string) error {
	return f(ctx, path)
}

// NopFormatter leaves files untouched.
type NopFormatter struct{}

// Format implements Formatter.
func (NopFormatter) Format(context.Context, string) error {
	return nil
}

// CommandFormatter runs an external tool with the target path appended to
// Args, e.g. `gofmt -w <path>`.
type CommandFormatter struct {
	Command string
	Args    []string
}

// GoFormatter returns the default formatter invoking gofmt.
func GoFormatter() CommandFormatter {
	return CommandFormatter{Command: "gofmt", Args: []string{"-w"}}
}

// Format implements Formatter. Failures, including a missing binary, are
// reported as *ExternalToolError.
func (f CommandFormatter) Format(ctx context.Context, path string) error {
	if strings.TrimSpace(f.Command) == "" {
		return &ExternalToolError{Path: path, Err: errors.New("no formatter command configured")}
	}
	args := append(append([]string(nil), f.Args...), path)
	cmd := exec.CommandContext(ctx, f.Command, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &ExternalToolError{
			Tool:   f.Command,
			Path:   path,
			Output: strings.TrimSpace(string(output)),
			Err:    err,
		}
	}
	return nil
}
