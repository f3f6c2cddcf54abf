// Package controller provides the output adapters that present generated
// examples, type listings and snapshot results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/kongweiying2/previewjs/internal/model"
)

// ExampleFunc produces the example for a declared type, either canonical or
// randomized.
type ExampleFunc func(ctx context.Context, typeName string, random bool) (m.Example, error)

// UI defines how workflows report their results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	DisplayExamples(ctx context.Context, examples []m.Example) error
	DisplayTypes(ctx context.Context, types []m.TypeSummary) error
	DisplaySnapshotResults(ctx context.Context, results []m.SnapshotResult) error
	// Browse lets the user walk through the declared types. It returns
	// once the user is done.
	Browse(ctx context.Context, types []m.TypeSummary, example ExampleFunc) error
}

// NewUI returns the interactive TUI when attached to a terminal and the
// plain SimpleUI otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
