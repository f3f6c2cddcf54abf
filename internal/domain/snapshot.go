package domain

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pmezard/go-difflib/difflib"

	m "github.com/kongweiying2/previewjs/internal/model"
)

const diffContextLines = 3

// Snapshot compares the canonical example of every declared type with the
// stored snapshots. With Update set the snapshots are rewritten instead of
// failing on differences.
func (w *workflow) Snapshot(ctx context.Context, args SnapshotArgs) error {
	schema, err := w.LoadSchema(ctx, args.Schema)
	if err != nil {
		slog.Error("Failed to load schema", "path", args.Schema, "error", err)
		return errors.Wrap(err, "load schema")
	}

	stored, err := w.LoadSnapshots(ctx, args.Snapshots)
	if err != nil {
		slog.Error("Failed to load snapshots", "path", args.Snapshots, "error", err)
		return errors.Wrap(err, "load snapshots")
	}

	// Canonical examples never draw from the random source.
	generator := w.newGenerator(schema, 1, args.Parallel)

	examples, err := w.collectExamples(ctx, generator, schema.Types.Names(), false, max(args.Parallel, 1))
	if err != nil {
		slog.Error("Failed to generate examples", "run", generator.runID, "error", err)
		return errors.Wrap(err, "generate examples")
	}

	results := compareSnapshots(stored, examples)

	if err := w.Start(ctx); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	if err := w.DisplaySnapshotResults(ctx, results); err != nil {
		return errors.Wrap(err, "display snapshot results")
	}

	if args.Update {
		current := make(map[string]string, len(examples))
		for _, example := range examples {
			current[example.TypeName] = example.Source
		}

		if err := w.SaveSnapshots(ctx, args.Snapshots, current); err != nil {
			slog.Error("Failed to save snapshots", "path", args.Snapshots, "error", err)
			return errors.Wrap(err, "save snapshots")
		}

		slog.Info("updated snapshots", "run", generator.runID, "path", args.Snapshots, "count", len(current))

		return nil
	}

	mismatched := 0

	for _, result := range results {
		if result.Status != m.SnapshotMatched {
			mismatched++
		}
	}

	if mismatched > 0 {
		return errors.WithHint(
			errors.Wrapf(ErrSnapshotMismatch, "%d of %d snapshots differ", mismatched, len(results)),
			"run `previewgen snapshot --update` to accept the new examples",
		)
	}

	return nil
}

// compareSnapshots classifies every example against the stored snapshots.
// Results are ordered by type name.
func compareSnapshots(stored map[string]string, examples []m.Example) []m.SnapshotResult {
	results := make([]m.SnapshotResult, 0, len(examples))
	seen := make(map[string]bool, len(examples))

	for _, example := range examples {
		seen[example.TypeName] = true

		previous, ok := stored[example.TypeName]

		switch {
		case !ok:
			results = append(results, m.SnapshotResult{
				TypeName: example.TypeName,
				Status:   m.SnapshotAdded,
				Diff:     snapshotDiff(example.TypeName, "", example.Source),
			})
		case previous == example.Source:
			results = append(results, m.SnapshotResult{TypeName: example.TypeName, Status: m.SnapshotMatched})
		default:
			results = append(results, m.SnapshotResult{
				TypeName: example.TypeName,
				Status:   m.SnapshotChanged,
				Diff:     snapshotDiff(example.TypeName, previous, example.Source),
			})
		}
	}

	for name, previous := range stored {
		if seen[name] {
			continue
		}

		results = append(results, m.SnapshotResult{
			TypeName: name,
			Status:   m.SnapshotRemoved,
			Diff:     snapshotDiff(name, previous, ""),
		})
	}

	slices.SortFunc(results, func(a, b m.SnapshotResult) int {
		return strings.Compare(a.TypeName, b.TypeName)
	})

	return results
}

func snapshotDiff(name, previous, current string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(previous),
		B:        splitLines(current),
		FromFile: "snapshot/" + name,
		ToFile:   "generated/" + name,
		Context:  diffContextLines,
	})
	if err != nil {
		slog.Warn("failed to diff snapshot", "type", name, "error", err)
		return ""
	}

	return diff
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	return difflib.SplitLines(s)
}
