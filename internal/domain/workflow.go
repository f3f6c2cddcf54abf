package domain

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/kongweiying2/previewjs/internal/adapter"
	"github.com/kongweiying2/previewjs/internal/controller"
	"github.com/kongweiying2/previewjs/internal/domain/render"
	m "github.com/kongweiying2/previewjs/internal/model"
)

// ErrSnapshotMismatch is returned when generated examples differ from the
// stored snapshots.
var ErrSnapshotMismatch = errors.New("snapshot mismatch")

// GenerateArgs contains the arguments for generating examples.
type GenerateArgs struct {
	Schema m.Path
	// Types restricts generation to the named declarations. Empty means all.
	Types  []string
	Random bool
	// Seed drives randomized examples. Zero picks a seed from the clock.
	Seed     uint64
	Parallel int
}

// ListArgs contains the arguments for listing declared types.
type ListArgs struct {
	Schema m.Path
}

// SnapshotArgs contains the arguments for checking examples against snapshots.
type SnapshotArgs struct {
	Schema    m.Path
	Snapshots m.Path
	Update    bool
	Parallel  int
}

// ViewArgs contains the arguments for browsing examples interactively.
type ViewArgs struct {
	Schema m.Path
	Seed   uint64
}

// Workflow defines the commands offered on top of a schema file.
type Workflow interface {
	Generate(ctx context.Context, args GenerateArgs) error
	List(ctx context.Context, args ListArgs) error
	Snapshot(ctx context.Context, args SnapshotArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SchemaAdapter
	adapter.SnapshotStore
	adapter.SourceFormatter
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	schemaAdapter adapter.SchemaAdapter,
	snapshotStore adapter.SnapshotStore,
	formatter adapter.SourceFormatter,
	ui controller.UI,
) Workflow {
	return &workflow{
		SchemaAdapter:   schemaAdapter,
		SnapshotStore:   snapshotStore,
		SourceFormatter: formatter,
		UI:              ui,
	}
}

// List displays every declared type of the schema.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	schema, err := w.LoadSchema(ctx, args.Schema)
	if err != nil {
		slog.Error("Failed to load schema", "path", args.Schema, "error", err)
		return errors.Wrap(err, "load schema")
	}

	if err := w.Start(ctx); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	if err := w.DisplayTypes(ctx, schema.Summaries()); err != nil {
		return errors.Wrap(err, "display types")
	}

	return nil
}

// View lets the user browse canonical and randomized examples.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	schema, err := w.LoadSchema(ctx, args.Schema)
	if err != nil {
		slog.Error("Failed to load schema", "path", args.Schema, "error", err)
		return errors.Wrap(err, "load schema")
	}

	seed := resolveSeed(args.Seed)
	generator := w.newGenerator(schema, seed, 0)

	slog.Info("browsing examples", "run", generator.runID, "schema", args.Schema, "seed", seed)

	if err := w.Start(ctx); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	return w.Browse(ctx, schema.Summaries(), generator.example)
}

// exampleGenerator turns declared type names into formatted examples.
type exampleGenerator struct {
	adapter.SourceFormatter

	schema      m.Schema
	synthesizer Synthesizer
	runID       string
}

func (w *workflow) newGenerator(schema m.Schema, seed uint64, parallel int) exampleGenerator {
	options := []SynthesizerOption{WithRandom(NewRandom(seed))}
	if parallel > 0 {
		options = append(options, WithParallelism(parallel))
	}

	return exampleGenerator{
		SourceFormatter: w.SourceFormatter,
		schema:          schema,
		synthesizer:     NewSynthesizer(w.SourceFormatter, options...),
		runID:           uuid.NewString(),
	}
}

func (g exampleGenerator) example(ctx context.Context, name string, random bool) (m.Example, error) {
	t, collected, err := g.schema.Resolve(name)
	if err != nil {
		return m.Example{}, err
	}

	value, err := g.synthesizer.Synthesize(ctx, t, collected, SynthesisOptions{FieldName: name, Random: random})
	if err != nil {
		return m.Example{}, errors.Wrapf(err, "synthesize %s", name)
	}

	source, err := render.JavaScript(value)
	if err != nil {
		return m.Example{}, errors.Wrapf(err, "render %s", name)
	}

	formatted, err := g.FormatExpression(ctx, source)
	if err != nil {
		return m.Example{}, errors.Wrapf(err, "format %s", name)
	}

	slog.Debug("generated example", "run", g.runID, "type", name, "random", random)

	return m.Example{RunID: g.runID, TypeName: name, Random: random, Source: formatted}, nil
}

// selectTypes returns the requested names in order without duplicates, or
// every declared name when none are requested.
func selectTypes(schema m.Schema, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return schema.Types.Names(), nil
	}

	names := make([]string, 0, len(requested))

	for _, name := range requested {
		if slices.Contains(names, name) {
			continue
		}

		if _, _, err := schema.Resolve(name); err != nil {
			return nil, err
		}

		names = append(names, name)
	}

	return names, nil
}

func resolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}

	return uint64(time.Now().UnixNano())
}
