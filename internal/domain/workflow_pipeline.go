package domain

import (
	"context"
	"log/slog"
	"slices"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	m "github.com/kongweiying2/previewjs/internal/model"
	"github.com/kongweiying2/previewjs/pkg/filespill"
)

const spillPattern = "previewgen-*.gob"

// Generate synthesizes an example for each selected type and displays them
// in selection order.
func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	schema, err := w.LoadSchema(ctx, args.Schema)
	if err != nil {
		slog.Error("Failed to load schema", "path", args.Schema, "error", err)
		return errors.Wrap(err, "load schema")
	}

	names, err := selectTypes(schema, args.Types)
	if err != nil {
		return err
	}

	seed := resolveSeed(args.Seed)
	generator := w.newGenerator(schema, seed, args.Parallel)

	threads := max(args.Parallel, 1)
	// Random draws come from one shared source; generating in order keeps a
	// seed reproducible.
	if args.Random {
		threads = 1
	}

	slog.Info("generating examples",
		"run", generator.runID,
		"schema", args.Schema,
		"types", len(names),
		"random", args.Random,
		"seed", seed,
		"threads", threads,
	)

	if err := w.Start(ctx); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	examples, err := w.collectExamples(ctx, generator, names, args.Random, threads)
	if err != nil {
		slog.Error("Failed to generate examples", "run", generator.runID, "error", err)
		return errors.Wrap(err, "generate examples")
	}

	if err := w.DisplayExamples(ctx, examples); err != nil {
		return errors.Wrap(err, "display examples")
	}

	return nil
}

// collectExamples runs the generation pipeline and returns the examples in
// the order of names. Results are buffered in a spill file while workers run.
func (w *workflow) collectExamples(
	ctx context.Context,
	generator exampleGenerator,
	names []string,
	random bool,
	threads int,
) ([]m.Example, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	spill, err := filespill.NewFileSpill[m.Example](filespill.WithPattern(spillPattern))
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := spill.Remove(); err != nil {
			slog.Error("Failed to remove spill file", "path", spill.Path(), "error", err)
		}
	}()

	examplesChannel, errorChannel := w.generateExamplesChannel(ctx, generator, names, random, threads)

	group, groupCtx := errgroup.WithContext(ctx)

	// Goroutine to collect examples
	group.Go(func() error {
		for {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			case example, ok := <-examplesChannel:
				if !ok {
					return nil
				}

				if err := spill.Append(example); err != nil {
					return err
				}
			}
		}
	})

	// Goroutine to monitor errors
	group.Go(func() error {
		select {
		case <-groupCtx.Done():
			return groupCtx.Err()
		case err, ok := <-errorChannel:
			if !ok {
				return nil
			}

			return err
		}
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if err := spill.Close(); err != nil {
		return nil, err
	}

	examples := make([]m.Example, 0, spill.Len())

	err = spill.Range(func(_ uint64, example m.Example) error {
		examples = append(examples, example)
		return nil
	})
	if err != nil {
		return nil, err
	}

	order := make(map[string]int, len(names))
	for i, name := range names {
		order[name] = i
	}

	slices.SortFunc(examples, func(a, b m.Example) int {
		return order[a.TypeName] - order[b.TypeName]
	})

	return examples, nil
}

func (w *workflow) generateExamplesChannel(
	ctx context.Context,
	generator exampleGenerator,
	names []string,
	random bool,
	threads int,
) (<-chan m.Example, <-chan error) {
	examplesChannel := make(chan m.Example, threads)
	errorChannel := make(chan error, 1)

	go func() {
		defer close(errorChannel)
		defer close(examplesChannel)

		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(threads)

		for _, name := range names {
			if groupCtx.Err() != nil {
				break
			}

			group.Go(func() error {
				example, err := generator.example(groupCtx, name, random)
				if err != nil {
					return err
				}

				select {
				case <-groupCtx.Done():
					return groupCtx.Err()
				case examplesChannel <- example:
					return nil
				}
			})
		}

		if err := group.Wait(); err != nil {
			errorChannel <- err
		}
	}()

	return examplesChannel, errorChannel
}
