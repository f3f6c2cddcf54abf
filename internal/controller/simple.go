package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/kongweiying2/previewjs/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayExamples prints each example under a comment naming its type.
func (s *SimpleUI) DisplayExamples(ctx context.Context, examples []m.Example) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(examples) == 0 {
		s.printf("no types to generate\n")
		return nil
	}

	for i, example := range examples {
		if i > 0 {
			s.printf("\n")
		}

		s.printf("%s\n%s\n", exampleHeading(example), example.Source)
	}

	return nil
}

func exampleHeading(example m.Example) string {
	mode := "canonical"
	if example.Random {
		mode = "random"
	}

	return fmt.Sprintf("// %s (%s)", example.TypeName, mode)
}

// DisplayTypes prints a table of the declared types.
func (s *SimpleUI) DisplayTypes(ctx context.Context, types []m.TypeSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderTypesTable(types))

	return nil
}

func renderTypesTable(types []m.TypeSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Type", "Kind", "Parameters"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, summary := range types {
		table.Append([]string{summary.Name, string(summary.Kind), strings.Join(summary.Parameters, ", ")})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(types)), "", ""})
	table.Render()

	return tableBuffer.String()
}

// DisplaySnapshotResults prints a status table followed by the diff of every
// snapshot that does not match.
func (s *SimpleUI) DisplaySnapshotResults(ctx context.Context, results []m.SnapshotResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderSnapshotTable(results))

	for _, result := range results {
		if result.Diff == "" {
			continue
		}

		s.printf("\n%s", result.Diff)
	}

	return nil
}

func renderSnapshotTable(results []m.SnapshotResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Type", "Snapshot"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	matched := 0

	for _, result := range results {
		if result.Status == m.SnapshotMatched {
			matched++
		}

		table.Append([]string{result.TypeName, result.Status.String()})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(results)),
		fmt.Sprintf("%d matched", matched),
	})

	table.Render()

	return tableBuffer.String()
}

// Browse prints the canonical example of every type; there is nothing to
// interact with on a plain output stream.
func (s *SimpleUI) Browse(ctx context.Context, types []m.TypeSummary, example ExampleFunc) error {
	examples := make([]m.Example, 0, len(types))

	for _, summary := range types {
		generated, err := example(ctx, summary.Name, false)
		if err != nil {
			return err
		}

		examples = append(examples, generated)
	}

	return s.DisplayExamples(ctx, examples)
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
