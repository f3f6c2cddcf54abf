package controller

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	m "github.com/kongweiying2/previewjs/internal/model"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// TUI implements UI for terminals: styled output and an interactive
// Bubble Tea browser.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// DisplayExamples prints each example under a highlighted heading.
func (t *TUI) DisplayExamples(ctx context.Context, examples []m.Example) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(examples) == 0 {
		t.printf("%s\n", mutedStyle.Render("no types to generate"))
		return nil
	}

	for i, example := range examples {
		if i > 0 {
			t.printf("\n")
		}

		t.printf("%s\n%s\n", headingStyle.Render(exampleHeading(example)), example.Source)
	}

	return nil
}

// Browse runs the interactive browser until the user quits.
func (t *TUI) Browse(ctx context.Context, types []m.TypeSummary, example ExampleFunc) error {
	if len(types) == 0 {
		return t.DisplayExamples(ctx, nil)
	}

	program := tea.NewProgram(
		newBrowserModel(ctx, types, example),
		tea.WithContext(ctx),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return errors.Wrap(err, "run browser")
	}

	return nil
}
