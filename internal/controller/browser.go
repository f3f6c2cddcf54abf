package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/kongweiying2/previewjs/internal/model"
)

const (
	defaultBrowserWidth  = 100
	defaultBrowserHeight = 24
	listWidth            = 28
	// heading line, blank line and help line
	reservedLines = 3
)

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	listStyle     = lipgloss.NewStyle().Width(listWidth).PaddingRight(2)
	paneStyle     = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).PaddingLeft(1)
)

type browserKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Reroll    key.Binding
	Canonical key.Binding
	Quit      key.Binding
}

func (k browserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reroll, k.Canonical, k.Quit}
}

func (k browserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBrowserKeyMap() browserKeyMap {
	return browserKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous type")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next type")),
		Reroll:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random example")),
		Canonical: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "canonical example")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// exampleMsg carries a generated example back into the update loop.
type exampleMsg struct {
	index   int
	example m.Example
	err     error
}

// browserModel is the Bubble Tea model behind TUI.Browse.
type browserModel struct {
	ctx      context.Context
	types    []m.TypeSummary
	generate ExampleFunc

	keys     browserKeyMap
	help     help.Model
	viewport viewport.Model

	selected int
	current  *m.Example
	err      error
	width    int
	quitting bool
}

func newBrowserModel(ctx context.Context, types []m.TypeSummary, generate ExampleFunc) browserModel {
	vp := viewport.New(defaultBrowserWidth-listWidth, defaultBrowserHeight-reservedLines)
	// Only paging keys scroll: the arrows move the selection.
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}

	return browserModel{
		ctx:      ctx,
		types:    types,
		generate: generate,
		keys:     newBrowserKeyMap(),
		help:     help.New(),
		viewport: vp,
		width:    defaultBrowserWidth,
	}
}

func (b browserModel) Init() tea.Cmd {
	return b.load(false)
}

func (b browserModel) load(random bool) tea.Cmd {
	if len(b.types) == 0 {
		return nil
	}

	index := b.selected
	name := b.types[index].Name

	return func() tea.Msg {
		example, err := b.generate(b.ctx, name, random)
		return exampleMsg{index: index, example: example, err: err}
	}
}

func (b browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.help.Width = msg.Width
		b.viewport.Width = max(msg.Width-listWidth-2, 10)
		b.viewport.Height = max(msg.Height-reservedLines, 1)

		return b, nil
	case exampleMsg:
		// A reply for a type that is no longer selected.
		if msg.index != b.selected {
			return b, nil
		}

		b.err = msg.err
		b.current = nil

		if msg.err == nil {
			example := msg.example
			b.current = &example
			b.viewport.SetContent(example.Source)
		} else {
			b.viewport.SetContent(errorStyle.Render(msg.err.Error()))
		}

		b.viewport.GotoTop()

		return b, nil
	case tea.KeyMsg:
		return b.handleKey(msg)
	}

	var cmd tea.Cmd
	b.viewport, cmd = b.viewport.Update(msg)

	return b, cmd
}

func (b browserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Quit):
		b.quitting = true
		return b, tea.Quit
	case key.Matches(msg, b.keys.Up):
		if b.selected == 0 {
			return b, nil
		}

		b.selected--

		return b, b.load(false)
	case key.Matches(msg, b.keys.Down):
		if b.selected >= len(b.types)-1 {
			return b, nil
		}

		b.selected++

		return b, b.load(false)
	case key.Matches(msg, b.keys.Reroll):
		return b, b.load(true)
	case key.Matches(msg, b.keys.Canonical):
		return b, b.load(false)
	}

	var cmd tea.Cmd
	b.viewport, cmd = b.viewport.Update(msg)

	return b, cmd
}

func (b browserModel) View() string {
	if b.quitting {
		return ""
	}

	var list strings.Builder

	for i, summary := range b.types {
		line := fmt.Sprintf("  %s %s", summary.Name, mutedStyle.Render(string(summary.Kind)))
		if i == b.selected {
			line = selectedStyle.Render("> " + summary.Name)
		}

		list.WriteString(line)
		list.WriteString("\n")
	}

	pane := paneStyle.Render(b.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render(b.heading()),
		lipgloss.JoinHorizontal(lipgloss.Top, listStyle.Render(list.String()), pane),
		b.help.View(b.keys),
	)
}

func (b browserModel) heading() string {
	switch {
	case b.err != nil:
		return b.types[b.selected].Name + " (error)"
	case b.current == nil:
		return "loading…"
	default:
		return exampleHeading(*b.current)
	}
}
