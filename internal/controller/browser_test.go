package controller

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/kongweiying2/previewjs/internal/model"
)

type generateCall struct {
	name   string
	random bool
}

func newTestBrowser(t *testing.T, calls *[]generateCall) browserModel {
	t.Helper()

	types := []m.TypeSummary{
		{Name: "Props", Kind: m.KindObject},
		{Name: "Size", Kind: m.KindEnum},
	}

	return newBrowserModel(context.Background(), types, func(_ context.Context, name string, random bool) (m.Example, error) {
		*calls = append(*calls, generateCall{name: name, random: random})

		source := name + " canonical"
		if random {
			source = name + " random"
		}

		return m.Example{TypeName: name, Random: random, Source: source}, nil
	})
}

// step runs cmd and feeds its message back into the model.
func step(t *testing.T, model tea.Model, cmd tea.Cmd) browserModel {
	t.Helper()
	require.NotNil(t, cmd)

	next, _ := model.Update(cmd())

	b, ok := next.(browserModel)
	require.True(t, ok)

	return b
}

func press(t *testing.T, model browserModel, msg tea.KeyMsg) (browserModel, tea.Cmd) {
	t.Helper()

	next, cmd := model.Update(msg)

	b, ok := next.(browserModel)
	require.True(t, ok)

	return b, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowserModel(t *testing.T) {
	t.Run("starts with the canonical example of the first type", func(t *testing.T) {
		var calls []generateCall

		b := newTestBrowser(t, &calls)
		b = step(t, b, b.Init())

		require.NotNil(t, b.current)
		assert.Equal(t, "Props canonical", b.current.Source)
		assert.Equal(t, []generateCall{{name: "Props"}}, calls)
		assert.Contains(t, b.View(), "// Props (canonical)")
	})

	t.Run("down selects the next type", func(t *testing.T) {
		var calls []generateCall

		b := newTestBrowser(t, &calls)
		b = step(t, b, b.Init())

		b, cmd := press(t, b, tea.KeyMsg{Type: tea.KeyDown})
		assert.Equal(t, 1, b.selected)

		b = step(t, b, cmd)
		assert.Equal(t, "Size canonical", b.current.Source)

		_, cmd = press(t, b, tea.KeyMsg{Type: tea.KeyDown})
		assert.Nil(t, cmd, "already at the last type")
	})

	t.Run("up stops at the first type", func(t *testing.T) {
		var calls []generateCall

		b := newTestBrowser(t, &calls)

		b, cmd := press(t, b, tea.KeyMsg{Type: tea.KeyUp})
		assert.Equal(t, 0, b.selected)
		assert.Nil(t, cmd)

		b, cmd = press(t, b, runes("j"))
		b = step(t, b, cmd)
		b, cmd = press(t, b, runes("k"))
		b = step(t, b, cmd)

		assert.Equal(t, 0, b.selected)
		assert.Equal(t, "Props canonical", b.current.Source)
	})

	t.Run("r rerolls and d restores the canonical example", func(t *testing.T) {
		var calls []generateCall

		b := newTestBrowser(t, &calls)
		b = step(t, b, b.Init())

		b, cmd := press(t, b, runes("r"))
		b = step(t, b, cmd)
		assert.Equal(t, "Props random", b.current.Source)
		assert.Contains(t, b.View(), "// Props (random)")

		b, cmd = press(t, b, runes("d"))
		b = step(t, b, cmd)
		assert.Equal(t, "Props canonical", b.current.Source)

		assert.Equal(t, []generateCall{{name: "Props"}, {name: "Props", random: true}, {name: "Props"}}, calls)
	})

	t.Run("stale examples are ignored", func(t *testing.T) {
		var calls []generateCall

		b := newTestBrowser(t, &calls)
		stale := b.Init()

		b, _ = press(t, b, tea.KeyMsg{Type: tea.KeyDown})
		b = step(t, b, stale)

		assert.Nil(t, b.current)
		assert.Contains(t, b.View(), "loading")
	})

	t.Run("generation errors are shown", func(t *testing.T) {
		b := newBrowserModel(context.Background(), []m.TypeSummary{{Name: "Broken"}},
			func(context.Context, string, bool) (m.Example, error) {
				return m.Example{}, errors.New("cannot format")
			})
		b = step(t, b, b.Init())

		require.Error(t, b.err)
		view := b.View()
		assert.Contains(t, view, "Broken (error)")
		assert.Contains(t, view, "cannot format")
	})

	t.Run("q quits", func(t *testing.T) {
		var calls []generateCall

		b := newTestBrowser(t, &calls)

		b, cmd := press(t, b, runes("q"))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, b.quitting)
		assert.Empty(t, b.View())
	})

	t.Run("window size resizes the viewport", func(t *testing.T) {
		var calls []generateCall

		b := newTestBrowser(t, &calls)

		next, _ := b.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
		b = next.(browserModel)

		assert.Equal(t, 120-listWidth-2, b.viewport.Width)
		assert.Equal(t, 40-reservedLines, b.viewport.Height)
	})
}

func TestTUI_DisplayExamples(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	ui := NewTUI(cmd)

	require.NoError(t, ui.DisplayExamples(context.Background(), []m.Example{{TypeName: "Props", Source: "{}"}}))
	assert.Contains(t, out.String(), "// Props (canonical)")
	assert.Contains(t, out.String(), "{}")
}
