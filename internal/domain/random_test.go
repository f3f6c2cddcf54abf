package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRandom(t *testing.T) {
	t.Run("int range stays in bounds", func(t *testing.T) {
		r := NewRandom(42)
		for range 200 {
			n := r.IntRange(-5000, 5000)
			assert.GreaterOrEqual(t, n, -5000)
			assert.Less(t, n, 5000)
		}
	})

	t.Run("empty range returns lower bound", func(t *testing.T) {
		assert.Equal(t, 3, NewRandom(1).IntRange(3, 3))
	})

	t.Run("words", func(t *testing.T) {
		r := NewRandom(7)
		assert.Empty(t, r.Words(0))
		assert.Len(t, strings.Fields(r.Words(4)), 4)
	})

	t.Run("same seed reproduces", func(t *testing.T) {
		a, b := NewRandom(99), NewRandom(99)
		for range 20 {
			assert.Equal(t, a.IntRange(0, 1000), b.IntRange(0, 1000))
			assert.Equal(t, a.Bool(), b.Bool())
			assert.Equal(t, a.Words(3), b.Words(3))
		}
	})
}
