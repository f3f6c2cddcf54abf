package adapter

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestESBuildFormatter_FormatExpression(t *testing.T) {
	formatter := NewESBuildFormatter()

	t.Run("function body is reindented", func(t *testing.T) {
		got, err := formatter.FormatExpression(context.Background(), `() => {
            console.log("onClick invoked");
                  return 0;
          }`)
		require.NoError(t, err)
		assert.Contains(t, got, `console.log("onClick invoked");`)
		assert.Contains(t, got, "  return 0;")
		assert.NotContains(t, got, "__example")
		assert.NotContains(t, got, "            ")
	})

	t.Run("object literal keeps its shape", func(t *testing.T) {
		got, err := formatter.FormatExpression(context.Background(), `{ label: "label", count: 0 }`)
		require.NoError(t, err)
		assert.Contains(t, got, `label: "label"`)
		assert.Contains(t, got, "count: 0")
	})

	t.Run("non ascii text is preserved", func(t *testing.T) {
		got, err := formatter.FormatExpression(context.Background(), `"héllo"`)
		require.NoError(t, err)
		assert.Equal(t, `"héllo"`, got)
	})

	t.Run("invalid source", func(t *testing.T) {
		_, err := formatter.FormatExpression(context.Background(), `() => {`)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrFormat))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := formatter.FormatExpression(ctx, "1")
		require.ErrorIs(t, err, context.Canceled)
	})
}
