package domain

import (
	"context"
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kongweiying2/previewjs/internal/adapter"
	adaptermocks "github.com/kongweiying2/previewjs/internal/adapter/mocks"
	"github.com/kongweiying2/previewjs/internal/controller"
	controllermocks "github.com/kongweiying2/previewjs/internal/controller/mocks"
	m "github.com/kongweiying2/previewjs/internal/model"
)

const testSchemaPath = m.Path("previewgen.schema.yaml")

func testSchema() m.Schema {
	return m.Schema{
		Origin:  testSchemaPath,
		Version: "1.0.0",
		Types: m.CollectedTypes{
			"Count": {Type: m.TypeNumber},
			"Props": {Type: m.ObjectOf(
				m.Required("label", m.TypeString),
				m.Optional("size", m.Named("Size")),
			)},
			"Size": {Type: m.EnumOf(
				m.EnumOption{Name: "Small", Value: "sm"},
				m.EnumOption{Name: "Large", Value: "lg"},
			)},
		},
	}
}

type workflowMocks struct {
	schema    *adaptermocks.MockSchemaAdapter
	snapshots *adaptermocks.MockSnapshotStore
	ui        *controllermocks.MockUI
}

func newTestWorkflow(t *testing.T, formatter adapter.SourceFormatter) (Workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		schema:    adaptermocks.NewMockSchemaAdapter(t),
		snapshots: adaptermocks.NewMockSnapshotStore(t),
		ui:        controllermocks.NewMockUI(t),
	}

	return NewWorkflow(mocks.schema, mocks.snapshots, formatter, mocks.ui), mocks
}

func (w workflowMocks) expectSchema(schema m.Schema) {
	w.schema.EXPECT().LoadSchema(mock.Anything, testSchemaPath).Return(schema, nil)
}

func (w workflowMocks) expectUILifecycle() {
	w.ui.EXPECT().Start(mock.Anything).Return(nil)
	w.ui.EXPECT().Close(mock.Anything).Return()
}

func (w workflowMocks) captureExamples(examples *[]m.Example) {
	w.ui.EXPECT().DisplayExamples(mock.Anything, mock.Anything).
		Run(func(_ context.Context, got []m.Example) { *examples = got }).
		Return(nil)
}

func sources(examples []m.Example) map[string]string {
	out := make(map[string]string, len(examples))
	for _, example := range examples {
		out[example.TypeName] = example.Source
	}

	return out
}

func typeNames(examples []m.Example) []string {
	out := make([]string, 0, len(examples))
	for _, example := range examples {
		out = append(out, example.TypeName)
	}

	return out
}

func TestWorkflow_List(t *testing.T) {
	t.Run("displays declared types", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t, identityFormatter(t))
		mocks.expectSchema(testSchema())
		mocks.expectUILifecycle()
		mocks.ui.EXPECT().DisplayTypes(mock.Anything, []m.TypeSummary{
			{Name: "Count", Kind: m.KindNumber, Parameters: []string{}},
			{Name: "Props", Kind: m.KindObject, Parameters: []string{}},
			{Name: "Size", Kind: m.KindEnum, Parameters: []string{}},
		}).Return(nil)

		require.NoError(t, wf.List(context.Background(), ListArgs{Schema: testSchemaPath}))
	})

	t.Run("schema error", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t, identityFormatter(t))
		mocks.schema.EXPECT().LoadSchema(mock.Anything, testSchemaPath).Return(m.Schema{}, adapter.ErrInvalidSchema)

		err := wf.List(context.Background(), ListArgs{Schema: testSchemaPath})
		require.ErrorIs(t, err, adapter.ErrInvalidSchema)
	})
}

func TestWorkflow_Generate(t *testing.T) {
	t.Run("canonical examples for every type", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t, identityFormatter(t))
		mocks.expectSchema(testSchema())
		mocks.expectUILifecycle()

		var examples []m.Example
		mocks.captureExamples(&examples)

		err := wf.Generate(context.Background(), GenerateArgs{Schema: testSchemaPath})
		require.NoError(t, err)

		assert.Equal(t, []string{"Count", "Props", "Size"}, typeNames(examples))
		assert.Equal(t, map[string]string{
			"Count": "0",
			"Props": `{ label: "label" }`,
			"Size":  `"sm"`,
		}, sources(examples))

		runID := examples[0].RunID
		assert.NotEmpty(t, runID)

		for _, example := range examples {
			assert.Equal(t, runID, example.RunID)
			assert.False(t, example.Random)
		}
	})

	t.Run("selected types keep their order", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t, identityFormatter(t))
		mocks.expectSchema(testSchema())
		mocks.expectUILifecycle()

		var examples []m.Example
		mocks.captureExamples(&examples)

		err := wf.Generate(context.Background(), GenerateArgs{
			Schema: testSchemaPath,
			Types:  []string{"Size", "Props", "Size"},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"Size", "Props"}, typeNames(examples))
	})

	t.Run("parallel generation keeps the order", func(t *testing.T) {
		schema := m.Schema{Origin: testSchemaPath, Types: m.CollectedTypes{}}
		for i := range 20 {
			schema.Types[fmt.Sprintf("T%02d", i)] = m.CollectedType{Type: m.LiteralOf(i)}
		}

		wf, mocks := newTestWorkflow(t, identityFormatter(t))
		mocks.expectSchema(schema)
		mocks.expectUILifecycle()

		var examples []m.Example
		mocks.captureExamples(&examples)

		err := wf.Generate(context.Background(), GenerateArgs{Schema: testSchemaPath, Parallel: 4})
		require.NoError(t, err)

		require.Len(t, examples, 20)

		for i, example := range examples {
			assert.Equal(t, fmt.Sprintf("T%02d", i), example.TypeName)
			assert.Equal(t, fmt.Sprint(i), example.Source)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t, identityFormatter(t))
		mocks.expectSchema(testSchema())

		err := wf.Generate(context.Background(), GenerateArgs{Schema: testSchemaPath, Types: []string{"Missing"}})
		require.ErrorIs(t, err, m.ErrUnknownType)
	})

	t.Run("formatter error", func(t *testing.T) {
		formatter := adaptermocks.NewMockSourceFormatter(t)
		formatter.EXPECT().FormatExpression(mock.Anything, mock.Anything).Return("", adapter.ErrFormat)

		wf, mocks := newTestWorkflow(t, formatter)
		mocks.expectSchema(testSchema())
		mocks.expectUILifecycle()

		err := wf.Generate(context.Background(), GenerateArgs{Schema: testSchemaPath})
		require.ErrorIs(t, err, adapter.ErrFormat)
	})

	t.Run("start error", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t, identityFormatter(t))
		mocks.expectSchema(testSchema())
		mocks.ui.EXPECT().Start(mock.Anything).Return(context.Canceled)

		err := wf.Generate(context.Background(), GenerateArgs{Schema: testSchemaPath})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestWorkflow_GenerateRandomIsReproducible(t *testing.T) {
	schema := testSchema()
	schema.Types["Tags"] = m.CollectedType{Type: m.ArrayOf(m.TypeString)}
	schema.Types["Score"] = m.CollectedType{Type: m.UnionOf(m.TypeNumber, m.TypeBoolean, m.TypeNull)}

	run := func() []m.Example {
		wf, mocks := newTestWorkflow(t, identityFormatter(t))
		mocks.expectSchema(schema)
		mocks.expectUILifecycle()

		var examples []m.Example
		mocks.captureExamples(&examples)

		err := wf.Generate(context.Background(), GenerateArgs{Schema: testSchemaPath, Random: true, Seed: 42, Parallel: 8})
		require.NoError(t, err)

		return examples
	}

	first := run()
	second := run()

	require.Len(t, first, 5)
	assert.Equal(t, sources(first), sources(second))

	for _, example := range first {
		assert.True(t, example.Random)
	}
}

func TestWorkflow_View(t *testing.T) {
	t.Run("browses every type", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t, identityFormatter(t))
		mocks.expectSchema(testSchema())
		mocks.expectUILifecycle()

		mocks.ui.EXPECT().Browse(mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, types []m.TypeSummary, example controller.ExampleFunc) error {
				require.Len(t, types, 3)
				assert.Equal(t, "Props", types[1].Name)

				canonical, err := example(ctx, "Props", false)
				require.NoError(t, err)
				assert.Equal(t, `{ label: "label" }`, canonical.Source)

				random, err := example(ctx, "Size", true)
				require.NoError(t, err)
				assert.True(t, random.Random)
				assert.Contains(t, []string{`"sm"`, `"lg"`}, random.Source)

				_, err = example(ctx, "Missing", false)
				require.ErrorIs(t, err, m.ErrUnknownType)

				return nil
			})

		require.NoError(t, wf.View(context.Background(), ViewArgs{Schema: testSchemaPath, Seed: 7}))
	})

	t.Run("browse error", func(t *testing.T) {
		boom := errors.New("terminal gone")

		wf, mocks := newTestWorkflow(t, identityFormatter(t))
		mocks.expectSchema(testSchema())
		mocks.expectUILifecycle()
		mocks.ui.EXPECT().Browse(mock.Anything, mock.Anything, mock.Anything).Return(boom)

		require.ErrorIs(t, wf.View(context.Background(), ViewArgs{Schema: testSchemaPath}), boom)
	})
}

func TestSelectTypes(t *testing.T) {
	schema := testSchema()

	tests := []struct {
		name      string
		requested []string
		want      []string
		wantErr   error
	}{
		{name: "all", want: []string{"Count", "Props", "Size"}},
		{name: "subset", requested: []string{"Size"}, want: []string{"Size"}},
		{name: "duplicates", requested: []string{"Props", "Props", "Count"}, want: []string{"Props", "Count"}},
		{name: "unknown", requested: []string{"Count", "Nope"}, wantErr: m.ErrUnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectTypes(schema, tt.requested)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSeed(t *testing.T) {
	assert.Equal(t, uint64(9), resolveSeed(9))
	assert.NotZero(t, resolveSeed(0))
}
