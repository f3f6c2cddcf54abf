package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kongweiying2/previewjs/internal/domain"
	m "github.com/kongweiying2/previewjs/internal/model"
)

func TestViewCmd_UsesRootSchemaFlagByDefault(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	cmd, _ := newTestRootCmd(t, newViewCmd)

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Schema == m.Path(defaultSchemaPath) && args.Seed == 0
	})).Return(nil)

	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_SeedFlagIsPassedThrough(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	cmd, _ := newTestRootCmd(t, newViewCmd)

	mockWorkflow.On("View", mock.Anything, domain.ViewArgs{Schema: "./ui.yaml", Seed: 99}).Return(nil)

	cmd.SetArgs([]string{"view", "--schema", "./ui.yaml", "--seed", "99"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_SeedFallsBackToConfig(t *testing.T) {
	t.Setenv("PREVIEWGEN_GENERATE_SEED", "5")

	mockWorkflow := useMockWorkflow(t)
	cmd, _ := newTestRootCmd(t, newViewCmd)

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Seed == 5
	})).Return(nil)

	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_PositionalArgsAreRejected(t *testing.T) {
	useMockWorkflow(t)
	cmd, _ := newTestRootCmd(t, newViewCmd)

	cmd.SetArgs([]string{"view", "Props"})
	require.Error(t, cmd.Execute())
}
