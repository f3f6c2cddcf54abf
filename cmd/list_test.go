package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kongweiying2/previewjs/internal/domain"
)

func TestListCmd_UsesSchema(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	cmd, _ := newTestRootCmd(t, newListCmd)

	mockWorkflow.On("List", mock.Anything, domain.ListArgs{Schema: "components.yaml"}).Return(nil)

	cmd.SetArgs([]string{"list", "-s", "components.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_PositionalArgsAreRejected(t *testing.T) {
	useMockWorkflow(t)
	cmd, _ := newTestRootCmd(t, newListCmd)

	cmd.SetArgs([]string{"list", "Props"})
	require.Error(t, cmd.Execute())
}
