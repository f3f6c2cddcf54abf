package cmd

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kongweiying2/previewjs/internal/domain"
	domainmocks "github.com/kongweiying2/previewjs/internal/domain/mocks"
	m "github.com/kongweiying2/previewjs/internal/model"
)

// useMockWorkflow swaps the shared workflow for a mock until the test ends.
func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

// newTestRootCmd returns a root command with the given subcommands that logs
// into a temporary directory and writes its output to the returned buffer.
func newTestRootCmd(t *testing.T, subcommands ...func() *cobra.Command) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	// Config keys shared between commands stay bound to the flags of the last
	// command built; rebind them to untouched flags first.
	configureGenerateFlags(&cobra.Command{})

	original := viper.GetString(logFilenameKey)
	viper.Set(logFilenameKey, filepath.Join(t.TempDir(), "previewgen.log"))
	t.Cleanup(func() { viper.Set(logFilenameKey, original) })

	out := &bytes.Buffer{}

	cmd := newRootCmd()
	for _, newSubcommand := range subcommands {
		cmd.AddCommand(newSubcommand())
	}

	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "previewgen", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	flag := cmd.PersistentFlags().Lookup(schemaFlagName)
	require.NotNil(t, flag)
	assert.Equal(t, "s", flag.Shorthand)
	assert.Equal(t, defaultSchemaPath, flag.DefValue)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd, out := newTestRootCmd(t)

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "kind: object")
}

func TestRootCmd_SchemaFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  string
		want m.Path
	}{
		{name: "default", args: []string{"list"}, want: m.Path(defaultSchemaPath)},
		{name: "long flag", args: []string{"list", "--schema", "types.yaml"}, want: "types.yaml"},
		{name: "short flag before command", args: []string{"-s", "other.yaml", "list"}, want: "other.yaml"},
		{name: "environment", args: []string{"list"}, env: "env.yaml", want: "env.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("PREVIEWGEN_SCHEMA", tt.env)
			}

			mockWorkflow := useMockWorkflow(t)
			cmd, _ := newTestRootCmd(t, newListCmd)

			mockWorkflow.On("List", mock.Anything, domain.ListArgs{Schema: tt.want}).Return(nil)

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestInit(t *testing.T) {
	// Test that init() created all the necessary instances
	assert.NotNil(t, ui)
	assert.NotNil(t, schemaAdapter)
	assert.NotNil(t, snapshotStore)
	assert.NotNil(t, formatter)
	assert.NotNil(t, workflow)

	names := []string{}
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"generate", "init", "list", "snapshot", "version", "view"})
}

func TestPrintError(t *testing.T) {
	cmd := &cobra.Command{}
	errOut := &bytes.Buffer{}
	cmd.SetErr(errOut)

	err := errors.WithHint(errors.New("schema not found"), "pass --schema")
	printError(cmd, err)

	assert.Equal(t, "Error: schema not found\nhint: pass --schema\n", errOut.String())
}

func TestExecute(t *testing.T) {
	// Save original rootCmd
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	var ctx context.Context

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx = cmd.Context()
			return nil
		},
	}
	mockCmd.SetArgs([]string{})
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	Execute()

	require.NotNil(t, ctx)
	assert.Error(t, ctx.Err(), "signal context is released once Execute returns")
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(_ *cobra.Command, _ []string) error {
				return errors.WithHint(errors.New("command failed"), "try again")
			},
			SilenceErrors: true,
		}
		mockCmd.SetArgs([]string{})
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute() // This should call os.Exit(1)
		return
	}

	// Parent process: spawn subprocess
	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		assert.Equal(t, 1, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), "Error: command failed")
	assert.Contains(t, string(output), "hint: try again")
}
