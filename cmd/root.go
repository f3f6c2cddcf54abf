// Package cmd provides the root command and CLI setup for previewgen.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kongweiying2/previewjs/internal/adapter"
	"github.com/kongweiying2/previewjs/internal/controller"
	"github.com/kongweiying2/previewjs/internal/domain"
)

var schemaAdapter adapter.SchemaAdapter
var snapshotStore adapter.SnapshotStore
var formatter adapter.SourceFormatter
var workflow domain.Workflow
var ui controller.UI

// schemaFlag is a root-level flag shared by every command reading the schema.
var schemaFlag string

// verboseFlag switches logging to debug level.
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	schemaAdapter = adapter.NewLocalSchemaAdapter()
	snapshotStore = adapter.NewLocalSnapshotStore()
	formatter = adapter.NewESBuildFormatter()
	workflow = domain.NewWorkflow(
		schemaAdapter,
		snapshotStore,
		formatter,
		ui,
	)
}

const schemaFormatHelp = `The schema is a YAML file of named type declarations:

  version: "1.0.0"
  types:
    Props:
      kind: object
      fields:
        label: string
        size?: Size
    Size:
      kind: enum
      options: {Small: sm, Large: lg}`

const rootLongDescription = `Previewgen synthesizes example values for type declarations so that
components can be previewed without hand-written fixtures. Canonical
examples are stable and suitable for snapshots; random examples explore
the shape of a type.

` + schemaFormatHelp

const generateLongDescription = `Print an example value for each given type (default: every declared type).

Canonical examples are deterministic. With --random the values are drawn
from a seeded source; the same --seed reproduces the same output.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "previewgen",
		Short:         "Example value generator for type declarations",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&schemaFlag, schemaFlagName, "s",
			defaultSchemaPath,
			"schema file with the type declarations",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(schemaFlagName), schemaConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		printError(rootCmd, err)
		os.Exit(1)
	}
}

// printError reports err and any hints attached to it on the error stream.
func printError(cmd *cobra.Command, err error) {
	cmd.PrintErrln("Error:", err)

	for _, hint := range errors.GetAllHints(err) {
		cmd.PrintErrln("hint:", hint)
	}
}
