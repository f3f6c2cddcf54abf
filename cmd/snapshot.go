package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kongweiying2/previewjs/internal/domain"
	m "github.com/kongweiying2/previewjs/internal/model"
)

var snapshotFileFlag string
var snapshotUpdateFlag bool

// snapshotCmd represents the snapshot command.
var snapshotCmd = newSnapshotCmd()

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Compare canonical examples with stored snapshots",
		Long: `Generate the canonical example of every declared type and compare it with
the snapshot file. Differences are printed as unified diffs and make the
command fail unless --update is given, in which case the snapshot file is
rewritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Snapshot(cmd.Context(), domain.SnapshotArgs{
				Schema:    m.Path(viper.GetString(schemaConfigKey)),
				Snapshots: m.Path(viper.GetString(snapshotFileKey)),
				Update:    snapshotUpdateFlag,
				Parallel:  viper.GetInt(generateParallelKey),
			})
		},
	}

	cmd.Flags().StringVar(&snapshotFileFlag, snapshotsFlagName, defaultSnapshotFile, "snapshot file")
	bindFlagToConfig(cmd.Flags().Lookup(snapshotsFlagName), snapshotFileKey)

	cmd.Flags().BoolVarP(&snapshotUpdateFlag, updateFlagName, "u", false, "rewrite the snapshot file with the current examples")

	return cmd
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}
