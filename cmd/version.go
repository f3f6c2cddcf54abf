package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/kongweiying2/previewjs/internal/adapter"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go version used to build this tool and the schema versions it reads.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("schema versions\t", adapter.SupportedSchemaVersions)

			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("tool version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
