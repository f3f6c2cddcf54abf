package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kongweiying2/previewjs/internal/domain"
	m "github.com/kongweiying2/previewjs/internal/model"
)

var viewSeedFlag uint64

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse examples interactively",
		Long: `Browse the declared types and their examples. Press r for a random example
and d to return to the canonical one. Without a terminal the canonical
examples are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed := viewSeedFlag
			if !cmd.Flags().Changed(seedFlagName) {
				seed = viper.GetUint64(generateSeedKey)
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{
				Schema: m.Path(viper.GetString(schemaConfigKey)),
				Seed:   seed,
			})
		},
	}

	cmd.Flags().Uint64Var(&viewSeedFlag, seedFlagName, defaultGenerateSeed, "seed for random examples (default: generate.seed)")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
