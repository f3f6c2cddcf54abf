package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kongweiying2/previewjs/internal/domain"
	m "github.com/kongweiying2/previewjs/internal/model"
)

var generateRandomFlag bool
var generateSeedFlag uint64
var generateParallelFlag int

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate [types...]",
		Aliases: []string{"gen"},
		Short:   "Print example values for declared types",
		Long:    generateLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Generate(cmd.Context(), domain.GenerateArgs{
				Schema:   m.Path(viper.GetString(schemaConfigKey)),
				Types:    args,
				Random:   viper.GetBool(generateRandomKey),
				Seed:     viper.GetUint64(generateSeedKey),
				Parallel: viper.GetInt(generateParallelKey),
			})
		},
	}

	configureGenerateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func configureGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&generateRandomFlag, randomFlagName, "r", defaultGenerateRandom, "draw random examples instead of canonical ones")
	bindFlagToConfig(cmd.Flags().Lookup(randomFlagName), generateRandomKey)

	cmd.Flags().Uint64Var(&generateSeedFlag, seedFlagName, defaultGenerateSeed, "seed for random examples (0 picks one from the clock)")
	bindFlagToConfig(cmd.Flags().Lookup(seedFlagName), generateSeedKey)

	cmd.Flags().IntVarP(&generateParallelFlag, parallelFlagName, "p", defaultGenerateParallel, "number of types generated concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), generateParallelKey)
}
