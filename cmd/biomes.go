package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/strata/internal/biome"
	"github.com/papapumpkin/strata/internal/ui"
)

var biomesCmd = &cobra.Command{
	Use:   "biomes [biome]",
	Short: "List the biome sample items",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBiomes,
}

func init() {
	rootCmd.AddCommand(biomesCmd)
}

func runBiomes(cmd *cobra.Command, args []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	printer := ui.NewWriter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if len(args) == 1 {
		printer.Stacks(args[0], biome.For(args[0], e.provider))
		return nil
	}
	printer.Stacks("biomes", biome.Entries(e.provider))
	return nil
}
