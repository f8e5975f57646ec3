package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/strata/internal/ui"
)

var partitionCmd = &cobra.Command{
	Use:   "partition",
	Short: "Print every category's arranged contents",
	Long: `Builds a snapshot for the configured display context and prints each
category in priority order, followed by the extraction accounting.

With --pools, prints the captured source pool sizes instead. With
--verbose, also prints the cache counters and when the snapshot was built.`,
	Args: cobra.NoArgs,
	RunE: runPartition,
}

func init() {
	partitionCmd.Flags().Bool("pools", false, "print captured pool sizes instead of categories")
	partitionCmd.Flags().Bool("summary", false, "print only the category list with counts")
	rootCmd.AddCommand(partitionCmd)
}

func runPartition(cmd *cobra.Command, _ []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	printer := ui.NewWriter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	if pools, _ := cmd.Flags().GetBool("pools"); pools {
		printer.Pools(e.provider.Capture(e.dc))
		return nil
	}

	snap := e.Snapshot()
	if summary, _ := cmd.Flags().GetBool("summary"); summary {
		printer.Categories(e.Registry(), snap)
		printer.Summary(snap)
	} else {
		printer.Partition(e.Registry(), snap)
	}
	if e.cfg.Verbose {
		printer.CacheStats(e.Registry().Cache())
	}
	return nil
}
