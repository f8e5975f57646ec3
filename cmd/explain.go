package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/strata/internal/item"
	"github.com/papapumpkin/strata/internal/ui"
)

var explainCmd = &cobra.Command{
	Use:   "explain <item>...",
	Short: "Show how items are classified and where they land",
	Long: `Prints the derived keys of each item (variant chain, shape, family and
per-family base/shape/variant), whether it is omitted, and which category
claims it in the current snapshot. Bare paths use the minecraft namespace.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	ids := make([]item.ID, 0, len(args))
	for _, a := range args {
		id, err := item.ParseID(a)
		if err != nil {
			return fmt.Errorf("explain: %w", err)
		}
		ids = append(ids, id)
	}

	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	printer := ui.NewWriter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	for i, id := range ids {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		printer.Explain(e.Registry().Explain(id, e.dc))
	}
	return nil
}
