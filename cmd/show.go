package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/strata/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <category>",
	Short: "Print one category's entries",
	Long: `Prints the entries of a single category. The category may be named by
path ("structure_wood") or full identifier ("blockfilter:structure_wood").

With --raw, prints the engine's stacks without removing repeated items.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().Bool("raw", false, "keep repeated items from overlapping pools")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	reg := e.Registry()
	c, err := reg.Resolve(args[0])
	if err != nil {
		return err
	}

	stacks := reg.Entries(c.ID(), e.dc)
	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		stacks = reg.StacksFor(c.ID(), e.dc)
	}
	ui.NewWriter(cmd.OutOrStdout(), cmd.ErrOrStderr()).Category(c, stacks)
	return nil
}
