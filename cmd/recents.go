package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/strata/internal/recents"
	"github.com/papapumpkin/strata/internal/ui"
)

var recentsCmd = &cobra.Command{
	Use:   "recents",
	Short: "List or clear recently picked blocks",
	Args:  cobra.NoArgs,
	RunE:  runRecents,
}

func init() {
	recentsCmd.Flags().Bool("clear", false, "forget every recently picked block")
	rootCmd.AddCommand(recentsCmd)
}

func runRecents(cmd *cobra.Command, _ []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	store, history, err := openRecents(ctx, e)
	if err != nil {
		return err
	}
	defer store.Close()

	printer := ui.NewWriter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if clearAll, _ := cmd.Flags().GetBool("clear"); clearAll {
		if err := store.Clear(ctx); err != nil {
			return err
		}
		history.Clear()
		printer.Success("recent blocks cleared")
		return nil
	}

	title := "recent"
	if history.Len() == 0 {
		title = "recent (defaults)"
	}
	printer.Stacks(title, history.Entries(e.provider))
	return nil
}

// openRecents opens the recents database and loads its history.
func openRecents(ctx context.Context, e *engine) (*recents.Store, *recents.History, error) {
	if dir := filepath.Dir(e.cfg.RecentsDB); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("recents: %w", err)
		}
	}
	store, err := recents.NewStore(ctx, e.cfg.RecentsDB)
	if err != nil {
		return nil, nil, err
	}
	store.Telemetry = e.telemetry

	history := recents.NewHistory(recents.Capacity)
	skipped, err := store.Load(ctx, history, e.provider)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	if skipped > 0 && e.logger != nil {
		fmt.Fprintf(e.logger, "recents: skipped %d unknown item(s)\n", skipped)
	}
	return store, history, nil
}
