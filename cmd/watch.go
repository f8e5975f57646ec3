package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/strata/internal/ui"
	"github.com/papapumpkin/strata/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the partition whenever the catalog or vocabulary changes",
	Long: `Watches the configured catalog and vocabulary files. Each change reloads
the file, invalidates the snapshot and prints the rebuilt category summary.
A file that fails to parse leaves the previous contents in place.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	printer := ui.NewWriter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	r, err := newReloader(e)
	if err != nil {
		return err
	}
	r.Logger = cmd.ErrOrStderr()
	if len(r.Paths()) == 0 {
		return fmt.Errorf("nothing to watch: set catalog_path or vocabulary_path")
	}

	w, err := watch.NewWatcher(r.Paths()...)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer.Categories(e.Registry(), e.Snapshot())
	for _, p := range w.Files() {
		printer.Info("watching " + p)
	}

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case ch, ok := <-w.Changes:
			if !ok {
				return nil
			}
			if err := r.Apply(ch); err != nil || ch.Removed {
				continue
			}
			printer.Categories(e.Registry(), e.Snapshot())
		}
	}
}

// newReloader registers handlers for the configured input files.
func newReloader(e *engine) (*watch.Reloader, error) {
	r := watch.NewReloader(e.Invalidate)
	r.Telemetry = e.telemetry
	if p := e.cfg.CatalogPath; p != "" {
		if err := r.Handle(p, watch.CatalogHandler(e.provider)); err != nil {
			return nil, err
		}
	}
	if p := e.cfg.VocabularyPath; p != "" {
		if err := r.Handle(p, e.reloadVocabulary); err != nil {
			return nil, err
		}
	}
	return r, nil
}
