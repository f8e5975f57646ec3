package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/strata/internal/biome"
	"github.com/papapumpkin/strata/internal/catalog"
	"github.com/papapumpkin/strata/internal/item"
	"github.com/papapumpkin/strata/internal/tui"
	"github.com/papapumpkin/strata/internal/watch"
)

// browseCmd launches the interactive category browser.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog and its categories interactively",
	Long: `Opens a terminal browser. The vanilla view lists recently picked blocks,
biome samples and every catalog group; tab walks the filter categories and
f toggles between the two views. Picking a block records it in the recents
database.

With --watch, edits to the catalog file are picked up live.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().Bool("watch", false, "reload the catalog when its file changes")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	if !isStderrTTY() {
		return fmt.Errorf("strata browse requires a TTY (terminal)")
	}

	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	store, history, err := openRecents(ctx, e)
	if err != nil {
		return err
	}
	defer store.Close()

	tabs := []tui.Tab{
		{Title: "Recent", Entries: func() []item.Stack { return history.Entries(e.provider) }},
		{Title: "Biomes", Entries: func() []item.Stack { return biome.Entries(e.provider) }},
	}
	tabs = append(tabs, groupTabs(e)...)

	p := tui.NewProgram(tui.Config{
		Registry: e.Registry(),
		Context:  e.dc,
		Vanilla:  tabs,
		OnPick: func(s item.Stack) error {
			if !history.Record(s) {
				return nil
			}
			return store.Save(ctx, history)
		},
	})

	if live, _ := cmd.Flags().GetBool("watch"); live && e.cfg.CatalogPath != "" {
		w, err := watch.NewWatcher(e.cfg.CatalogPath)
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()

		r := watch.NewReloader(e.Invalidate)
		r.Telemetry = e.telemetry
		if err := r.Handle(e.cfg.CatalogPath, watch.CatalogHandler(e.provider)); err != nil {
			return err
		}
		go func() {
			for ch := range w.Changes {
				if err := r.Apply(ch); err != nil {
					p.Send(tui.MsgError{Err: err})
					continue
				}
				p.Send(tui.MsgReloaded{File: ch.File})
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// groupTabs returns one vanilla tab per sourced catalog group. Entries are
// read from the provider's current catalog so reloads show through.
func groupTabs(e *engine) []tui.Tab {
	var tabs []tui.Tab
	for _, g := range e.provider.Catalog().Groups() {
		if !catalog.Sourced(g, e.dc.Permissions) {
			continue
		}
		id := g.ID
		tabs = append(tabs, tui.Tab{
			Title: id.Path,
			Entries: func() []item.Stack {
				for _, cur := range e.provider.Catalog().Groups() {
					if cur.ID != id {
						continue
					}
					var out []item.Stack
					for _, it := range cur.Items {
						if e.dc.Features.Enables(it) {
							out = append(out, item.NewStack(it))
						}
					}
					return out
				}
				return nil
			},
		})
	}
	return tabs
}

func isStderrTTY() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
