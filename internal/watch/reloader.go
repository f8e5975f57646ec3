package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/papapumpkin/strata/internal/catalog"
	"github.com/papapumpkin/strata/internal/telemetry"
)

// ErrNoHandler indicates a change for a file with no registered handler.
var ErrNoHandler = errors.New("watch: no handler")

// Handler reloads one file. A returned error keeps the previous state.
type Handler func(path string) error

// Reloader applies file changes: it runs the file's handler and, when that
// succeeds, invalidates cached results.
type Reloader struct {
	Invalidate func()             // called after every successful reload
	Logger     io.Writer          // optional; nil = silent
	Telemetry  *telemetry.Emitter // optional

	handlers map[string]Handler
}

// NewReloader returns a reloader that calls invalidate after reloads.
func NewReloader(invalidate func()) *Reloader {
	return &Reloader{Invalidate: invalidate, handlers: make(map[string]Handler)}
}

// Handle registers h for path.
func (r *Reloader) Handle(path string, h Handler) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: resolve %s: %w", path, err)
	}
	r.handlers[filepath.Clean(abs)] = h
	return nil
}

// Paths returns every path with a handler.
func (r *Reloader) Paths() []string {
	out := make([]string, 0, len(r.handlers))
	for p := range r.handlers {
		out = append(out, p)
	}
	return out
}

// Apply handles a single change. Removed files keep the previous state.
func (r *Reloader) Apply(ch Change) error {
	h, ok := r.handlers[ch.File]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoHandler, ch.File)
	}
	if ch.Removed {
		r.logf("%s removed; keeping previous contents", ch.File)
		return nil
	}
	if err := h(ch.File); err != nil {
		r.logf("reload %s failed; keeping previous contents: %v", ch.File, err)
		return err
	}
	if r.Invalidate != nil {
		r.Invalidate()
	}
	r.logf("reloaded %s", ch.File)
	if err := r.Telemetry.Emit(telemetry.Event{
		Kind: telemetry.KindCatalogReloaded,
		Data: map[string]string{"file": ch.File},
	}); err != nil {
		r.logf("warning: %v", err)
	}
	return nil
}

// Run applies changes until ctx is done or changes is closed. Reload
// failures are logged and do not stop the loop.
func (r *Reloader) Run(ctx context.Context, changes <-chan Change) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ch, ok := <-changes:
			if !ok {
				return nil
			}
			_ = r.Apply(ch)
		}
	}
}

func (r *Reloader) logf(format string, args ...any) {
	if r.Logger != nil {
		fmt.Fprintf(r.Logger, format+"\n", args...)
	}
}

// CatalogHandler reloads a catalog file into p.
func CatalogHandler(p *catalog.Provider) Handler {
	return func(path string) error {
		cat, err := catalog.Load(path)
		if err != nil {
			return err
		}
		p.Swap(cat)
		return nil
	}
}
