package snapshot

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/papapumpkin/strata/internal/item"
	"github.com/papapumpkin/strata/internal/layout"
	"github.com/papapumpkin/strata/internal/telemetry"
)

// Sentinel errors for cache construction.
var (
	// ErrNoProvider indicates Options without a catalog provider.
	ErrNoProvider = errors.New("snapshot: no provider")
	// ErrNoRules indicates Options without a rule set.
	ErrNoRules = errors.New("snapshot: no rule set")
)

// Options configures a Cache.
type Options struct {
	Provider  Provider
	Rules     *layout.RuleSet
	Omit      func(item.Stack) bool // optional; nil = drop only empty stacks
	Logger    io.Writer             // optional; nil = silent
	Telemetry *telemetry.Emitter    // optional; nil = no events
	Clock     func() time.Time      // optional; nil = time.Now
}

// Stats counts cache activity since construction.
type Stats struct {
	Builds        uint64
	Hits          uint64
	Invalidations uint64
}

// Cache is a single-slot snapshot cache. It is safe for concurrent use:
// one mutex covers check, rebuild and store, and the current snapshot is
// published by atomic pointer swap only once fully built.
type Cache struct {
	opts Options

	mu      sync.Mutex
	current atomic.Pointer[Snapshot]

	builds        atomic.Uint64
	hits          atomic.Uint64
	invalidations atomic.Uint64
}

// New returns an empty cache.
func New(opts Options) (*Cache, error) {
	if opts.Provider == nil {
		return nil, ErrNoProvider
	}
	if opts.Rules == nil {
		return nil, ErrNoRules
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Cache{opts: opts}, nil
}

// Snapshot returns the snapshot for dc, rebuilding when none exists or the
// stored one was built for a different key.
func (c *Cache) Snapshot(dc DisplayContext) *Snapshot {
	key := dc.Key()

	c.mu.Lock()
	defer c.mu.Unlock()

	if s := c.current.Load(); s != nil && s.key == key {
		c.hits.Add(1)
		return s
	}
	s := c.build(dc)
	c.current.Store(s)
	return s
}

// StacksFor returns the final stacks of category under dc.
func (c *Cache) StacksFor(category item.ID, dc DisplayContext) []item.Stack {
	return c.Snapshot(dc).Stacks(category)
}

// Current returns the published snapshot without locking, or nil when the
// cache is empty.
func (c *Cache) Current() *Snapshot {
	return c.current.Load()
}

// Invalidate drops the current snapshot so the next query rebuilds.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	old := c.current.Swap(nil)
	c.mu.Unlock()

	c.invalidations.Add(1)
	if old == nil {
		return
	}
	c.logf("snapshot %s invalidated", old.ID())
	c.emit(telemetry.Event{Kind: telemetry.KindSnapshotInvalidated, SnapshotID: old.ID()})
}

// Stats returns activity counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Builds:        c.builds.Load(),
		Hits:          c.hits.Load(),
		Invalidations: c.invalidations.Load(),
	}
}

// build captures fresh pools and partitions them. Caller holds c.mu.
func (c *Cache) build(dc DisplayContext) *Snapshot {
	start := c.opts.Clock()
	pools := c.opts.Provider.Capture(dc)
	if pools == nil {
		pools = layout.Pools{}
	}
	part := layout.Extract(pools, c.opts.Rules, c.opts.Omit)

	s := &Snapshot{
		id:      uuid.New(),
		key:     dc.Key(),
		builtAt: start,
		part:    part,
	}
	c.builds.Add(1)

	elapsed := c.opts.Clock().Sub(start)
	c.logf("%s (%s)", s, elapsed.Round(time.Microsecond))
	c.emit(telemetry.Event{
		Kind:       telemetry.KindSnapshotBuilt,
		SnapshotID: s.ID(),
		Data: map[string]any{
			"key":        s.key.String(),
			"initial":    part.Initial(),
			"claimed":    part.Claimed(),
			"omitted":    part.Omitted,
			"remaining":  part.RemainingTotal(),
			"categories": s.Sizes(),
		},
	})
	return s
}

func (c *Cache) logf(format string, args ...any) {
	if c.opts.Logger != nil {
		fmt.Fprintf(c.opts.Logger, format+"\n", args...)
	}
}

func (c *Cache) emit(evt telemetry.Event) {
	if err := c.opts.Telemetry.Emit(evt); err != nil {
		c.logf("warning: %v", err)
	}
}
