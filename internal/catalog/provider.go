package catalog

import (
	"sync"

	"github.com/papapumpkin/strata/internal/item"
	"github.com/papapumpkin/strata/internal/layout"
	"github.com/papapumpkin/strata/internal/snapshot"
)

// Capture builds fresh pools for dc, one per sourced group keyed by the
// group identifier. Items the feature set does not enable and items omit
// rejects are left out. omit may be nil.
func (c *Catalog) Capture(dc snapshot.DisplayContext, omit func(item.Stack) bool) layout.Pools {
	raw := make(map[string][]item.Stack)
	for _, g := range c.groups {
		if !Sourced(g, dc.Permissions) {
			continue
		}
		stacks := make([]item.Stack, 0, len(g.Items))
		for _, it := range g.Items {
			if !dc.Features.Enables(it) {
				continue
			}
			s := item.NewStack(it)
			if omit != nil && omit(s) {
				continue
			}
			stacks = append(stacks, s)
		}
		raw[g.ID.String()] = stacks
	}
	return layout.NewPools(raw)
}

// Provider serves captures from a swappable catalog. It implements both
// snapshot.Provider and item.Lookup and is safe for concurrent use.
type Provider struct {
	mu   sync.RWMutex
	cat  *Catalog
	omit func(item.Stack) bool
}

// NewProvider wraps cat. omit pre-filters captured stacks and may be nil.
func NewProvider(cat *Catalog, omit func(item.Stack) bool) *Provider {
	return &Provider{cat: cat, omit: omit}
}

// SetOmit replaces the capture-time omission filter.
func (p *Provider) SetOmit(omit func(item.Stack) bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.omit = omit
}

// Catalog returns the current catalog.
func (p *Provider) Catalog() *Catalog {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cat
}

// Swap replaces the catalog and returns the previous one.
func (p *Provider) Swap(cat *Catalog) *Catalog {
	p.mu.Lock()
	defer p.mu.Unlock()
	old := p.cat
	p.cat = cat
	return old
}

// Capture implements snapshot.Provider.
func (p *Provider) Capture(dc snapshot.DisplayContext) layout.Pools {
	p.mu.RLock()
	cat, omit := p.cat, p.omit
	p.mu.RUnlock()
	if cat == nil {
		return layout.Pools{}
	}
	return cat.Capture(dc, omit)
}

// Lookup implements item.Lookup against the current catalog.
func (p *Provider) Lookup(id item.ID) (*item.Item, bool) {
	cat := p.Catalog()
	if cat == nil {
		return nil, false
	}
	return cat.Lookup(id)
}
