package layout

import (
	"sort"

	"github.com/papapumpkin/strata/internal/item"
)

// Pool is a named, ordered sequence of stacks captured for one partition
// pass. Extraction consumes it: claimed and omitted stacks are removed so no
// later rule or category can see them.
type Pool struct {
	name   string
	stacks []item.Stack
}

// NewPool copies stacks into a new pool.
func NewPool(name string, stacks []item.Stack) *Pool {
	cp := make([]item.Stack, len(stacks))
	copy(cp, stacks)
	return &Pool{name: name, stacks: cp}
}

// Name returns the pool name.
func (p *Pool) Name() string { return p.name }

// Len returns the number of stacks still in the pool.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.stacks)
}

// Stacks returns a copy of the remaining stacks.
func (p *Pool) Stacks() []item.Stack {
	out := make([]item.Stack, len(p.stacks))
	copy(out, p.stacks)
	return out
}

type verdict int

const (
	keep verdict = iota
	take
	drop
)

// drain scans the pool once, marking each slot claimed in a bitset, then
// rebuilds the pool from the unclaimed slots.
func (p *Pool) drain(judge func(item.Stack) verdict) (taken []item.Stack, dropped int) {
	if p.Len() == 0 {
		return nil, 0
	}
	claimed := make([]bool, len(p.stacks))
	for i, s := range p.stacks {
		switch judge(s) {
		case take:
			taken = append(taken, s.Copy())
			claimed[i] = true
		case drop:
			dropped++
			claimed[i] = true
		}
	}
	if len(taken) == 0 && dropped == 0 {
		return nil, 0
	}
	rest := make([]item.Stack, 0, len(p.stacks)-len(taken)-dropped)
	for i, s := range p.stacks {
		if !claimed[i] {
			rest = append(rest, s)
		}
	}
	p.stacks = rest
	return taken, dropped
}

// Pools maps pool names to pools.
type Pools map[string]*Pool

// NewPools builds pools from raw captured sequences.
func NewPools(raw map[string][]item.Stack) Pools {
	out := make(Pools, len(raw))
	for name, stacks := range raw {
		out[name] = NewPool(name, stacks)
	}
	return out
}

// Total returns the number of stacks across all pools.
func (ps Pools) Total() int {
	n := 0
	for _, p := range ps {
		n += p.Len()
	}
	return n
}

// Sizes returns the remaining size of every pool.
func (ps Pools) Sizes() map[string]int {
	out := make(map[string]int, len(ps))
	for name, p := range ps {
		out[name] = p.Len()
	}
	return out
}

// Names returns the pool names in sorted order.
func (ps Pools) Names() []string {
	names := make([]string, 0, len(ps))
	for name := range ps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
