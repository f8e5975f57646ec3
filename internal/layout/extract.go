package layout

import (
	"github.com/papapumpkin/strata/internal/item"
)

// Partition is the result of one extraction pass.
type Partition struct {
	order   []item.ID
	stacks  map[item.ID][]item.Stack
	initial int

	// Omitted counts empty or omitted stacks dropped from pools.
	Omitted int
	// Remaining is the size of every pool after extraction.
	Remaining map[string]int
}

// Order returns category identifiers in priority order.
func (p *Partition) Order() []item.ID {
	out := make([]item.ID, len(p.order))
	copy(out, p.order)
	return out
}

// Stacks returns a copy of a category's arranged stacks, or nil when the
// category is unknown or produced nothing.
func (p *Partition) Stacks(id item.ID) []item.Stack {
	src := p.stacks[id]
	if len(src) == 0 {
		return nil
	}
	out := make([]item.Stack, len(src))
	copy(out, src)
	return out
}

// Len returns the number of stacks in a category.
func (p *Partition) Len(id item.ID) int {
	return len(p.stacks[id])
}

// Initial returns the combined pool size before extraction.
func (p *Partition) Initial() int { return p.initial }

// Claimed returns the number of stacks placed in any category.
func (p *Partition) Claimed() int {
	n := 0
	for _, s := range p.stacks {
		n += len(s)
	}
	return n
}

// RemainingTotal returns the number of stacks left in pools.
func (p *Partition) RemainingTotal() int {
	n := 0
	for _, r := range p.Remaining {
		n += r
	}
	return n
}

// Extract runs every category of rules, in priority order, against pools.
// Each rule scans its named pool once; stacks that are empty or omitted are
// dropped from the pool, stacks its predicate accepts are moved into the
// category. Missing pools are treated as empty. After all of a category's
// rules run, its collected stacks are arranged. pools is consumed.
func Extract(pools Pools, rules *RuleSet, omit func(item.Stack) bool) *Partition {
	part := &Partition{
		stacks:  make(map[item.ID][]item.Stack, len(rules.categories)),
		initial: pools.Total(),
	}

	for _, cat := range rules.categories {
		var collected []item.Stack
		for _, rule := range cat.rules {
			pool := pools[rule.Pool]
			if pool.Len() == 0 {
				continue
			}
			taken, dropped := pool.drain(func(s item.Stack) verdict {
				if s.IsEmpty() || (omit != nil && omit(s)) {
					return drop
				}
				if rule.matches(s) {
					return take
				}
				return keep
			})
			collected = append(collected, taken...)
			part.Omitted += dropped
		}

		part.order = append(part.order, cat.id)
		if arranged := cat.Arrange(collected); len(arranged) > 0 {
			part.stacks[cat.id] = arranged
		}
	}

	part.Remaining = pools.Sizes()
	return part
}
