package layout

import (
	"fmt"

	"github.com/papapumpkin/strata/internal/item"
)

// RuleSet is the ordered, immutable list of enabled categories. Category
// order is extraction priority: an earlier category claims shared stacks
// before a later one sees them.
type RuleSet struct {
	categories []*Category
	byID       map[item.ID]*Category
}

// NewRuleSet orders declared categories by an explicit priority list. Each
// order entry is a category path ("structure_wood") or full identifier
// ("blockfilter:structure_wood"). An empty order keeps declaration order;
// otherwise categories missing from the list are disabled.
func NewRuleSet(declared []*Category, order []string) (*RuleSet, error) {
	if len(declared) == 0 {
		return nil, ErrNoCategories
	}

	byID := make(map[item.ID]*Category, len(declared))
	byName := make(map[string]*Category, len(declared)*2)
	for _, c := range declared {
		if _, dup := byID[c.id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, c.id)
		}
		if err := checkRules(c); err != nil {
			return nil, err
		}
		byID[c.id] = c
		byName[c.id.String()] = c
		if _, taken := byName[c.id.Path]; !taken {
			byName[c.id.Path] = c
		}
	}

	if len(order) == 0 {
		cats := make([]*Category, len(declared))
		copy(cats, declared)
		return &RuleSet{categories: cats, byID: byID}, nil
	}

	var cats []*Category
	enabled := make(map[item.ID]*Category, len(order))
	for _, name := range order {
		c, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, name)
		}
		if _, dup := enabled[c.id]; dup {
			return nil, fmt.Errorf("%w: %s listed twice", ErrDuplicateCategory, name)
		}
		enabled[c.id] = c
		cats = append(cats, c)
	}
	return &RuleSet{categories: cats, byID: enabled}, nil
}

func checkRules(c *Category) error {
	seen := make(map[string]struct{}, len(c.rules))
	for _, r := range c.rules {
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w: %s/%s", ErrDuplicateRule, c.id.Path, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}

// Categories returns the enabled categories in priority order.
func (rs *RuleSet) Categories() []*Category {
	out := make([]*Category, len(rs.categories))
	copy(out, rs.categories)
	return out
}

// Category returns the enabled category with the given identifier.
func (rs *RuleSet) Category(id item.ID) (*Category, bool) {
	c, ok := rs.byID[id]
	return c, ok
}

// RuleOrder returns "category/rule" identifiers in evaluation order.
func (rs *RuleSet) RuleOrder() []string {
	var out []string
	for _, c := range rs.categories {
		for _, r := range c.rules {
			out = append(out, c.id.Path+"/"+r.ID)
		}
	}
	return out
}
