// Package layout partitions captured source pools into curated categories.
// Categories are declared once with ordered extraction rules and an
// arrangement function; Extract drains matching stacks out of shared pools so
// every stack lands in at most one category.
package layout

import (
	"github.com/papapumpkin/strata/internal/item"
)

// Predicate decides whether a rule claims a stack.
type Predicate func(item.Stack) bool

// Arranger orders a category's claimed stacks. It must return a new slice
// and leave its input untouched.
type Arranger func([]item.Stack) []item.Stack

// Rule claims stacks matching Predicate out of the pool named Pool. A nil
// Predicate claims every non-omitted stack.
type Rule struct {
	ID        string
	Pool      string
	Predicate Predicate
}

func (r Rule) matches(s item.Stack) bool {
	return r.Predicate == nil || r.Predicate(s)
}

// Category is an immutable category definition.
type Category struct {
	id      item.ID
	icon    func() item.Stack
	rules   []Rule
	arrange Arranger
}

// ID returns the category's stable identifier.
func (c *Category) ID() item.ID { return c.id }

// DisplayKey returns "<namespace>.<path>", the display-name lookup key.
func (c *Category) DisplayKey() string {
	return c.id.Namespace + "." + c.id.Path
}

// TranslationKey returns the item-group translation key for the category.
func (c *Category) TranslationKey() string {
	return "itemGroup." + c.DisplayKey()
}

// Icon returns a fresh copy of the category icon.
func (c *Category) Icon() item.Stack {
	if c.icon == nil {
		return item.Empty
	}
	return c.icon().Copy()
}

// Rules returns the extraction rules in evaluation order.
func (c *Category) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Arrange orders stacks with the category's arranger. Categories without an
// arranger keep extraction order.
func (c *Category) Arrange(stacks []item.Stack) []item.Stack {
	in := make([]item.Stack, len(stacks))
	copy(in, stacks)
	if c.arrange == nil {
		return in
	}
	return c.arrange(in)
}

// Builder declares a Category.
type Builder struct {
	id      item.ID
	icon    func() item.Stack
	rules   []Rule
	arrange Arranger
}

// NewCategory starts a category declaration.
func NewCategory(id item.ID, icon func() item.Stack) *Builder {
	return &Builder{id: id, icon: icon}
}

// Source appends an extraction rule. Rules run in the order they are added.
func (b *Builder) Source(ruleID, pool string, pred Predicate) *Builder {
	b.rules = append(b.rules, Rule{ID: ruleID, Pool: pool, Predicate: pred})
	return b
}

// Arranger sets the arrangement function.
func (b *Builder) Arranger(a Arranger) *Builder {
	b.arrange = a
	return b
}

// Build returns the immutable category.
func (b *Builder) Build() *Category {
	rules := make([]Rule, len(b.rules))
	copy(rules, b.rules)
	return &Category{id: b.id, icon: b.icon, rules: rules, arrange: b.arrange}
}
