package groups

import (
	"github.com/papapumpkin/strata/internal/classify"
	"github.com/papapumpkin/strata/internal/item"
	"github.com/papapumpkin/strata/internal/snapshot"
)

// Explanation describes how the engine sees one item.
type Explanation struct {
	ID       item.ID
	Known    bool // the item resolves through the display context's lookup
	Keys     classify.Keys
	Omitted  bool
	OmitBy   string // omission table that matched, if any
	Wood     FamilyKeys
	Stone    FamilyKeys
	Copper   FamilyKeys
	Category item.ID // zero when no category claimed the item
	Position int     // index within the category, -1 when unclaimed
}

// FamilyKeys is the (base, shape, variant) triple for one family.
type FamilyKeys struct {
	Base    string
	Shape   string
	Variant string
}

// Explain classifies id and locates it in the snapshot for dc.
func (r *Registry) Explain(id item.ID, dc snapshot.DisplayContext) Explanation {
	c := r.classifier
	path := id.Path
	ex := Explanation{ID: id, Keys: c.Keys(path), Position: -1}

	if dc.Lookup != nil {
		_, ex.Known = dc.Lookup.Lookup(id)
	}
	ex.OmitBy, ex.Omitted = c.OmissionReason(path)
	ex.Wood = FamilyKeys{Base: c.WoodBase(path), Shape: c.WoodShape(path), Variant: c.VariantChain(path)}
	ex.Stone = FamilyKeys{Base: c.StoneBase(path), Shape: c.StoneShape(path), Variant: c.VariantChain(path)}
	ex.Copper = FamilyKeys{Base: c.CopperBase(path), Shape: c.CopperShape(path), Variant: c.CopperVariant(path)}

	part := r.cache.Snapshot(dc).Partition()
	for _, cat := range part.Order() {
		for i, s := range part.Stacks(cat) {
			if s.ID() == id {
				ex.Category, ex.Position = cat, i
				return ex
			}
		}
	}
	return ex
}
