package groups_test

import (
	"testing"

	"github.com/papapumpkin/strata/internal/catalog"
	"github.com/papapumpkin/strata/internal/groups"
	"github.com/papapumpkin/strata/internal/item"
	"github.com/papapumpkin/strata/internal/layout"
	"github.com/papapumpkin/strata/internal/snapshot"
)

func bootstrapDefault(t *testing.T) (*groups.Registry, *catalog.Provider) {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	prov := catalog.NewProvider(cat, nil)
	reg, err := groups.Bootstrap(groups.EngineState{Provider: prov, Lookup: prov})
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	prov.SetOmit(reg.Classifier().Omit)
	return reg, prov
}

func TestDefaultCatalogPartition(t *testing.T) {
	t.Parallel()
	reg, _ := bootstrapDefault(t)
	dc := snapshot.DisplayContext{Features: item.NewFeatureSet("vanilla")}

	owner := make(map[*item.Item]string)
	for _, c := range reg.Categories() {
		entries := reg.Entries(c.ID(), dc)
		if len(entries) == 0 {
			t.Errorf("%s: no entries", c.ID())
		}
		if c.Icon().IsEmpty() {
			t.Errorf("%s: icon did not resolve", c.ID())
		}
		for _, s := range entries {
			if prev, ok := owner[s.Item]; ok {
				t.Errorf("%s in both %s and %s", s.ID(), prev, c.ID())
			}
			owner[s.Item] = c.ID().Path
			if reg.Classifier().Omit(s) {
				t.Errorf("%s: omitted %s displayed", c.ID(), s.ID())
			}
		}
	}

	placements := map[string]string{
		"oak_log":                          layout.CategoryWood,
		"stripped_dark_oak_wood":           layout.CategoryWood,
		"polished_granite_slab":            layout.CategoryStone,
		"waxed_oxidized_cut_copper_stairs": layout.CategoryCopper,
		"purpur_block":                     layout.CategoryEnd,
		"crafting_table":                   layout.CategoryWorkstations,
		"grass_block":                      layout.CategoryOverworldNature,
	}
	byPath := make(map[string]string, len(owner))
	for it, cat := range owner {
		byPath[it.ID.Path] = cat
	}
	for path, want := range placements {
		if got, ok := byPath[path]; !ok {
			t.Errorf("%s not placed in any category", path)
		} else if got != want {
			t.Errorf("%s placed in %s, want %s", path, got, want)
		}
	}
}

func TestDefaultCatalogFeatureGating(t *testing.T) {
	t.Parallel()
	reg, _ := bootstrapDefault(t)
	wood := item.ID{Namespace: groups.DefaultNamespace, Path: layout.CategoryWood}

	hasPaleOak := func(dc snapshot.DisplayContext) bool {
		for _, s := range reg.Entries(wood, dc) {
			if s.ID().Path == "pale_oak_planks" {
				return true
			}
		}
		return false
	}

	if hasPaleOak(snapshot.DisplayContext{Features: item.NewFeatureSet("vanilla")}) {
		t.Error("pale_oak_planks visible without winter_drop")
	}
	if !hasPaleOak(snapshot.DisplayContext{Features: item.NewFeatureSet("vanilla", "winter_drop")}) {
		t.Error("pale_oak_planks hidden with winter_drop enabled")
	}
}

func TestExplain(t *testing.T) {
	t.Parallel()
	reg, prov := bootstrapDefault(t)
	dc := snapshot.DisplayContext{Features: item.NewFeatureSet("vanilla"), Lookup: prov}

	t.Run("claimed copper", func(t *testing.T) {
		t.Parallel()
		ex := reg.Explain(item.MustParseID("waxed_oxidized_cut_copper_stairs"), dc)
		if !ex.Known || ex.Omitted {
			t.Fatalf("Known=%v Omitted=%v, want known and kept", ex.Known, ex.Omitted)
		}
		if ex.Category.Path != layout.CategoryCopper || ex.Position < 0 {
			t.Errorf("Category=%s Position=%d, want %s", ex.Category, ex.Position, layout.CategoryCopper)
		}
		if ex.Copper.Variant != "waxed_oxidized" || ex.Copper.Shape != "stairs" {
			t.Errorf("Copper = %+v", ex.Copper)
		}
		got := reg.StacksFor(ex.Category, dc)[ex.Position].ID()
		if got != ex.ID {
			t.Errorf("stack at Position = %s, want %s", got, ex.ID)
		}
	})

	t.Run("omitted", func(t *testing.T) {
		t.Parallel()
		ex := reg.Explain(item.MustParseID("iron_sword"), dc)
		if !ex.Omitted || ex.OmitBy == "" {
			t.Errorf("Omitted=%v OmitBy=%q, want omitted with a table", ex.Omitted, ex.OmitBy)
		}
		if !ex.Category.IsZero() || ex.Position != -1 {
			t.Errorf("omitted item placed in %s at %d", ex.Category, ex.Position)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		ex := reg.Explain(item.MustParseID("example:nothing"), dc)
		if ex.Known {
			t.Error("Known = true for an unregistered item")
		}
		if !ex.Category.IsZero() {
			t.Errorf("unregistered item placed in %s", ex.Category)
		}
	})
}
