package layout

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/strata/internal/item"
)

// vanillaPools returns a small capture resembling the vanilla source groups.
// oak_log and stone appear in two pools as the same item.
func vanillaPools(f *fixture) map[string][]item.Stack {
	return map[string][]item.Stack{
		PoolBuildingBlocks: f.blocks(
			"oak_log", "oak_planks", "oak_stairs", "spruce_log", "stone", "granite", "polished_granite_slab",
			"copper_block", "cut_copper_stairs", "waxed_copper_block", "sandstone", "nether_bricks", "purpur_block",
		),
		PoolNaturalBlocks: append(
			f.blocks("oak_log", "stone", "grass_block", "dirt", "oak_sapling", "netherrack", "sand", "chorus_plant"),
			f.items("apple", "bread")...,
		),
		PoolFunctionalBlocks: f.blocks("crafting_table", "furnace", "copper_bulb", "scaffolding", "ladder"),
		PoolRedstoneBlocks:   f.blocks("copper_door", "redstone_torch"),
		PoolColoredBlocks:    f.blocks("white_terracotta", "white_wool"),
		PoolToolsUtilities:   append(f.items("oak_boat", "iron_sword"), item.Empty),
	}
}

func defaultRuleSet(t *testing.T) *RuleSet {
	t.Helper()
	rs, err := NewRuleSet(DefaultCategories(defaultClassifier(), nil, "blockfilter"), nil)
	if err != nil {
		t.Fatalf("NewRuleSet: %v", err)
	}
	return rs
}

func TestExtractCategoriesAreDisjoint(t *testing.T) {
	t.Parallel()
	f := newFixture()
	rs := defaultRuleSet(t)
	c := defaultClassifier()

	part := Extract(NewPools(vanillaPools(f)), rs, c.Omit)

	owner := make(map[*item.Item]item.ID)
	for _, id := range part.Order() {
		for _, s := range part.Stacks(id) {
			if prev, ok := owner[s.Item]; ok && prev != id {
				t.Errorf("%s claimed by both %s and %s", s.ID(), prev, id)
			}
			owner[s.Item] = id
			if c.Omit(s) {
				t.Errorf("omitted stack %s placed in %s", s.ID(), id)
			}
		}
	}
}

func TestExtractDrainAccounting(t *testing.T) {
	t.Parallel()
	f := newFixture()
	rs := defaultRuleSet(t)

	raw := vanillaPools(f)
	initial := 0
	for _, stacks := range raw {
		initial += len(stacks)
	}

	part := Extract(NewPools(raw), rs, defaultClassifier().Omit)

	if part.Initial() != initial {
		t.Errorf("Initial() = %d, want %d", part.Initial(), initial)
	}
	if got := part.Claimed() + part.Omitted + part.RemainingTotal(); got != initial {
		t.Errorf("claimed %d + omitted %d + remaining %d = %d, want %d",
			part.Claimed(), part.Omitted, part.RemainingTotal(), got, initial)
	}
	// apple, bread, iron_sword and the empty stack.
	if part.Omitted != 4 {
		t.Errorf("Omitted = %d, want 4", part.Omitted)
	}
}

func TestExtractDefaultPlacement(t *testing.T) {
	t.Parallel()
	f := newFixture()
	rs := defaultRuleSet(t)

	part := Extract(NewPools(vanillaPools(f)), rs, defaultClassifier().Omit)

	tests := []struct {
		category string
		want     []string
	}{
		{CategoryWood, []string{"oak_log", "oak_log", "spruce_log", "oak_planks", "oak_stairs", "oak_sapling"}},
		{CategoryStone, []string{"stone", "stone", "granite", "polished_granite_slab", "nether_bricks"}},
		{CategoryCopper, []string{"copper_block", "waxed_copper_block", "cut_copper_stairs", "copper_door", "copper_bulb"}},
		{CategoryNether, []string{"netherrack"}},
		{CategoryEnd, []string{"chorus_plant", "purpur_block"}},
		{CategorySand, []string{"sand", "sandstone", "white_terracotta"}},
		{CategoryWorkstations, []string{"crafting_table", "furnace"}},
		{CategoryUtility, []string{"ladder", "scaffolding"}},
		{CategoryOverworldNature, []string{"dirt", "grass_block"}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			t.Parallel()
			got := paths(part.Stacks(testID(tt.category)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("placement mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractEarlierCategoryWins(t *testing.T) {
	t.Parallel()
	f := newFixture()
	oak := func(s item.Stack) bool { return strings.HasPrefix(item.Path(s), "oak_") }

	rs, err := NewRuleSet([]*Category{
		NewCategory(testID("oak"), nil).Source("p", "pool", oak).Build(),
		NewCategory(testID("all"), nil).Source("p", "pool", nil).Build(),
	}, nil)
	if err != nil {
		t.Fatalf("NewRuleSet: %v", err)
	}

	pools := NewPools(map[string][]item.Stack{"pool": f.blocks("birch_log", "oak_log", "stone", "oak_slab")})
	part := Extract(pools, rs, nil)

	if diff := cmp.Diff([]string{"oak_log", "oak_slab"}, paths(part.Stacks(testID("oak")))); diff != "" {
		t.Errorf("oak category (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"birch_log", "stone"}, paths(part.Stacks(testID("all")))); diff != "" {
		t.Errorf("catch-all category (-want +got):\n%s", diff)
	}
	if part.RemainingTotal() != 0 {
		t.Errorf("RemainingTotal() = %d, want 0", part.RemainingTotal())
	}
}

func TestExtractRuleOrderWithinCategory(t *testing.T) {
	t.Parallel()
	f := newFixture()
	logs := func(s item.Stack) bool { return strings.HasSuffix(item.Path(s), "_log") }

	rs, err := NewRuleSet([]*Category{
		NewCategory(testID("c"), nil).
			Source("logs", "a", logs).
			Source("rest", "a", nil).
			Source("other", "b", nil).
			Build(),
	}, nil)
	if err != nil {
		t.Fatalf("NewRuleSet: %v", err)
	}

	pools := NewPools(map[string][]item.Stack{
		"a": f.blocks("stone", "oak_log", "dirt", "birch_log"),
		"b": f.blocks("sand"),
	})
	part := Extract(pools, rs, nil)

	want := []string{"oak_log", "birch_log", "stone", "dirt", "sand"}
	if diff := cmp.Diff(want, paths(part.Stacks(testID("c")))); diff != "" {
		t.Errorf("extraction order (-want +got):\n%s", diff)
	}
}

func TestExtractMissingPoolIsEmpty(t *testing.T) {
	t.Parallel()
	f := newFixture()

	rs, err := NewRuleSet([]*Category{
		NewCategory(testID("c"), nil).
			Source("gone", "missing", nil).
			Source("here", "present", nil).
			Build(),
	}, nil)
	if err != nil {
		t.Fatalf("NewRuleSet: %v", err)
	}

	part := Extract(NewPools(map[string][]item.Stack{"present": f.blocks("stone")}), rs, nil)
	if diff := cmp.Diff([]string{"stone"}, paths(part.Stacks(testID("c")))); diff != "" {
		t.Errorf("stacks (-want +got):\n%s", diff)
	}
}

func TestExtractDropsOmittedEvenForCatchAll(t *testing.T) {
	t.Parallel()
	f := newFixture()
	c := defaultClassifier()

	rs, err := NewRuleSet([]*Category{
		NewCategory(testID("all"), nil).Source("p", "pool", nil).Build(),
	}, nil)
	if err != nil {
		t.Fatalf("NewRuleSet: %v", err)
	}

	in := append(f.items("bread", "diamond_sword", "copper_ingot"), item.Empty)
	in = append(in, f.blocks("stone")...)
	part := Extract(NewPools(map[string][]item.Stack{"pool": in}), rs, c.Omit)

	// copper_ingot survives through the carve-out.
	if diff := cmp.Diff([]string{"copper_ingot", "stone"}, paths(part.Stacks(testID("all")))); diff != "" {
		t.Errorf("stacks (-want +got):\n%s", diff)
	}
	if part.Omitted != 3 {
		t.Errorf("Omitted = %d, want 3", part.Omitted)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	t.Parallel()
	f := newFixture()
	rs := defaultRuleSet(t)
	omit := defaultClassifier().Omit
	raw := vanillaPools(f)

	first := Extract(NewPools(raw), rs, omit)
	second := Extract(NewPools(raw), rs, omit)

	if diff := cmp.Diff(first.Order(), second.Order()); diff != "" {
		t.Fatalf("order differs between passes (-first +second):\n%s", diff)
	}
	for _, id := range first.Order() {
		a, b := first.Stacks(id), second.Stacks(id)
		if len(a) != len(b) {
			t.Fatalf("%s: %d stacks then %d", id, len(a), len(b))
		}
		for i := range a {
			if a[i].Item != b[i].Item {
				t.Errorf("%s[%d]: %s then %s", id, i, a[i].ID(), b[i].ID())
			}
		}
	}
}

func TestExtractDoesNotTouchRawCapture(t *testing.T) {
	t.Parallel()
	f := newFixture()
	raw := vanillaPools(f)
	before := paths(raw[PoolBuildingBlocks])

	Extract(NewPools(raw), defaultRuleSet(t), defaultClassifier().Omit)

	if diff := cmp.Diff(before, paths(raw[PoolBuildingBlocks])); diff != "" {
		t.Errorf("raw capture changed (-before +after):\n%s", diff)
	}
}

func TestPartitionStacksAreCopies(t *testing.T) {
	t.Parallel()
	f := newFixture()
	rs, err := NewRuleSet([]*Category{
		NewCategory(testID("all"), nil).Source("p", "pool", nil).Build(),
	}, nil)
	if err != nil {
		t.Fatalf("NewRuleSet: %v", err)
	}
	part := Extract(NewPools(map[string][]item.Stack{"pool": f.blocks("stone")}), rs, nil)

	got := part.Stacks(testID("all"))
	got[0] = item.Empty
	if part.Stacks(testID("all"))[0].IsEmpty() {
		t.Error("mutating returned stacks changed the partition")
	}
	if part.Stacks(testID("unknown")) != nil {
		t.Error("unknown category should yield nil")
	}
}
