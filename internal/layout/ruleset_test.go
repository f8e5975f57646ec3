package layout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/strata/internal/item"
)

func simpleCategory(path string, rules ...string) *Category {
	b := NewCategory(testID(path), nil)
	for _, r := range rules {
		b.Source(r, "pool", nil)
	}
	return b.Build()
}

func TestNewRuleSetErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		declared []*Category
		order    []string
		wantErr  error
	}{
		{
			name:    "no categories",
			wantErr: ErrNoCategories,
		},
		{
			name:     "duplicate category",
			declared: []*Category{simpleCategory("a"), simpleCategory("a")},
			wantErr:  ErrDuplicateCategory,
		},
		{
			name:     "duplicate rule",
			declared: []*Category{simpleCategory("a", "x", "y", "x")},
			wantErr:  ErrDuplicateRule,
		},
		{
			name:     "unknown category in order",
			declared: []*Category{simpleCategory("a")},
			order:    []string{"a", "b"},
			wantErr:  ErrUnknownCategory,
		},
		{
			name:     "category listed twice",
			declared: []*Category{simpleCategory("a")},
			order:    []string{"a", "blockfilter:a"},
			wantErr:  ErrDuplicateCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewRuleSet(tt.declared, tt.order)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewRuleSet() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewRuleSetOrder(t *testing.T) {
	t.Parallel()
	declared := []*Category{simpleCategory("a", "r1"), simpleCategory("b", "r1", "r2"), simpleCategory("c")}

	t.Run("declaration order", func(t *testing.T) {
		t.Parallel()
		rs, err := NewRuleSet(declared, nil)
		if err != nil {
			t.Fatalf("NewRuleSet: %v", err)
		}
		want := []string{"a/r1", "b/r1", "b/r2"}
		if diff := cmp.Diff(want, rs.RuleOrder()); diff != "" {
			t.Errorf("RuleOrder() (-want +got):\n%s", diff)
		}
	})

	t.Run("explicit order disables unlisted", func(t *testing.T) {
		t.Parallel()
		rs, err := NewRuleSet(declared, []string{"blockfilter:c", "a"})
		if err != nil {
			t.Fatalf("NewRuleSet: %v", err)
		}
		var got []string
		for _, c := range rs.Categories() {
			got = append(got, c.ID().Path)
		}
		if diff := cmp.Diff([]string{"c", "a"}, got); diff != "" {
			t.Errorf("Categories() (-want +got):\n%s", diff)
		}
		if _, ok := rs.Category(testID("b")); ok {
			t.Error("unlisted category b should be disabled")
		}
		if _, ok := rs.Category(testID("c")); !ok {
			t.Error("listed category c should be enabled")
		}
	})
}

func TestDefaultCategoriesRuleOrder(t *testing.T) {
	t.Parallel()
	rs := defaultRuleSet(t)

	want := []string{
		"structure_wood/building", "structure_wood/natural",
		"structure_stone/building", "structure_stone/natural",
		"structure_copper/building", "structure_copper/functional", "structure_copper/redstone",
		"nether_blocks/building", "nether_blocks/natural",
		"end_blocks/building", "end_blocks/natural",
		"sand_and_clay/building", "sand_and_clay/natural", "sand_and_clay/colored",
		"workstations/functional",
		"utility_blocks/functional", "utility_blocks/tools",
		"overworld_nature/natural",
	}
	if diff := cmp.Diff(want, rs.RuleOrder()); diff != "" {
		t.Errorf("RuleOrder() (-want +got):\n%s", diff)
	}
}

func TestCategoryKeysAndIcon(t *testing.T) {
	t.Parallel()
	reg := item.NewRegistry()
	planks := &item.Item{ID: item.MustParseID("oak_planks"), Block: true}
	if err := reg.Register(planks); err != nil {
		t.Fatalf("Register: %v", err)
	}

	cats := DefaultCategories(defaultClassifier(), reg, "blockfilter")
	wood := cats[0]

	if got := wood.DisplayKey(); got != "blockfilter.structure_wood" {
		t.Errorf("DisplayKey() = %q", got)
	}
	if got := wood.TranslationKey(); got != "itemGroup.blockfilter.structure_wood" {
		t.Errorf("TranslationKey() = %q", got)
	}
	icon := wood.Icon()
	if icon.Item != planks || icon.Count != 1 {
		t.Errorf("Icon() = %+v, want one oak_planks", icon)
	}
	// stone is not registered, so its icon is empty rather than a panic.
	if !cats[1].Icon().IsEmpty() {
		t.Error("unresolved icon should be empty")
	}
}

func TestCategoryArrangeCopiesInput(t *testing.T) {
	t.Parallel()
	f := newFixture()
	reverse := func(in []item.Stack) []item.Stack {
		for i, j := 0, len(in)-1; i < j; i, j = i+1, j-1 {
			in[i], in[j] = in[j], in[i]
		}
		return in
	}
	c := NewCategory(testID("c"), nil).Arranger(reverse).Build()

	in := f.blocks("a", "b", "c")
	got := c.Arrange(in)
	if diff := cmp.Diff([]string{"c", "b", "a"}, paths(got)); diff != "" {
		t.Errorf("Arrange() (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, paths(in)); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}
