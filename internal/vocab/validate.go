package vocab

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks v for structural problems. It returns nil or an error
// joining one *ValidationError per problem.
func (v *Vocabulary) Validate() error {
	var errs []error
	add := func(field, entry string, err error) {
		errs = append(errs, &ValidationError{Field: field, Entry: entry, Err: err})
	}

	if v.Version != CurrentVersion {
		add("version", fmt.Sprint(v.Version), ErrUnsupportedVersion)
	}

	required := []struct {
		field string
		list  []string
	}{
		{"variant_prefixes", v.VariantPrefixes},
		{"shape_suffixes", v.ShapeSuffixes},
		{"wood.bases", v.Wood.Bases},
		{"wood.shape_order", v.Wood.ShapeOrder},
		{"stone.bases", v.Stone.Bases},
		{"stone.shape_order", v.Stone.ShapeOrder},
		{"copper.bases", v.Copper.Bases},
		{"copper.shape_order", v.Copper.ShapeOrder},
	}
	for _, r := range required {
		if len(r.list) == 0 {
			add(r.field, "", ErrEmptyTable)
		}
	}

	// Shape and variant orders may name the shapeless/unvarianted form "".
	lists := []struct {
		field      string
		list       []string
		allowBlank bool
	}{
		{"omission.food", v.Omission.Food, false},
		{"omission.combat", v.Omission.Combat, false},
		{"omission.potion", v.Omission.Potion, false},
		{"omission.book", v.Omission.Book, false},
		{"omission.pattern", v.Omission.Pattern, false},
		{"omission.harness", v.Omission.Harness, false},
		{"omission.material", v.Omission.Material, false},
		{"variant_prefixes", v.VariantPrefixes, false},
		{"shape_suffixes", v.ShapeSuffixes, false},
		{"wood.bases", v.Wood.Bases, false},
		{"wood.shape_order", v.Wood.ShapeOrder, true},
		{"wood.shape_suffixes", v.Wood.ShapeSuffixes, false},
		{"wood.variant_order", v.Wood.VariantOrder, true},
		{"stone.bases", v.Stone.Bases, false},
		{"stone.shape_order", v.Stone.ShapeOrder, true},
		{"stone.shape_suffixes", v.Stone.ShapeSuffixes, false},
		{"stone.variant_order", v.Stone.VariantOrder, true},
		{"copper.bases", v.Copper.Bases, false},
		{"copper.shape_order", v.Copper.ShapeOrder, true},
		{"copper.shape_suffixes", v.Copper.ShapeSuffixes, false},
		{"copper.variant_order", v.Copper.VariantOrder, true},
		{"copper.stage_prefixes", v.Copper.StagePrefixes, false},
		{"keywords.stone", v.Keywords.Stone, false},
		{"keywords.nether", v.Keywords.Nether, false},
		{"keywords.end", v.Keywords.End, false},
		{"keywords.sand", v.Keywords.Sand, false},
		{"keywords.workstation", v.Keywords.Workstation, false},
		{"keywords.utility", v.Keywords.Utility, false},
	}
	for _, l := range lists {
		seen := make(map[string]struct{}, len(l.list))
		for _, entry := range l.list {
			if entry == "" && !l.allowBlank {
				add(l.field, "", ErrBlankEntry)
				continue
			}
			if _, dup := seen[entry]; dup {
				add(l.field, entry, ErrDuplicateEntry)
				continue
			}
			seen[entry] = struct{}{}
		}
	}

	suffixLists := []struct {
		field string
		list  []string
	}{
		{"shape_suffixes", v.ShapeSuffixes},
		{"wood.shape_suffixes", v.Wood.ShapeSuffixes},
		{"stone.shape_suffixes", v.Stone.ShapeSuffixes},
		{"copper.shape_suffixes", v.Copper.ShapeSuffixes},
	}
	for _, s := range suffixLists {
		for _, shadowed := range shadowedSuffixes(s.list) {
			add(s.field, shadowed, ErrShadowedSuffix)
		}
	}

	return errors.Join(errs...)
}

// shadowedSuffixes returns entries that appear after a shorter entry they
// end with as a whole segment. Such entries can never be selected by
// first-match detection.
func shadowedSuffixes(list []string) []string {
	var out []string
	for i, longer := range list {
		for _, shorter := range list[:i] {
			if shorter != "" && strings.HasSuffix(longer, "_"+shorter) {
				out = append(out, longer)
				break
			}
		}
	}
	return out
}
