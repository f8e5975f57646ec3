package layout

import (
	"sort"

	"github.com/papapumpkin/strata/internal/classify"
	"github.com/papapumpkin/strata/internal/item"
)

// HierarchySpec configures hierarchical arrangement for one material family.
type HierarchySpec struct {
	Base    func(path string) string
	Shape   func(path string) string
	Variant func(path string) string

	// ShapeOrder lists shapes in canonical order. Shapes not listed follow
	// in lexicographic order.
	ShapeOrder []string
	// VariantOrder lists variants in canonical order within a shape. Empty
	// means the unvarianted form first. Unlisted variants follow in
	// lexicographic order.
	VariantOrder []string
	// BaseOrder lists bases in canonical order within a (shape, variant)
	// cell. Unlisted bases follow in lexicographic order.
	BaseOrder []string
}

// bucket tree: shape -> variant -> base -> stacks
type baseBuckets map[string][]keyedStack
type variantBuckets map[string]baseBuckets

type keyedStack struct {
	path  string
	stack item.Stack
}

// Hierarchical returns an arranger that emits stacks grouped by shape, then
// variant, then base. Stacks without a detected base are appended last,
// sorted by path.
func Hierarchical(spec HierarchySpec) Arranger {
	variantOrder := spec.VariantOrder
	if len(variantOrder) == 0 {
		variantOrder = []string{""}
	}

	return func(stacks []item.Stack) []item.Stack {
		byShape := make(map[string]variantBuckets)
		var noBase []keyedStack

		for _, s := range stacks {
			ks := keyedStack{path: item.Path(s), stack: s}
			base := spec.Base(ks.path)
			if base == "" {
				noBase = append(noBase, ks)
				continue
			}
			shape := spec.Shape(ks.path)
			variant := spec.Variant(ks.path)

			vb, ok := byShape[shape]
			if !ok {
				vb = make(variantBuckets)
				byShape[shape] = vb
			}
			bb, ok := vb[variant]
			if !ok {
				bb = make(baseBuckets)
				vb[variant] = bb
			}
			bb[base] = append(bb[base], ks)
		}

		out := make([]item.Stack, 0, len(stacks))
		for _, shape := range emitOrder(spec.ShapeOrder, byShape) {
			vb := byShape[shape]
			for _, variant := range emitOrder(variantOrder, vb) {
				bb := vb[variant]
				for _, base := range emitOrder(spec.BaseOrder, bb) {
					out = appendSorted(out, bb[base])
				}
			}
		}
		return appendSorted(out, noBase)
	}
}

// emitOrder returns the keys of m: first those in canonical order, then the
// rest lexicographically.
func emitOrder[V any](canonical []string, m map[string]V) []string {
	out := make([]string, 0, len(m))
	seen := make(map[string]struct{}, len(m))
	for _, k := range canonical {
		if _, ok := m[k]; !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	var rest []string
	for k := range m {
		if _, ok := seen[k]; !ok {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func appendSorted(out []item.Stack, bucket []keyedStack) []item.Stack {
	sort.SliceStable(bucket, func(i, j int) bool {
		return bucket[i].path < bucket[j].path
	})
	for _, ks := range bucket {
		out = append(out, ks.stack)
	}
	return out
}

// Flat returns an arranger that sorts by family key, shape key,
// variant-stripped path and full path, clustering a family's shapes and
// variants together.
func Flat(c *classify.Classifier) Arranger {
	type flatKey struct {
		family, shape, stripped, path string
	}
	return func(stacks []item.Stack) []item.Stack {
		keys := make([]flatKey, len(stacks))
		idx := make([]int, len(stacks))
		for i, s := range stacks {
			p := item.Path(s)
			keys[i] = flatKey{
				family:   c.FamilyKey(p),
				shape:    c.ShapeKey(p),
				stripped: c.StripVariants(p),
				path:     p,
			}
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			ka, kb := keys[idx[a]], keys[idx[b]]
			if ka.family != kb.family {
				return ka.family < kb.family
			}
			if ka.shape != kb.shape {
				return ka.shape < kb.shape
			}
			if ka.stripped != kb.stripped {
				return ka.stripped < kb.stripped
			}
			return ka.path < kb.path
		})
		out := make([]item.Stack, len(stacks))
		for i, j := range idx {
			out[i] = stacks[j]
		}
		return out
	}
}

// WoodHierarchy arranges wood structures by shape, variant chain and species.
func WoodHierarchy(c *classify.Classifier) Arranger {
	v := c.Vocabulary()
	return Hierarchical(HierarchySpec{
		Base:         c.WoodBase,
		Shape:        c.WoodShape,
		Variant:      c.VariantChain,
		ShapeOrder:   v.Wood.ShapeOrder,
		VariantOrder: v.Wood.VariantOrder,
		BaseOrder:    v.Wood.Bases,
	})
}

// StoneHierarchy arranges stone blocks by shape, variant chain and kind.
func StoneHierarchy(c *classify.Classifier) Arranger {
	v := c.Vocabulary()
	return Hierarchical(HierarchySpec{
		Base:         c.StoneBase,
		Shape:        c.StoneShape,
		Variant:      c.VariantChain,
		ShapeOrder:   v.Stone.ShapeOrder,
		VariantOrder: v.Stone.VariantOrder,
		BaseOrder:    v.Stone.Bases,
	})
}

// CopperHierarchy arranges copper blocks by shape, weathering state and base.
func CopperHierarchy(c *classify.Classifier) Arranger {
	v := c.Vocabulary()
	return Hierarchical(HierarchySpec{
		Base:         c.CopperBase,
		Shape:        c.CopperShape,
		Variant:      c.CopperVariant,
		ShapeOrder:   v.Copper.ShapeOrder,
		VariantOrder: v.Copper.VariantOrder,
		BaseOrder:    v.Copper.Bases,
	})
}
