// Package vocab holds the keyword tables and priority lists that drive item
// classification. Every table lives in one versioned Vocabulary so callers
// (and tests) can swap in a smaller fixture without touching the engine.
package vocab

// CurrentVersion is the only vocabulary schema version this build reads.
const CurrentVersion = 1

// Vocabulary is the complete classification configuration.
type Vocabulary struct {
	Version int `toml:"version"`

	Omission Omission `toml:"omission"`

	// VariantPrefixes are cosmetic leading segments (e.g. "waxed",
	// "polished") stripped to find an item's family.
	VariantPrefixes []string `toml:"variant_prefixes"`

	// ShapeSuffixes is the extended structural/decorative suffix vocabulary
	// in detection priority order: the first suffix that matches wins.
	ShapeSuffixes []string `toml:"shape_suffixes"`

	Wood   Family `toml:"wood"`
	Stone  Family `toml:"stone"`
	Copper Family `toml:"copper"`

	Keywords Keywords `toml:"keywords"`
}

// Omission lists the keyword tables that exclude an item from every
// category. CarveOut overrides all of them.
type Omission struct {
	Food     []string `toml:"food"`
	Combat   []string `toml:"combat"`
	Potion   []string `toml:"potion"`
	Book     []string `toml:"book"`
	Pattern  []string `toml:"pattern"`
	Harness  []string `toml:"harness"`
	Material []string `toml:"material"`

	SpawnEggMarker string `toml:"spawn_egg_marker"`
	CarveOut       string `toml:"carve_out"`
}

// Family configures hierarchical arrangement for one material family.
type Family struct {
	// Bases is the canonical base order and the detection vocabulary.
	Bases []string `toml:"bases"`
	// ShapeOrder is the canonical display order of shapes. "" is the
	// shapeless form.
	ShapeOrder []string `toml:"shape_order"`
	// ShapeSuffixes is the detection priority list. Empty means the
	// vocabulary-wide ShapeSuffixes.
	ShapeSuffixes []string `toml:"shape_suffixes"`
	// VariantOrder is the canonical variant order. Empty means the
	// unvarianted form first, then lexicographic.
	VariantOrder []string `toml:"variant_order"`
	// StagePrefixes are the weathering stages collapsed by copper variant
	// detection.
	StagePrefixes []string `toml:"stage_prefixes"`
}

// Keywords are the substring tables behind the category predicates.
type Keywords struct {
	Stone       []string `toml:"stone"`
	Nether      []string `toml:"nether"`
	End         []string `toml:"end"`
	Sand        []string `toml:"sand"`
	Workstation []string `toml:"workstation"`
	Utility     []string `toml:"utility"`
}

// Tables returns the omission tables in evaluation order, keyed by name.
func (o Omission) Tables() []NamedTable {
	return []NamedTable{
		{Name: "food", Keywords: o.Food},
		{Name: "spawn_egg", Keywords: nonEmpty(o.SpawnEggMarker)},
		{Name: "combat", Keywords: o.Combat},
		{Name: "potion", Keywords: o.Potion},
		{Name: "book", Keywords: o.Book},
		{Name: "pattern", Keywords: o.Pattern},
		{Name: "harness", Keywords: o.Harness},
		{Name: "material", Keywords: o.Material},
	}
}

// NamedTable is a keyword table with a stable name for diagnostics.
type NamedTable struct {
	Name     string
	Keywords []string
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

// Clone returns a deep copy of v.
func (v *Vocabulary) Clone() *Vocabulary {
	out := *v
	out.Omission = Omission{
		Food:           clone(v.Omission.Food),
		Combat:         clone(v.Omission.Combat),
		Potion:         clone(v.Omission.Potion),
		Book:           clone(v.Omission.Book),
		Pattern:        clone(v.Omission.Pattern),
		Harness:        clone(v.Omission.Harness),
		Material:       clone(v.Omission.Material),
		SpawnEggMarker: v.Omission.SpawnEggMarker,
		CarveOut:       v.Omission.CarveOut,
	}
	out.VariantPrefixes = clone(v.VariantPrefixes)
	out.ShapeSuffixes = clone(v.ShapeSuffixes)
	out.Wood = v.Wood.clone()
	out.Stone = v.Stone.clone()
	out.Copper = v.Copper.clone()
	out.Keywords = Keywords{
		Stone:       clone(v.Keywords.Stone),
		Nether:      clone(v.Keywords.Nether),
		End:         clone(v.Keywords.End),
		Sand:        clone(v.Keywords.Sand),
		Workstation: clone(v.Keywords.Workstation),
		Utility:     clone(v.Keywords.Utility),
	}
	return &out
}

func (f Family) clone() Family {
	return Family{
		Bases:         clone(f.Bases),
		ShapeOrder:    clone(f.ShapeOrder),
		ShapeSuffixes: clone(f.ShapeSuffixes),
		VariantOrder:  clone(f.VariantOrder),
		StagePrefixes: clone(f.StagePrefixes),
	}
}

// DetectionSuffixes returns the family's shape detection list, falling back
// to global when the family does not define its own.
func (f Family) DetectionSuffixes(global []string) []string {
	if len(f.ShapeSuffixes) > 0 {
		return f.ShapeSuffixes
	}
	return global
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
