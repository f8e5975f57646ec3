// Package biome lists representative blocks for each biome family.
package biome

import "github.com/papapumpkin/strata/internal/item"

// Sample pairs a biome with one of its representative items.
type Sample struct {
	Biome string
	Item  item.ID
}

// Icon is the icon of the biome library.
var Icon = item.MustParseID("minecraft:compass")

var samples = []Sample{
	{"plains", item.MustParseID("grass_block")},
	{"plains", item.MustParseID("oak_log")},
	{"plains", item.MustParseID("birch_log")},
	{"plains", item.MustParseID("sunflower")},
	{"desert", item.MustParseID("sand")},
	{"desert", item.MustParseID("cactus")},
	{"desert", item.MustParseID("red_sand")},
	{"snowy", item.MustParseID("snow_block")},
	{"snowy", item.MustParseID("powder_snow_bucket")},
	{"snowy", item.MustParseID("ice")},
	{"swamp", item.MustParseID("mangrove_log")},
	{"swamp", item.MustParseID("mangrove_propagule")},
	{"swamp", item.MustParseID("mud")},
	{"cherry_grove", item.MustParseID("cherry_log")},
	{"cherry_grove", item.MustParseID("pink_petals")},
	{"jungle", item.MustParseID("bamboo_block")},
	{"jungle", item.MustParseID("cocoa_beans")},
	{"jungle", item.MustParseID("jungle_leaves")},
	{"nether", item.MustParseID("crimson_nylium")},
	{"nether", item.MustParseID("warped_nylium")},
	{"nether", item.MustParseID("netherrack")},
	{"the_end", item.MustParseID("end_stone")},
	{"the_end", item.MustParseID("purpur_block")},
	{"the_end", item.MustParseID("shulker_box")},
	{"mushroom_fields", item.MustParseID("mycelium")},
	{"mushroom_fields", item.MustParseID("red_mushroom_block")},
	{"mushroom_fields", item.MustParseID("brown_mushroom_block")},
}

// Samples returns the fixed sample table in display order.
func Samples() []Sample {
	out := make([]Sample, len(samples))
	copy(out, samples)
	return out
}

// Biomes returns the distinct biome names in display order.
func Biomes() []string {
	var out []string
	for i, s := range samples {
		if i == 0 || samples[i-1].Biome != s.Biome {
			out = append(out, s.Biome)
		}
	}
	return out
}

// Entries resolves the sample table through lookup. Samples lookup cannot
// resolve are skipped.
func Entries(lookup item.Lookup) []item.Stack {
	var out []item.Stack
	for _, s := range samples {
		if st := item.StackOf(lookup, s.Item); !st.IsEmpty() {
			out = append(out, st)
		}
	}
	return out
}

// For returns the resolved samples of one biome.
func For(biome string, lookup item.Lookup) []item.Stack {
	var out []item.Stack
	for _, s := range samples {
		if s.Biome != biome {
			continue
		}
		if st := item.StackOf(lookup, s.Item); !st.IsEmpty() {
			out = append(out, st)
		}
	}
	return out
}

// IconStack resolves Icon through lookup.
func IconStack(lookup item.Lookup) item.Stack {
	return item.StackOf(lookup, Icon)
}
