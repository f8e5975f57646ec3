package vocab

// Default returns a fresh copy of the built-in vocabulary.
func Default() *Vocabulary {
	return builtin.Clone()
}

var builtin = &Vocabulary{
	Version: CurrentVersion,
	Omission: Omission{
		Food: []string{
			"apple", "bread", "carrot", "potato", "beetroot", "melon", "pumpkin", "cake", "pie", "cookie", "berries",
			"sweet_berries", "glow_berries", "chorus_fruit", "golden_apple", "honey", "meat", "pork", "beef", "chicken",
			"mutton", "rabbit", "cod", "salmon", "tropical_fish", "pufferfish", "stew", "soup", "suspicious_stew",
			"steak", "rotten_flesh", "spider_eye", "saturation", "baked_potato", "dried_kelp", "mushroom_stew",
			"beetroot_soup", "beetroot_seed", "carrot_on_a_stick", "warped_fungus_on_a_stick", "egg",
		},
		Combat: []string{
			"sword", "bow", "crossbow", "trident", "shield", "helmet", "chestplate", "leggings", "boots",
			"horse_armor", "mace", "arrow", "totem",
		},
		Potion:         []string{"potion", "bottle", "suspicious_stew", "tipped_arrow", "lingering"},
		Book:           []string{"book", "scroll", "atlas"},
		Pattern:        []string{"pattern", "trim", "template", "sherd", "fragment", "banner"},
		Harness:        []string{"saddle", "lead", "name_tag", "rein", "harness"},
		Material: []string{
			"ingot", "nugget", "scrap", "rod", "dust", "pearl", "slime_ball", "ghast_tear", "magma_cream",
			"blaze_powder", "blaze_rod", "rabbit_foot", "phantom_membrane", "prismarine_shard", "prismarine_crystals",
			"heart_of_the_sea", "nether_star", "echo_shard", "amethyst_shard",
		},
		SpawnEggMarker: "spawn_egg",
		CarveOut:       "copper",
	},
	VariantPrefixes: []string{
		"waxed", "exposed", "weathered", "oxidized", "stripped", "mossy", "cracked", "infested",
		"chiseled", "smooth", "polished", "cut",
	},
	ShapeSuffixes: []string{
		"pressure_plate", "fence_gate", "hanging_sign", "wall_sign", "trapdoor", "door",
		"stairs", "slab", "button", "fence", "gate", "wall", "pillar", "planks",
		"mosaic", "log", "wood", "stem", "hyphae", "chest_boat", "boat",
		"chest_raft", "raft", "leaves", "sapling", "propagule", "roots", "fungus",
		"panel", "tile", "tiles", "bricks", "brick", "pane", "glass", "bars",
		"chain", "torch", "lantern", "campfire", "beacon", "grate", "bulb",
	},
	Wood: Family{
		Bases: []string{
			"oak", "spruce", "birch", "jungle", "acacia", "dark_oak", "mangrove", "crimson", "warped", "bamboo",
			"cherry", "pale_oak",
		},
		ShapeOrder: []string{
			"log", "wood", "stem", "hyphae",
			"planks", "mosaic", "stairs", "slab",
			"fence", "fence_gate", "door", "trapdoor", "pressure_plate", "button",
			"sign", "wall_sign", "hanging_sign",
			"boat", "chest_boat", "raft", "chest_raft",
			"leaves", "sapling", "propagule", "roots", "fungus",
		},
		ShapeSuffixes: []string{
			"chest_boat", "chest_raft", "wall_sign", "hanging_sign", "fence_gate", "pressure_plate",
			"log", "wood", "stem", "hyphae", "planks", "mosaic", "stairs", "slab",
			"fence", "door", "trapdoor", "button", "sign", "boat", "raft",
			"leaves", "sapling", "propagule", "roots", "fungus",
		},
	},
	Stone: Family{
		Bases: []string{
			"stone", "smooth_stone", "stone_brick", "stone_bricks", "cobblestone", "granite", "polished_granite",
			"diorite", "polished_diorite", "andesite", "polished_andesite", "tuff", "polished_tuff", "calcite",
			"dripstone_block", "basalt", "smooth_basalt", "blackstone", "polished_blackstone",
			"polished_blackstone_brick", "polished_blackstone_bricks", "blackstone_brick", "blackstone_bricks",
			"deepslate", "cobbled_deepslate", "polished_deepslate", "deepslate_brick", "deepslate_bricks",
			"deepslate_tile", "deepslate_tiles", "mud_brick", "mud_bricks", "packed_mud", "quartz", "smooth_quartz",
			"quartz_brick", "quartz_bricks", "cut_quartz", "end_stone", "end_stone_bricks", "purpur", "prismarine",
			"prismarine_bricks", "dark_prismarine", "resin_bricks", "tuff_brick", "tuff_bricks", "brick", "bricks",
			"nether_brick", "nether_bricks", "red_nether_brick", "red_nether_bricks",
		},
		ShapeOrder: []string{"", "bricks", "tiles", "pillar", "stairs", "slab", "wall", "pressure_plate", "button"},
	},
	Copper: Family{
		Bases:         []string{"copper_block", "cut_copper", "chiseled_copper", "copper", "raw_copper_block"},
		ShapeOrder:    []string{"", "stairs", "slab", "door", "trapdoor", "bars", "chain", "grate", "bulb"},
		VariantOrder:  []string{"", "exposed", "weathered", "oxidized", "waxed", "waxed_exposed", "waxed_weathered", "waxed_oxidized"},
		StagePrefixes: []string{"exposed", "weathered", "oxidized"},
	},
	Keywords: Keywords{
		Stone: []string{
			"stone", "brick", "deepslate", "granite", "andesite", "diorite", "blackstone", "basalt",
			"calcite", "tuff", "slate", "marble", "tile", "pillar", "cobblestone", "mud_brick", "resin", "prismarine",
			"quartz",
		},
		Nether: []string{
			"nether", "crimson", "warped", "basalt", "blackstone", "quartz", "soul", "magma", "shroomlight",
			"ancient_debris", "nylium", "fungus", "roots", "wart",
		},
		End:  []string{"end", "purpur", "chorus", "shulker", "dragon", "end_rod"},
		Sand: []string{"sand", "sandstone", "terracotta", "clay", "mud", "gravel"},
		Workstation: []string{
			"table", "furnace", "anvil", "stonecutter", "grindstone", "cartography", "smithing",
			"loom", "campfire", "smoker", "blast_furnace", "composter", "hopper", "dropper", "dispenser", "target",
			"chest", "barrel", "shulker_box", "jukebox", "note_block", "lectern", "bell", "armor_stand",
			"brewing_stand", "cauldron",
		},
		Utility: []string{
			"scaffolding", "ladder", "rail", "path", "door_mat", "bell", "waystone", "sign",
			"hanging_sign", "crate", "beacon",
		},
	},
}
