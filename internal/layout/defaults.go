package layout

import (
	"github.com/papapumpkin/strata/internal/classify"
	"github.com/papapumpkin/strata/internal/item"
)

// Source pool names, as captured from the vanilla creative groups.
const (
	PoolBuildingBlocks   = "minecraft:building_blocks"
	PoolColoredBlocks    = "minecraft:colored_blocks"
	PoolNaturalBlocks    = "minecraft:natural_blocks"
	PoolFunctionalBlocks = "minecraft:functional_blocks"
	PoolRedstoneBlocks   = "minecraft:redstone_blocks"
	PoolToolsUtilities   = "minecraft:tools_and_utilities"
)

// Category paths declared by DefaultCategories, in declaration order.
const (
	CategoryWood            = "structure_wood"
	CategoryStone           = "structure_stone"
	CategoryCopper          = "structure_copper"
	CategoryNether          = "nether_blocks"
	CategoryEnd             = "end_blocks"
	CategorySand            = "sand_and_clay"
	CategoryWorkstations    = "workstations"
	CategoryUtility         = "utility_blocks"
	CategoryOverworldNature = "overworld_nature"
)

// DefaultCategories declares the built-in categories. The three structure
// categories use hierarchical arrangement; the rest sort flat. lookup
// resolves icon items and may be nil.
func DefaultCategories(c *classify.Classifier, lookup item.Lookup, namespace string) []*Category {
	pred := NewPredicates(c)
	flat := Flat(c)

	id := func(path string) item.ID {
		return item.ID{Namespace: namespace, Path: path}
	}
	icon := func(path string) func() item.Stack {
		iconID := item.ID{Namespace: item.DefaultNamespace, Path: path}
		return func() item.Stack { return item.StackOf(lookup, iconID) }
	}

	return []*Category{
		NewCategory(id(CategoryWood), icon("oak_planks")).
			Source("building", PoolBuildingBlocks, pred.WoodStructure).
			Source("natural", PoolNaturalBlocks, pred.WoodStructure).
			Arranger(WoodHierarchy(c)).
			Build(),
		NewCategory(id(CategoryStone), icon("stone")).
			Source("building", PoolBuildingBlocks, pred.StoneBlock).
			Source("natural", PoolNaturalBlocks, pred.StoneBlock).
			Arranger(StoneHierarchy(c)).
			Build(),
		NewCategory(id(CategoryCopper), icon("copper_block")).
			Source("building", PoolBuildingBlocks, pred.CopperBlock).
			Source("functional", PoolFunctionalBlocks, pred.CopperBlock).
			Source("redstone", PoolRedstoneBlocks, pred.CopperBlock).
			Arranger(CopperHierarchy(c)).
			Build(),
		NewCategory(id(CategoryNether), icon("netherrack")).
			Source("building", PoolBuildingBlocks, pred.NetherBlock).
			Source("natural", PoolNaturalBlocks, pred.NetherBlock).
			Arranger(flat).
			Build(),
		NewCategory(id(CategoryEnd), icon("end_stone")).
			Source("building", PoolBuildingBlocks, pred.EndBlock).
			Source("natural", PoolNaturalBlocks, pred.EndBlock).
			Arranger(flat).
			Build(),
		NewCategory(id(CategorySand), icon("sand")).
			Source("building", PoolBuildingBlocks, pred.SandBlock).
			Source("natural", PoolNaturalBlocks, pred.SandBlock).
			Source("colored", PoolColoredBlocks, pred.SandBlock).
			Arranger(flat).
			Build(),
		NewCategory(id(CategoryWorkstations), icon("crafting_table")).
			Source("functional", PoolFunctionalBlocks, pred.Workstation).
			Arranger(flat).
			Build(),
		NewCategory(id(CategoryUtility), icon("scaffolding")).
			Source("functional", PoolFunctionalBlocks, pred.Utility).
			Source("tools", PoolToolsUtilities, pred.Utility).
			Arranger(flat).
			Build(),
		NewCategory(id(CategoryOverworldNature), icon("grass_block")).
			Source("natural", PoolNaturalBlocks, pred.OverworldNature).
			Arranger(flat).
			Build(),
	}
}
