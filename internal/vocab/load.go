package vocab

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Load reads a TOML vocabulary file. Tables missing from the file keep their
// built-in defaults. The result is not validated; call Validate.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: reading %s: %w", path, err)
	}
	v, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("vocab: %s: %w", path, err)
	}
	return v, nil
}

// Parse decodes a TOML vocabulary document over the built-in defaults.
func Parse(data []byte) (*Vocabulary, error) {
	var file Vocabulary
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing vocabulary TOML: %w", err)
	}
	return merge(Default(), &file), nil
}

// merge overlays every table set in file onto base.
func merge(base, file *Vocabulary) *Vocabulary {
	if file.Version != 0 {
		base.Version = file.Version
	}

	o := &base.Omission
	pick(&o.Food, file.Omission.Food)
	pick(&o.Combat, file.Omission.Combat)
	pick(&o.Potion, file.Omission.Potion)
	pick(&o.Book, file.Omission.Book)
	pick(&o.Pattern, file.Omission.Pattern)
	pick(&o.Harness, file.Omission.Harness)
	pick(&o.Material, file.Omission.Material)
	if file.Omission.SpawnEggMarker != "" {
		o.SpawnEggMarker = file.Omission.SpawnEggMarker
	}
	if file.Omission.CarveOut != "" {
		o.CarveOut = file.Omission.CarveOut
	}

	pick(&base.VariantPrefixes, file.VariantPrefixes)
	pick(&base.ShapeSuffixes, file.ShapeSuffixes)
	mergeFamily(&base.Wood, file.Wood)
	mergeFamily(&base.Stone, file.Stone)
	mergeFamily(&base.Copper, file.Copper)

	k := &base.Keywords
	pick(&k.Stone, file.Keywords.Stone)
	pick(&k.Nether, file.Keywords.Nether)
	pick(&k.End, file.Keywords.End)
	pick(&k.Sand, file.Keywords.Sand)
	pick(&k.Workstation, file.Keywords.Workstation)
	pick(&k.Utility, file.Keywords.Utility)
	return base
}

func mergeFamily(dst *Family, src Family) {
	pick(&dst.Bases, src.Bases)
	pick(&dst.ShapeOrder, src.ShapeOrder)
	pick(&dst.ShapeSuffixes, src.ShapeSuffixes)
	pick(&dst.VariantOrder, src.VariantOrder)
	pick(&dst.StagePrefixes, src.StagePrefixes)
}

func pick(dst *[]string, src []string) {
	if src != nil {
		*dst = clone(src)
	}
}
