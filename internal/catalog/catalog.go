// Package catalog supplies source pools from a declarative TOML catalog of
// items and creative groups. A Catalog is immutable once parsed; Provider
// wraps one behind a lock so it can be swapped on reload.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/strata/internal/item"
)

//go:embed default.toml
var defaultTOML []byte

// Sentinel errors for catalog parsing.
var (
	// ErrUnknownItem indicates a group references an undeclared item.
	ErrUnknownItem = errors.New("unknown item")
	// ErrDuplicateItem indicates an item declared twice.
	ErrDuplicateItem = errors.New("duplicate item")
	// ErrDuplicateGroup indicates a group declared twice.
	ErrDuplicateGroup = errors.New("duplicate group")
	// ErrMissingID indicates an item table with neither id nor ids.
	ErrMissingID = errors.New("missing id")
)

// Capture filtering applies to the minecraft namespace only.
const sourceNamespace = item.DefaultNamespace

var (
	// ignoredGroups never contribute pools.
	ignoredGroups = map[string]struct{}{
		"hotbar": {}, "search": {}, "inventory": {}, "op_blocks": {},
	}
	// excludedGroups hold content no category should draw from.
	excludedGroups = map[string]struct{}{
		"combat": {}, "spawn_eggs": {}, "food_and_drinks": {}, "ingredients": {},
	}
)

type fileItem struct {
	ID       string   `toml:"id"`
	IDs      []string `toml:"ids"`
	Block    bool     `toml:"block"`
	Features []string `toml:"features"`
}

type fileGroup struct {
	ID           string   `toml:"id"`
	OperatorOnly bool     `toml:"operator_only"`
	Items        []string `toml:"items"`
}

type file struct {
	Items  []fileItem  `toml:"item"`
	Groups []fileGroup `toml:"group"`
}

// Group is one creative group in display order.
type Group struct {
	ID           item.ID
	OperatorOnly bool
	Items        []*item.Item
}

// Catalog is a parsed item catalog.
type Catalog struct {
	reg    *item.Registry
	groups []Group
}

// Default parses the embedded vanilla sample catalog.
func Default() (*Catalog, error) {
	c, err := Parse(defaultTOML)
	if err != nil {
		return nil, fmt.Errorf("catalog: embedded default: %w", err)
	}
	return c, nil
}

// Load reads and parses the catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from TOML data.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	reg := item.NewRegistry()
	for i, fi := range f.Items {
		ids := fi.IDs
		if fi.ID != "" {
			ids = append([]string{fi.ID}, ids...)
		}
		if len(ids) == 0 {
			return nil, fmt.Errorf("item %d: %w", i, ErrMissingID)
		}
		for _, raw := range ids {
			id, err := item.ParseID(raw)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			it := &item.Item{ID: id, Block: fi.Block, Features: normaliseFeatures(fi.Features)}
			if err := reg.Register(it); err != nil {
				if errors.Is(err, item.ErrDuplicate) {
					return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, id)
				}
				return nil, fmt.Errorf("item %s: %w", id, err)
			}
		}
	}

	groups := make([]Group, 0, len(f.Groups))
	seen := make(map[item.ID]struct{}, len(f.Groups))
	for _, fg := range f.Groups {
		gid, err := item.ParseID(fg.ID)
		if err != nil {
			return nil, fmt.Errorf("group: %w", err)
		}
		if _, dup := seen[gid]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateGroup, gid)
		}
		seen[gid] = struct{}{}

		g := Group{ID: gid, OperatorOnly: fg.OperatorOnly, Items: make([]*item.Item, 0, len(fg.Items))}
		for _, raw := range fg.Items {
			id, err := item.ParseID(raw)
			if err != nil {
				return nil, fmt.Errorf("group %s: %w", gid, err)
			}
			it, ok := reg.Lookup(id)
			if !ok {
				return nil, fmt.Errorf("group %s: %w: %s", gid, ErrUnknownItem, id)
			}
			g.Items = append(g.Items, it)
		}
		groups = append(groups, g)
	}

	return &Catalog{reg: reg, groups: groups}, nil
}

func normaliseFeatures(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, f := range in {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Registry returns the catalog's item registry.
func (c *Catalog) Registry() *item.Registry { return c.reg }

// Lookup resolves an item by identifier.
func (c *Catalog) Lookup(id item.ID) (*item.Item, bool) { return c.reg.Lookup(id) }

// Groups returns the groups in file order.
func (c *Catalog) Groups() []Group {
	out := make([]Group, len(c.groups))
	copy(out, c.groups)
	return out
}

// Sourced reports whether a group contributes a pool for the given
// permission level.
func Sourced(g Group, permissions bool) bool {
	if g.ID.Namespace != sourceNamespace {
		return false
	}
	if _, ok := ignoredGroups[g.ID.Path]; ok {
		return false
	}
	if _, ok := excludedGroups[g.ID.Path]; ok {
		return false
	}
	return permissions || !g.OperatorOnly
}
