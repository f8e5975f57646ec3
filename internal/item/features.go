package item

import (
	"sort"
	"strings"
)

// FeatureSet is an immutable set of enabled feature flags. Values are
// comparable with ==, which is the only operation the snapshot cache needs.
type FeatureSet struct {
	key string // sorted, de-duplicated flags joined by ","
}

// NewFeatureSet builds a set from flags. Order and duplicates are ignored and
// blank flags are dropped.
func NewFeatureSet(flags ...string) FeatureSet {
	seen := make(map[string]struct{}, len(flags))
	var out []string
	for _, f := range flags {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Strings(out)
	return FeatureSet{key: strings.Join(out, ",")}
}

// Flags returns the flags in sorted order.
func (fs FeatureSet) Flags() []string {
	if fs.key == "" {
		return nil
	}
	return strings.Split(fs.key, ",")
}

// Has reports whether flag is enabled.
func (fs FeatureSet) Has(flag string) bool {
	flag = strings.ToLower(flag)
	for _, f := range fs.Flags() {
		if f == flag {
			return true
		}
	}
	return false
}

// Enables reports whether every feature required by it is enabled.
func (fs FeatureSet) Enables(it *Item) bool {
	if it == nil {
		return false
	}
	for _, f := range it.Features {
		if !fs.Has(f) {
			return false
		}
	}
	return true
}

// String renders the set as "{a,b}".
func (fs FeatureSet) String() string {
	return "{" + fs.key + "}"
}
