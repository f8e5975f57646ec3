// Package classify derives bucket keys from item identifier paths and decides
// which items are omitted from every category. All functions are total: an
// empty or unrecognised path yields empty keys rather than an error.
package classify

import (
	"strings"

	"github.com/papapumpkin/strata/internal/vocab"
)

// Classifier applies one vocabulary. It is immutable and safe for
// concurrent use.
type Classifier struct {
	v        *vocab.Vocabulary
	variants map[string]struct{}
	stages   map[string]struct{}
}

// New builds a classifier over a private copy of v.
func New(v *vocab.Vocabulary) *Classifier {
	v = v.Clone()
	return &Classifier{
		v:        v,
		variants: set(v.VariantPrefixes),
		stages:   set(v.Copper.StagePrefixes),
	}
}

// Vocabulary returns a copy of the classifier's vocabulary.
func (c *Classifier) Vocabulary() *vocab.Vocabulary {
	return c.v.Clone()
}

// Keys is the full set of derived keys for one path.
type Keys struct {
	Path     string // normalised path
	Variant  string // leading variant prefix chain, e.g. "waxed_oxidized"
	Stripped string // path with the variant chain removed
	Shape    string // structural suffix of the stripped path
	Family   string // stripped path without its shape suffix
}

// Keys derives every generic key for path.
func (c *Classifier) Keys(path string) Keys {
	path = strings.ToLower(path)
	return Keys{
		Path:     path,
		Variant:  c.VariantChain(path),
		Stripped: c.StripVariants(path),
		Shape:    c.ShapeKey(path),
		Family:   c.FamilyKey(path),
	}
}

// VariantChain returns the leading underscore-delimited segments of path
// that belong to the variant prefix vocabulary, joined with "_". It stops at
// the first segment outside the vocabulary.
func (c *Classifier) VariantChain(path string) string {
	parts := strings.Split(path, "_")
	n := c.prefixCount(parts)
	return strings.Join(parts[:n], "_")
}

// StripVariants returns path without its variant prefix chain.
func (c *Classifier) StripVariants(path string) string {
	if path == "" {
		return ""
	}
	parts := strings.Split(path, "_")
	n := c.prefixCount(parts)
	if n == 0 {
		return path
	}
	return strings.Join(parts[n:], "_")
}

func (c *Classifier) prefixCount(parts []string) int {
	n := 0
	for n < len(parts) {
		if _, ok := c.variants[parts[n]]; !ok {
			break
		}
		n++
	}
	return n
}

// ShapeKey returns the first suffix of the vocabulary-wide shape list (in
// priority order) that the variant-stripped path ends with as a whole
// segment, or "".
func (c *Classifier) ShapeKey(path string) string {
	return firstSuffix(c.StripVariants(path), c.v.ShapeSuffixes)
}

// FamilyKey returns the variant-stripped path minus its shape suffix. It is
// the primary sort key of flat arrangement.
func (c *Classifier) FamilyKey(path string) string {
	stripped := c.StripVariants(path)
	if shape := firstSuffix(stripped, c.v.ShapeSuffixes); shape != "" {
		return strings.TrimSuffix(stripped, "_"+shape)
	}
	return stripped
}

// WoodBase returns the longest wood species found as a segment of path.
func (c *Classifier) WoodBase(path string) string {
	return LongestBase(c.v.Wood.Bases, path)
}

// WoodShape returns the first wood shape (in detection priority) that path
// ends with as a whole segment.
func (c *Classifier) WoodShape(path string) string {
	return firstSuffix(path, c.v.Wood.DetectionSuffixes(c.v.ShapeSuffixes))
}

// StoneBase returns the longest stone kind found in the path, its variant
// stripped form, or its family form.
func (c *Classifier) StoneBase(path string) string {
	return LongestBase(c.v.Stone.Bases, c.baseCandidates(path)...)
}

// StoneShape returns the stone shape of path.
func (c *Classifier) StoneShape(path string) string {
	return firstSuffix(c.StripVariants(path), c.v.Stone.DetectionSuffixes(c.v.ShapeSuffixes))
}

// CopperBase returns the longest copper base found in the path, its variant
// stripped form, or its family form.
func (c *Classifier) CopperBase(path string) string {
	return LongestBase(c.v.Copper.Bases, c.baseCandidates(path)...)
}

// CopperShape returns the copper shape of path.
func (c *Classifier) CopperShape(path string) string {
	return firstSuffix(c.StripVariants(path), c.v.Copper.DetectionSuffixes(c.v.ShapeSuffixes))
}

// CopperVariant collapses the variant prefix chain to its waxing and
// weathering state: "waxed_<stage>", "waxed", "<stage>" or "". Other
// prefixes such as "cut" belong to the base and are ignored.
func (c *Classifier) CopperVariant(path string) string {
	parts := strings.Split(path, "_")
	n := c.prefixCount(parts)

	waxed := false
	stage := ""
	for _, p := range parts[:n] {
		if p == "waxed" {
			waxed = true
			continue
		}
		if _, ok := c.stages[p]; ok && stage == "" {
			stage = p
		}
	}

	switch {
	case waxed && stage != "":
		return "waxed_" + stage
	case waxed:
		return "waxed"
	default:
		return stage
	}
}

func (c *Classifier) baseCandidates(path string) []string {
	if path == "" {
		return nil
	}
	return []string{path, c.StripVariants(path), c.FamilyKey(path)}
}

// LongestBase returns the longest entry of bases that matches any candidate
// as a whole segment. Ties keep the earlier base. It returns "" when nothing
// matches.
func LongestBase(bases []string, candidates ...string) string {
	best := ""
	for _, cand := range candidates {
		if cand == "" {
			continue
		}
		for _, base := range bases {
			if len(base) > len(best) && MatchesSegment(cand, base) {
				best = base
			}
		}
	}
	return best
}

// MatchesSegment reports whether seg appears in path as a whole run of
// underscore-delimited segments.
func MatchesSegment(path, seg string) bool {
	if seg == "" || path == "" {
		return false
	}
	if path == seg {
		return true
	}
	if strings.HasPrefix(path, seg+"_") || strings.HasSuffix(path, "_"+seg) {
		return true
	}
	return strings.Contains(path, "_"+seg+"_")
}

// ContainsAny reports whether haystack contains any needle as a substring.
func ContainsAny(haystack string, needles ...string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func firstSuffix(path string, suffixes []string) string {
	if path == "" {
		return ""
	}
	for _, s := range suffixes {
		if s != "" && strings.HasSuffix(path, "_"+s) {
			return s
		}
	}
	return ""
}

func set(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, s := range list {
		m[s] = struct{}{}
	}
	return m
}
