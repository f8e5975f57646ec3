// Package groups wires the engine together and exposes the registered
// categories to consumers. Bootstrap is a pure constructor: every call
// returns an independent registry.
package groups

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/papapumpkin/strata/internal/classify"
	"github.com/papapumpkin/strata/internal/item"
	"github.com/papapumpkin/strata/internal/layout"
	"github.com/papapumpkin/strata/internal/snapshot"
	"github.com/papapumpkin/strata/internal/telemetry"
	"github.com/papapumpkin/strata/internal/vocab"
)

// DefaultNamespace is the namespace of registered category identifiers.
const DefaultNamespace = "blockfilter"

// ErrNoProvider indicates an EngineState without a catalog provider.
var ErrNoProvider = errors.New("groups: no catalog provider")

// EngineState carries everything Bootstrap needs.
type EngineState struct {
	Namespace  string             // optional; "" = DefaultNamespace
	Vocabulary *vocab.Vocabulary  // optional; nil = vocab.Default()
	Provider   snapshot.Provider  // required
	Lookup     item.Lookup        // optional; resolves category icons
	Order      []string           // optional; category priority list
	Logger     io.Writer          // optional; nil = silent
	Telemetry  *telemetry.Emitter // optional; nil = no events
}

// Registry is the set of registered categories plus the cache that backs
// their contents. It is safe for concurrent use.
type Registry struct {
	namespace  string
	classifier *classify.Classifier
	rules      *layout.RuleSet
	cache      *snapshot.Cache
}

// Bootstrap validates the vocabulary, declares the default categories,
// orders them and builds the snapshot cache.
func Bootstrap(st EngineState) (*Registry, error) {
	if st.Provider == nil {
		return nil, ErrNoProvider
	}
	ns := st.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	v := st.Vocabulary
	if v == nil {
		v = vocab.Default()
	}
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("groups: vocabulary: %w", err)
	}

	c := classify.New(v)
	rules, err := layout.NewRuleSet(layout.DefaultCategories(c, st.Lookup, ns), st.Order)
	if err != nil {
		return nil, fmt.Errorf("groups: rule set: %w", err)
	}
	cache, err := snapshot.New(snapshot.Options{
		Provider:  st.Provider,
		Rules:     rules,
		Omit:      c.Omit,
		Logger:    st.Logger,
		Telemetry: st.Telemetry,
	})
	if err != nil {
		return nil, fmt.Errorf("groups: cache: %w", err)
	}

	return &Registry{namespace: ns, classifier: c, rules: rules, cache: cache}, nil
}

// Namespace returns the category namespace.
func (r *Registry) Namespace() string { return r.namespace }

// Categories returns the enabled categories in priority order.
func (r *Registry) Categories() []*layout.Category { return r.rules.Categories() }

// Category returns the enabled category with the given identifier.
func (r *Registry) Category(id item.ID) (*layout.Category, bool) {
	return r.rules.Category(id)
}

// Rules returns the ordered rule set.
func (r *Registry) Rules() *layout.RuleSet { return r.rules }

// Resolve finds a category by path ("structure_wood") or full identifier.
// Unknown names report the closest match in the error.
func (r *Registry) Resolve(name string) (*layout.Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	id := item.ID{Namespace: r.namespace, Path: name}
	if ns, path, ok := strings.Cut(name, ":"); ok {
		id = item.ID{Namespace: ns, Path: path}
	}
	if c, ok := r.rules.Category(id); ok {
		return c, nil
	}
	if s, ok := r.Suggest(name); ok {
		return nil, fmt.Errorf("%w: %q (did you mean %q?)", layout.ErrUnknownCategory, name, s)
	}
	return nil, fmt.Errorf("%w: %q", layout.ErrUnknownCategory, name)
}

// StacksFor returns a category's stacks for dc as produced by the engine.
// Duplicates from overlapping pools are preserved.
func (r *Registry) StacksFor(category item.ID, dc snapshot.DisplayContext) []item.Stack {
	return r.cache.StacksFor(category, dc)
}

// Entries returns the stacks a consumer should display: copies of
// StacksFor with repeated items removed, keeping first occurrences.
func (r *Registry) Entries(category item.ID, dc snapshot.DisplayContext) []item.Stack {
	return Dedupe(r.StacksFor(category, dc))
}

// Dedupe keeps the first stack of each item identity.
func Dedupe(stacks []item.Stack) []item.Stack {
	seen := make(map[*item.Item]struct{}, len(stacks))
	out := make([]item.Stack, 0, len(stacks))
	for _, s := range stacks {
		if s.IsEmpty() {
			continue
		}
		if _, dup := seen[s.Item]; dup {
			continue
		}
		seen[s.Item] = struct{}{}
		out = append(out, s.Copy())
	}
	return out
}

// Invalidate forces the next query to rebuild.
func (r *Registry) Invalidate() { r.cache.Invalidate() }

// Cache returns the backing snapshot cache.
func (r *Registry) Cache() *snapshot.Cache { return r.cache }

// Classifier returns the classifier built from the vocabulary.
func (r *Registry) Classifier() *classify.Classifier { return r.classifier }

// Suggest returns the enabled category path closest to name by edit
// distance. ok is false when nothing is reasonably close.
func (r *Registry) Suggest(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if _, path, ok := strings.Cut(name, ":"); ok {
		name = path
	}
	if name == "" {
		return "", false
	}

	best, bestDist := "", -1
	for _, c := range r.rules.Categories() {
		d := levenshtein.ComputeDistance(name, c.ID().Path)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c.ID().Path, d
		}
	}
	if bestDist < 0 || bestDist > maxSuggestDistance(name) {
		return "", false
	}
	return best, true
}

func maxSuggestDistance(name string) int {
	if n := len(name) / 3; n > 2 {
		return n
	}
	return 2
}
