// Package snapshot memoizes partition results per display context. The
// cache holds a single snapshot at a time, keyed by the enabled feature set
// and the operator-permission flag; a mismatching context or an explicit
// invalidation replaces it with a freshly built one.
package snapshot

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/papapumpkin/strata/internal/item"
	"github.com/papapumpkin/strata/internal/layout"
)

// DisplayContext describes what the viewer can currently see. Lookup is
// passed through to the provider untouched and plays no part in cache
// validity.
type DisplayContext struct {
	Features    item.FeatureSet
	Permissions bool
	Lookup      item.Lookup
}

// Key is the comparable part of a DisplayContext.
type Key struct {
	Features    item.FeatureSet
	Permissions bool
}

// Key returns the cache key for dc.
func (dc DisplayContext) Key() Key {
	return Key{Features: dc.Features, Permissions: dc.Permissions}
}

// String renders the key as "{flags}" with an "+op" suffix when operator
// permissions are granted.
func (k Key) String() string {
	if k.Permissions {
		return k.Features.String() + "+op"
	}
	return k.Features.String()
}

// Provider captures the source pools visible in a display context. Each
// call must return fresh pools; the cache drains them.
type Provider interface {
	Capture(dc DisplayContext) layout.Pools
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(DisplayContext) layout.Pools

// Capture calls f.
func (f ProviderFunc) Capture(dc DisplayContext) layout.Pools { return f(dc) }

// Snapshot is one immutable partition result.
type Snapshot struct {
	id      uuid.UUID
	key     Key
	builtAt time.Time
	part    *layout.Partition
}

// ID returns the snapshot's unique identifier.
func (s *Snapshot) ID() string { return s.id.String() }

// Key returns the display-context key the snapshot was built for.
func (s *Snapshot) Key() Key { return s.key }

// BuiltAt returns the build time.
func (s *Snapshot) BuiltAt() time.Time { return s.builtAt }

// Stacks returns a copy of a category's final stacks. Unknown or empty
// categories yield an empty slice.
func (s *Snapshot) Stacks(category item.ID) []item.Stack {
	if out := s.part.Stacks(category); out != nil {
		return out
	}
	return []item.Stack{}
}

// Partition exposes the underlying extraction result for reporting.
func (s *Snapshot) Partition() *layout.Partition { return s.part }

// Sizes returns the stack count of every category, keyed by identifier.
func (s *Snapshot) Sizes() map[string]int {
	out := make(map[string]int)
	for _, id := range s.part.Order() {
		out[id.String()] = s.part.Len(id)
	}
	return out
}

// String summarises the snapshot for logs.
func (s *Snapshot) String() string {
	return fmt.Sprintf("snapshot %s %s: %d claimed, %d omitted, %d remaining",
		s.id.String()[:8], s.key, s.part.Claimed(), s.part.Omitted, s.part.RemainingTotal())
}
