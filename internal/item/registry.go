package item

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDuplicate indicates a second registration for an existing ID.
var ErrDuplicate = errors.New("item already registered")

// Lookup resolves identifiers to interned items.
type Lookup interface {
	Lookup(id ID) (*Item, bool)
}

// Registry interns items by ID so that every reference to an identifier
// shares one identity. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	items map[ID]*Item
	order []ID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[ID]*Item)}
}

// Register adds it under its ID.
func (r *Registry) Register(it *Item) error {
	if it == nil || it.ID.IsZero() {
		return fmt.Errorf("%w: empty", ErrInvalidID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[it.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, it.ID)
	}
	r.items[it.ID] = it
	r.order = append(r.order, it.ID)
	return nil
}

// Lookup returns the item registered under id.
func (r *Registry) Lookup(id ID) (*Item, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.items[id]
	return it, ok
}

// Stack returns a single-unit stack of the item registered under id, or
// Empty when the id is unknown.
func (r *Registry) Stack(id ID) Stack {
	it, ok := r.Lookup(id)
	if !ok {
		return Empty
	}
	return NewStack(it)
}

// Items returns all registered items in registration order.
func (r *Registry) Items() []*Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Item, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

// Len returns the number of registered items.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// StackOf resolves id through lookup, falling back to Empty when lookup is
// nil or the id is unknown.
func StackOf(lookup Lookup, id ID) Stack {
	if lookup == nil {
		return Empty
	}
	it, ok := lookup.Lookup(id)
	if !ok {
		return Empty
	}
	return NewStack(it)
}
