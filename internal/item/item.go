// Package item models catalog entries: namespaced identifiers, items with a
// stable identity, quantity-insensitive stacks, and the feature sets that gate
// item visibility.
package item

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultNamespace is assumed when an identifier carries no namespace.
const DefaultNamespace = "minecraft"

// ErrInvalidID indicates an identifier with an empty namespace or path.
var ErrInvalidID = errors.New("invalid item identifier")

// ID is a namespaced identifier such as "minecraft:oak_log".
type ID struct {
	Namespace string
	Path      string
}

// ParseID splits "namespace:path" into an ID. Both halves are lowercased and
// a missing namespace defaults to DefaultNamespace.
func ParseID(s string) (ID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	ns, path, found := strings.Cut(s, ":")
	if !found {
		ns, path = DefaultNamespace, s
	}
	if ns == "" || path == "" {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID{Namespace: ns, Path: path}, nil
}

// MustParseID is ParseID for static tables; it panics on malformed input.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String renders the identifier as "namespace:path".
func (id ID) String() string {
	if id.IsZero() {
		return ""
	}
	return id.Namespace + ":" + id.Path
}

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool {
	return id.Namespace == "" && id.Path == ""
}

// Item is a catalog entry. Items are always handled by pointer and compared
// by identity: two *Item values are the same item only if they are the same
// pointer. Use a Registry to intern items by ID.
type Item struct {
	ID ID

	// Block reports whether the item places a block.
	Block bool

	// Features lists the feature flags that must all be enabled for the item
	// to be visible. Empty means always visible.
	Features []string
}

// Stack is a display instance of an Item. Stacks are values; copying one
// never aliases mutable state. Count is kept only to distinguish the empty
// stack and is otherwise ignored.
type Stack struct {
	Item  *Item
	Count int
}

// Empty is the zero stack.
var Empty = Stack{}

// NewStack returns a single-unit stack of it.
func NewStack(it *Item) Stack {
	if it == nil {
		return Empty
	}
	return Stack{Item: it, Count: 1}
}

// IsEmpty reports whether the stack holds nothing.
func (s Stack) IsEmpty() bool {
	return s.Item == nil || s.Count <= 0
}

// Copy returns a single-unit copy of s. The empty stack copies to Empty.
func (s Stack) Copy() Stack {
	if s.IsEmpty() {
		return Empty
	}
	return Stack{Item: s.Item, Count: 1}
}

// ID returns the identifier of the stacked item, or the zero ID when empty.
func (s Stack) ID() ID {
	if s.Item == nil {
		return ID{}
	}
	return s.Item.ID
}

// Path returns the lowercase identifier path of the stack's item. Empty and
// unidentifiable stacks normalise to "".
func Path(s Stack) string {
	if s.Item == nil {
		return ""
	}
	return strings.ToLower(s.Item.ID.Path)
}
