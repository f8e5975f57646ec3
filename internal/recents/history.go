// Package recents remembers block items the viewer recently picked and
// persists them across sessions.
package recents

import (
	"sync"

	"github.com/papapumpkin/strata/internal/item"
)

// Capacity is the default number of remembered items.
const Capacity = 48

var (
	// DefaultEntries are shown while the history is empty.
	DefaultEntries = []item.ID{
		item.MustParseID("minecraft:grass_block"),
		item.MustParseID("minecraft:cobblestone"),
		item.MustParseID("minecraft:oak_planks"),
	}
	// DefaultIcon is the icon of an empty history.
	DefaultIcon = item.MustParseID("minecraft:bookshelf")
)

// History is a most-recent-first list of block items. It is safe for
// concurrent use.
type History struct {
	mu       sync.Mutex
	capacity int
	items    []*item.Item
}

// NewHistory returns an empty history holding at most capacity items.
// A non-positive capacity selects Capacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = Capacity
	}
	return &History{capacity: capacity}
}

// Record moves the stack's item to the front, replacing any entry with the
// same ID. Empty stacks and non-block items are ignored; the return value
// reports whether s was recorded.
func (h *History) Record(s item.Stack) bool {
	if s.IsEmpty() || !s.Item.Block {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = moveToFront(h.items, s.Item, h.capacity)
	return true
}

func moveToFront(items []*item.Item, it *item.Item, capacity int) []*item.Item {
	out := make([]*item.Item, 0, min(len(items)+1, capacity))
	out = append(out, it)
	for _, existing := range items {
		if len(out) == capacity {
			break
		}
		if existing.ID != it.ID {
			out = append(out, existing)
		}
	}
	return out
}

// Items returns the remembered items, most recent first.
func (h *History) Items() []*item.Item {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*item.Item, len(h.items))
	copy(out, h.items)
	return out
}

// Len returns the number of remembered items.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.items)
}

// Clear forgets everything.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = nil
}

// Restore replaces the history with items, most recent first. Nil,
// non-block and repeated items are skipped and the list is cut to capacity.
func (h *History) Restore(items []*item.Item) {
	seen := make(map[item.ID]struct{}, len(items))
	kept := make([]*item.Item, 0, min(len(items), h.capacity))
	for _, it := range items {
		if it == nil || !it.Block {
			continue
		}
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}
		kept = append(kept, it)
		if len(kept) == h.capacity {
			break
		}
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = kept
}

// Entries returns display stacks for the history, or the default entries
// resolved through lookup when it is empty.
func (h *History) Entries(lookup item.Lookup) []item.Stack {
	items := h.Items()
	if len(items) == 0 {
		var out []item.Stack
		for _, id := range DefaultEntries {
			if s := item.StackOf(lookup, id); !s.IsEmpty() {
				out = append(out, s)
			}
		}
		return out
	}
	out := make([]item.Stack, 0, len(items))
	for _, it := range items {
		out = append(out, item.NewStack(it))
	}
	return out
}

// Icon returns the most recent item, or DefaultIcon when empty.
func (h *History) Icon(lookup item.Lookup) item.Stack {
	h.mu.Lock()
	var first *item.Item
	if len(h.items) > 0 {
		first = h.items[0]
	}
	h.mu.Unlock()

	if first != nil {
		return item.NewStack(first)
	}
	return item.StackOf(lookup, DefaultIcon)
}
