package groups

import "fmt"

// Translation keys for the filter toggle label.
const (
	LabelFilterOn  = "gui.blockfilter.creative.filter_on"
	LabelFilterOff = "gui.blockfilter.creative.filter_off"
)

// Navigator tracks which filter page the viewer is on. The vanilla view is
// page 1; any filter category is page 2. It is not safe for concurrent use.
type Navigator struct {
	count  int
	active bool
	index  int
}

// NewNavigator returns a navigator over count filter categories, starting
// in the vanilla view.
func NewNavigator(count int) *Navigator {
	if count < 0 {
		count = 0
	}
	return &Navigator{count: count}
}

// Visible reports whether filter controls should be shown at all.
func (n *Navigator) Visible() bool { return n.count > 0 }

// Active reports whether a filter category is selected.
func (n *Navigator) Active() bool { return n.active }

// Index returns the selected category index. It is 0 in the vanilla view.
func (n *Navigator) Index() int { return n.index }

// Toggle switches between the vanilla view and the first category.
func (n *Navigator) Toggle() {
	if n.count == 0 {
		return
	}
	if n.active {
		n.Vanilla()
		return
	}
	n.Select(0)
}

// Next opens the first category from the vanilla view, otherwise advances
// with wrap-around.
func (n *Navigator) Next() {
	if n.count == 0 {
		return
	}
	if !n.active {
		n.Select(0)
		return
	}
	n.Select(n.index + 1)
}

// Prev steps back one category, returning to the vanilla view from the
// first one. It does nothing in the vanilla view.
func (n *Navigator) Prev() {
	if n.count == 0 || !n.active {
		return
	}
	if n.index == 0 {
		n.Vanilla()
		return
	}
	n.Select(n.index - 1)
}

// Select opens the category at index, wrapped into range.
func (n *Navigator) Select(index int) {
	if n.count == 0 {
		return
	}
	n.active = true
	n.index = floorMod(index, n.count)
}

// Vanilla returns to the vanilla view.
func (n *Navigator) Vanilla() {
	n.active = false
	n.index = 0
}

// PrevEnabled reports whether Prev does anything.
func (n *Navigator) PrevEnabled() bool { return n.active }

// Label returns the translation key for the toggle button.
func (n *Navigator) Label() string {
	if n.active {
		return LabelFilterOn
	}
	return LabelFilterOff
}

// Indicator renders the page indicator, or "" when controls are hidden.
func (n *Navigator) Indicator() string {
	if n.count == 0 {
		return ""
	}
	page := 1
	if n.active {
		page = 2
	}
	return fmt.Sprintf("%d / %d", page, 2)
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
