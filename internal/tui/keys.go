package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/papapumpkin/strata/internal/groups"
)

// KeyMap defines all keybindings for the browser.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Toggle   key.Binding
	Pick     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev tab"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next tab"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab", "next filter"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("shift+tab", "prev filter"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter on/off"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pick"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rebuild"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.Toggle, k.Pick, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextPage, k.PrevPage, k.Toggle},
		{k.Pick, k.Reload, k.Help, k.Quit},
	}
}

// filterKeyMap disables the vanilla tab keys while a filter page is open
// and the page keys when there are no filter categories.
func filterKeyMap(km KeyMap, nav *groups.Navigator) KeyMap {
	km.Left.SetEnabled(!nav.Active())
	km.Right.SetEnabled(!nav.Active())
	km.PrevPage.SetEnabled(nav.PrevEnabled())
	km.NextPage.SetEnabled(nav.Visible())
	km.Toggle.SetEnabled(nav.Visible())
	return km
}
