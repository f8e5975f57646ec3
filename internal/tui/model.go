package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/strata/internal/groups"
	"github.com/papapumpkin/strata/internal/item"
	"github.com/papapumpkin/strata/internal/layout"
	"github.com/papapumpkin/strata/internal/snapshot"
)

// Tab is one page of the vanilla view.
type Tab struct {
	Title   string
	Entries func() []item.Stack
}

// Config wires a browser to the engine.
type Config struct {
	Registry *groups.Registry
	Context  snapshot.DisplayContext
	Vanilla  []Tab                  // vanilla view pages
	OnPick   func(item.Stack) error // optional; called when a stack is picked
}

// Model is the browser's bubbletea model.
type Model struct {
	Keys KeyMap

	reg     *groups.Registry
	dc      snapshot.DisplayContext
	vanilla []Tab
	onPick  func(item.Stack) error

	nav    *groups.Navigator
	tab    int // vanilla tab index
	cursor int
	offset int
	status string
	help   help.Model
	width  int
	height int
}

// NewModel returns a browser starting in the vanilla view.
func NewModel(cfg Config) Model {
	return Model{
		Keys:    DefaultKeyMap(),
		reg:     cfg.Registry,
		dc:      cfg.Context,
		vanilla: cfg.Vanilla,
		onPick:  cfg.OnPick,
		nav:     groups.NewNavigator(len(cfg.Registry.Categories())),
		help:    help.New(),
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.clamp()
		return m, nil

	case MsgReloaded:
		m.status = "reloaded " + msg.File
		m.clamp()
		return m, nil

	case MsgPicked:
		m.status = "picked " + msg.Stack.ID().String()
		return m, nil

	case MsgError:
		m.status = "error: " + msg.Err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := filterKeyMap(m.Keys, m.nav)
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, keys.Up):
		m.cursor--
	case key.Matches(msg, keys.Down):
		m.cursor++
	case key.Matches(msg, keys.Left):
		m.switchTab(-1)
	case key.Matches(msg, keys.Right):
		m.switchTab(1)
	case key.Matches(msg, keys.NextPage):
		m.nav.Next()
		m.resetCursor()
	case key.Matches(msg, keys.PrevPage):
		m.nav.Prev()
		m.resetCursor()
	case key.Matches(msg, keys.Toggle):
		m.nav.Toggle()
		m.resetCursor()
	case key.Matches(msg, keys.Reload):
		m.reg.Invalidate()
		m.status = "snapshot invalidated"
	case key.Matches(msg, keys.Pick):
		return m, m.pick()
	}
	m.clamp()
	return m, nil
}

func (m *Model) switchTab(delta int) {
	if len(m.vanilla) == 0 {
		return
	}
	m.tab = (m.tab + delta + len(m.vanilla)) % len(m.vanilla)
	m.resetCursor()
}

func (m *Model) resetCursor() {
	m.cursor, m.offset = 0, 0
}

func (m Model) pick() tea.Cmd {
	entries := m.Entries()
	if m.cursor < 0 || m.cursor >= len(entries) {
		return nil
	}
	s := entries[m.cursor]
	onPick := m.onPick
	return func() tea.Msg {
		if onPick != nil {
			if err := onPick(s); err != nil {
				return MsgError{Err: err}
			}
		}
		return MsgPicked{Stack: s}
	}
}

// clamp keeps the cursor inside the current entries and scrolls the
// window so the cursor stays visible.
func (m *Model) clamp() {
	n := len(m.Entries())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	rows := m.listRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// Category returns the open filter category, or nil in the vanilla view.
func (m Model) Category() *layout.Category {
	if !m.nav.Active() {
		return nil
	}
	cats := m.reg.Categories()
	return cats[m.nav.Index()]
}

// Entries returns the stacks on the current page.
func (m Model) Entries() []item.Stack {
	if c := m.Category(); c != nil {
		return m.reg.Entries(c.ID(), m.dc)
	}
	if len(m.vanilla) == 0 || m.vanilla[m.tab].Entries == nil {
		return nil
	}
	return m.vanilla[m.tab].Entries()
}

// Cursor returns the selected row.
func (m Model) Cursor() int { return m.cursor }

// Navigator returns the filter page state.
func (m Model) Navigator() *groups.Navigator { return m.nav }

// Status returns the status bar message.
func (m Model) Status() string { return m.status }

// listRows is the number of entry rows that fit between the chrome.
func (m Model) listRows() int {
	const chrome = 4 // tabs, status bar, help, spacer
	if rows := m.height - chrome; rows > 0 {
		return rows
	}
	return 1
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderList())
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(filterKeyMap(m.Keys, m.nav)))
	return b.String()
}

func (m Model) renderTabs() string {
	if c := m.Category(); c != nil {
		return styleFilterTab.Render(c.DisplayKey())
	}
	parts := make([]string, 0, len(m.vanilla))
	for i, t := range m.vanilla {
		if i == m.tab {
			parts = append(parts, styleTabActive.Render(t.Title))
			continue
		}
		parts = append(parts, styleTab.Render(t.Title))
	}
	return strings.Join(parts, "")
}

func (m Model) renderList() string {
	entries := m.Entries()
	if len(entries) == 0 {
		return styleMuted.Render("  (empty)") + "\n"
	}
	var b strings.Builder
	end := min(m.offset+m.listRows(), len(entries))
	for i := m.offset; i < end; i++ {
		line := entries[i].ID().String()
		if i == m.cursor {
			b.WriteString(styleRowSelected.Render(selectionIndicator + " " + line))
		} else {
			b.WriteString(styleRow.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderStatus() string {
	left := fmt.Sprintf("%d/%d", min(m.cursor+1, len(m.Entries())), len(m.Entries()))
	if m.nav.Visible() {
		left += "  " + styleIndicator.Render(m.nav.Indicator()) + " " + m.nav.Label()
	}
	if m.status != "" {
		left += "  " + stylePicked.Render(m.status)
	}
	return styleStatusBar.Render(left)
}
