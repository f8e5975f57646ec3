package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary    = lipgloss.Color("#00BFFF") // Cyan: active tab
	colorAccent     = lipgloss.Color("#FFD700") // Gold: filter pages
	colorSuccess    = lipgloss.Color("#00E676") // Green: picked
	colorMuted      = lipgloss.Color("#636363") // Gray: de-emphasized
	colorMutedLight = lipgloss.Color("#8C8C8C") // Lighter gray: normal text
	colorWhite      = lipgloss.Color("#EEEEEE") // Off-white: primary text
	colorSurface    = lipgloss.Color("#1E1E2E") // Dark surface: status bar bg
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

var (
	styleTab = lipgloss.NewStyle().
			Foreground(colorMutedLight).
			Padding(0, 1)

	styleTabActive = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	styleFilterTab = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)

	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Padding(0, 1)

	styleIndicator = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleRow = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	stylePicked = lipgloss.NewStyle().
			Foreground(colorSuccess)
)
