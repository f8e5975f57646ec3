// Package tui is an interactive browser over the engine's categories.
package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a browser program on the alternate screen.
func NewProgram(cfg Config, opts ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, opts...)
	return tea.NewProgram(NewModel(cfg), allOpts...)
}

// Run creates and runs a browser, blocking until it exits.
func Run(cfg Config) error {
	if _, err := NewProgram(cfg).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}

// WithInput returns a program option that reads TUI input from r.
func WithInput(r io.Reader) tea.ProgramOption {
	return tea.WithInput(r)
}
