package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"zonetree/internal/gateway"
	"zonetree/internal/journal"
)

// Run starts the interactive TUI. jr may be nil when no data dir is
// available; mutations then simply go unjournaled.
func Run(gw gateway.Gateway, jr *journal.Journal) error {
	applyColorProfilePreference()
	applyThemePreference()
	applyGlyphPreference()

	m := newAppModel(gw, jr)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
