package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// The minibuffer is the notification sink: a single footer line carrying
// the latest success/warning/error message. Each notification arms its own
// sequence-guarded auto-clear tick so an older timer can never clobber a
// newer message.

const minibufferAutoClearAfter = 4 * time.Second

func (m *appModel) notify(title, message string, sev severity) tea.Cmd {
	text := title
	if message != "" {
		text = title + ": " + message
	}
	m.minibufferText = text
	m.minibufferSev = sev
	m.minibufferSeq++
	seq := m.minibufferSeq
	return tea.Tick(minibufferAutoClearAfter, func(time.Time) tea.Msg {
		return minibufferClearMsg{seq: seq}
	})
}

func (m *appModel) applyMinibufferClear(msg minibufferClearMsg) {
	if msg.seq != m.minibufferSeq {
		return
	}
	m.minibufferText = ""
}

func styleSeverity(sev severity) lipgloss.Style {
	switch sev {
	case severityError:
		return lipgloss.NewStyle().Foreground(colorError).Bold(true)
	case severityWarning:
		return lipgloss.NewStyle().Foreground(colorWarning)
	}
	return lipgloss.NewStyle().Foreground(colorAccent)
}

func (m appModel) renderMinibuffer(width int) string {
	if m.minibufferText == "" {
		return ""
	}
	icon := glyphSeverity(m.minibufferSev)
	return normalizePane(styleSeverity(m.minibufferSev).Render(icon+" "+m.minibufferText), width, 1)
}
