package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"zonetree/internal/tree"
)

func (m appModel) View() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	if m.resizing {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styleMuted().Render("Resizing…"))
	}

	header := lipgloss.NewStyle().Bold(true).Render("zonetree") +
		"  " + styleMuted().Render(m.headerStatus())

	bodyH := height - minHeaderFooterLines
	if bodyH < 4 {
		bodyH = 4
	}

	var body string
	switch m.modal {
	case modalNone:
		body = m.renderTree(width, bodyH)
	case modalRecordForm:
		body = lipgloss.Place(width, bodyH, lipgloss.Center, lipgloss.Center, renderRecordForm(width, m.form))
	case modalConfirmDelete:
		body = lipgloss.Place(width, bodyH, lipgloss.Center, lipgloss.Center, renderConfirmDelete(width, m.confirm, m.confirmFocus))
	case modalHelp:
		body = lipgloss.Place(width, bodyH, lipgloss.Center, lipgloss.Center, renderHelp(width))
	}

	minibuffer := m.renderMinibuffer(width)
	if minibuffer == "" {
		minibuffer = normalizePane("", width, 1)
	}
	footer := styleMuted().Render("enter: open/load  a: add  e: edit  d: delete  r: refresh  ?: help  q: quit")

	return strings.Join([]string{header, body, minibuffer, footer}, "\n")
}

func (m appModel) headerStatus() string {
	if m.rootLoading {
		return "loading zones…"
	}
	n := len(m.tr.Root.Children)
	if n == 1 {
		return "1 zone"
	}
	return fmt.Sprintf("%d zones", n)
}

// renderTree renders the visible window of flattened rows, keeping the
// cursor in view.
func (m appModel) renderTree(width, height int) string {
	if len(m.rows) == 0 {
		msg := "No zones loaded."
		if m.rootLoading {
			msg = "Loading zones…"
		}
		return normalizePane(styleMuted().Render(msg), width, height)
	}

	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := start + height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(m.rows[i], i == m.cursor, width))
	}
	return normalizePane(strings.Join(lines, "\n"), width, height)
}

func (m appModel) renderRow(n *tree.Node, selected bool, width int) string {
	var line string
	switch n.Kind {
	case tree.KindZone:
		twisty := glyphTwistyCollapsed()
		if n.State != tree.LoadUnloaded {
			twisty = glyphTwistyExpanded()
		}
		label := lipgloss.NewStyle().Bold(true).Render(n.Label)
		suffix := ""
		switch n.State {
		case tree.LoadLoading:
			suffix = styleMuted().Render("  loading…")
		case tree.LoadLoaded:
			suffix = styleMuted().Render(fmt.Sprintf("  %d", len(n.Children)))
		case tree.LoadFailed:
			suffix = lipgloss.NewStyle().Foreground(colorError).Render("  failed")
		}
		line = twisty + " " + label + suffix

	case tree.KindRecord:
		line = "  " + m.branchGlyph(n) + " " + n.Label

	case tree.KindError:
		line = "  " + m.branchGlyph(n) + " " + lipgloss.NewStyle().Foreground(colorError).Render(n.Label)

	default:
		line = "  " + m.branchGlyph(n) + " " + styleMuted().Render(n.Label)
	}

	if selected {
		return lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Render(normalizePane(line, width, 1))
	}
	return line
}

func (m appModel) branchGlyph(n *tree.Node) string {
	p := n.Parent
	if p != nil && len(p.Children) > 0 && p.Children[len(p.Children)-1] == n {
		return glyphBranchLast()
	}
	return glyphBranch()
}
