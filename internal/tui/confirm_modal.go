package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderConfirmDelete is the delete confirmation dialog. It resumes with
// "delete" only on an explicit accept; enter on the default focus (Cancel),
// esc and ctrl+g all resume with cancellation.
func renderConfirmDelete(width int, c *deleteConfirm, focus confirmModalFocus) string {
	// Avoid borders here: some terminals show background artifacts when
	// nesting bordered components inside a modal with a background color.
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	del := btnBase.Render("Delete")
	cancel := btnBase.Render("Cancel")
	if focus == confirmFocusConfirm {
		del = btnActive.Render("Delete")
	}
	if focus == confirmFocusCancel {
		cancel = btnActive.Render("Cancel")
	}

	sep := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, del, sep, cancel)

	bodyW := modalBodyWidth(width)
	body := lipgloss.NewStyle().Width(bodyW).Render("Delete " + c.label + "? The record is removed from " + c.zoneName + " once the API confirms.")
	help := styleMuted().Width(bodyW).Render("tab: focus   enter: select   esc/ctrl+g: cancel")

	content := strings.Join([]string{
		body,
		"",
		controls,
		"",
		help,
	}, "\n")
	return renderModalBox(width, "Delete record", content)
}
