package tui

import (
	"context"

	"zonetree/internal/gateway"
	"zonetree/internal/journal"
	"zonetree/internal/tree"
)

type appModel struct {
	gw gateway.Gateway
	jr *journal.Journal
	tr *tree.Tree

	width  int
	height int
	// We treat the very first WindowSizeMsg as "initial sizing" rather than a
	// user-driven resize. Otherwise we briefly render the full-height
	// "Resizing…" overlay on startup.
	seenWindowSize bool
	resizing       bool
	resizeSeq      int

	// rows is the flattened visible tree, rebuilt after every structural
	// change. cursor indexes into rows.
	rows   []*tree.Node
	cursor int

	// rootSeq guards stale zone-list results the same way LoadSeq guards
	// per-zone record results.
	rootSeq     int
	rootLoading bool

	modal        modalKind
	form         *recordForm
	confirm      *deleteConfirm
	confirmFocus confirmModalFocus

	// mutGen is the exclusive-slot generation: submitting a new mutation
	// bumps it and cancels mutCancel, so the superseded continuation fails
	// the gen check on receipt and commits nothing.
	mutGen    int
	mutCancel context.CancelFunc

	minibufferText string
	minibufferSev  severity
	minibufferSeq  int
}

// Header, minibuffer and footer rows around the tree pane.
const minHeaderFooterLines = 4

func newAppModel(gw gateway.Gateway, jr *journal.Journal) appModel {
	m := appModel{
		gw:           gw,
		jr:           jr,
		tr:           tree.New(),
		confirmFocus: confirmFocusCancel,
		// Init issues the first root load with this sequence.
		rootSeq:     1,
		rootLoading: true,
	}
	m.rebuildRows()
	return m
}

// rebuildRows flattens the tree into the visible row list: zones in order,
// each followed by its children. The cursor stays on the same node when it
// survives the rebuild, otherwise it clamps.
func (m *appModel) rebuildRows() {
	var curID string
	var curKind tree.Kind
	if n := m.selectedNode(); n != nil {
		curID = n.ID
		curKind = n.Kind
	}

	m.rows = m.rows[:0]
	for _, z := range m.tr.Root.Children {
		m.rows = append(m.rows, z)
		m.rows = append(m.rows, z.Children...)
	}

	if curID != "" {
		for i, n := range m.rows {
			if n.ID == curID && n.Kind == curKind {
				m.cursor = i
				break
			}
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m appModel) selectedNode() *tree.Node {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor]
}

// selectedZone resolves the zone the current action applies to: the selected
// zone node itself, or the zone enclosing the selected record/leaf.
func (m appModel) selectedZone() *tree.Node {
	n := m.selectedNode()
	if n == nil {
		return nil
	}
	return m.tr.ContainingZone(n)
}
