package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"zonetree/internal/gateway"
	"zonetree/internal/tree"
)

// Tree controller: lazy loading of the root zone list and per-zone record
// lists. Loads are issued as commands; the continuations re-enter Update as
// zonesLoadedMsg / recordsLoadedMsg and are validated against the sequence
// captured at dispatch before touching the tree.

func loadZonesCmd(gw gateway.Gateway, seq int) tea.Cmd {
	return func() tea.Msg {
		zones, err := gw.ListZones(context.Background())
		return zonesLoadedMsg{seq: seq, zones: zones, err: err}
	}
}

func (m *appModel) startLoadRoot() tea.Cmd {
	m.rootSeq++
	m.rootLoading = true
	return loadZonesCmd(m.gw, m.rootSeq)
}

func (m *appModel) applyZones(msg zonesLoadedMsg) tea.Cmd {
	if msg.seq != m.rootSeq {
		return nil
	}
	m.rootLoading = false
	if msg.err != nil {
		// Root children stay as they were; the failure is surfaced but not
		// fatal.
		return m.notify("Load zones", msg.err.Error(), severityError)
	}

	children := make([]*tree.Node, 0, len(msg.zones))
	for _, z := range msg.zones {
		n := tree.NewZoneNode(z)
		m.tr.ReplaceChildren(n, []*tree.Node{tree.NewPlaceholder(z.ID, "…")})
		children = append(children, n)
	}
	m.tr.ReplaceChildren(m.tr.Root, children)
	m.rebuildRows()
	if len(msg.zones) == 0 {
		return m.notify("Zones", "no zones on this account", severityWarning)
	}
	return nil
}

// startLoadRecords begins a lazy (re)load of one zone's records. A zone
// already Loading is left alone; everything else, including a Failed zone,
// restarts from scratch.
func (m *appModel) startLoadRecords(zoneNode *tree.Node) tea.Cmd {
	if zoneNode == nil || zoneNode.Kind != tree.KindZone {
		return nil
	}
	if zoneNode.State == tree.LoadLoading {
		return nil
	}
	zoneNode.State = tree.LoadLoading
	zoneNode.LoadSeq++
	m.tr.ReplaceChildren(zoneNode, []*tree.Node{tree.NewPlaceholder(zoneNode.ID, "loading…")})
	m.rebuildRows()

	seq := zoneNode.LoadSeq
	zoneID := zoneNode.ID
	gw := m.gw
	return func() tea.Msg {
		records, err := gw.ListRecords(context.Background(), zoneID)
		return recordsLoadedMsg{zoneID: zoneID, seq: seq, records: records, err: err}
	}
}

func (m *appModel) applyRecords(msg recordsLoadedMsg) tea.Cmd {
	zoneNode := m.tr.FindZone(msg.zoneID)
	if zoneNode == nil || msg.seq != zoneNode.LoadSeq {
		// The zone was removed or reloaded since this load started.
		return nil
	}

	if msg.err != nil {
		zoneNode.State = tree.LoadFailed
		m.tr.ReplaceChildren(zoneNode, []*tree.Node{tree.NewErrorLeaf(zoneNode.ID, msg.err.Error())})
		m.rebuildRows()
		return m.notify("Load records", msg.err.Error(), severityError)
	}

	zoneNode.State = tree.LoadLoaded
	if len(msg.records) == 0 {
		m.tr.ReplaceChildren(zoneNode, []*tree.Node{tree.NewPlaceholder(zoneNode.ID, "no records")})
		m.rebuildRows()
		return nil
	}
	children := make([]*tree.Node, 0, len(msg.records))
	for _, r := range msg.records {
		children = append(children, tree.NewRecordNode(r))
	}
	m.tr.ReplaceChildren(zoneNode, children)
	m.rebuildRows()
	return nil
}
