package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"zonetree/internal/gateway"
	"zonetree/internal/model"
	"zonetree/internal/tree"
)

func testZones() []model.Zone {
	return []model.Zone{
		{ID: "z1", Name: "example.com"},
		{ID: "z2", Name: "example.org"},
	}
}

func testRecords() map[string][]model.Record {
	return map[string][]model.Record{
		"z1": {
			{ID: "r1", ZoneID: "z1", Type: "A", Name: "example.com", Content: "1.1.1.1", TTL: 1, Proxied: true},
			{ID: "r2", ZoneID: "z1", Type: "TXT", Name: "example.com", Content: "v=spf1 -all", TTL: 300},
		},
	}
}

// newLoadedModel builds a model with the root load already applied.
func newLoadedModel(t *testing.T, fake *fakeGateway) appModel {
	t.Helper()
	m := newAppModel(fake, nil)
	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("Init returned no command")
	}
	mm, _ := m.Update(cmd())
	return mm.(appModel)
}

func press(t *testing.T, m appModel, key tea.KeyMsg) (appModel, tea.Cmd) {
	t.Helper()
	mm, cmd := m.Update(key)
	return mm.(appModel), cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// moveCursorTo positions the cursor on the first row matching pred.
func moveCursorTo(t *testing.T, m *appModel, pred func(*tree.Node) bool) {
	t.Helper()
	for i, n := range m.rows {
		if pred(n) {
			m.cursor = i
			return
		}
	}
	t.Fatalf("no row matched predicate; have %d rows", len(m.rows))
}

func TestLoadRoot_SeedsZonesWithPlaceholders(t *testing.T) {
	m := newLoadedModel(t, newFakeGateway(testZones(), nil))

	zones := m.tr.Root.Children
	if len(zones) != 2 {
		t.Fatalf("zone count = %d, want 2", len(zones))
	}
	for _, z := range zones {
		if z.Kind != tree.KindZone {
			t.Fatalf("root child kind = %v, want zone", z.Kind)
		}
		if z.State != tree.LoadUnloaded {
			t.Fatalf("zone %s state = %v, want unloaded", z.Label, z.State)
		}
		if len(z.Children) != 1 || z.Children[0].Kind != tree.KindPlaceholder {
			t.Fatalf("zone %s should carry exactly one placeholder child", z.Label)
		}
	}
}

func TestLoadRoot_FailureLeavesExistingZonesUntouched(t *testing.T) {
	fake := newFakeGateway(testZones(), nil)
	m := newLoadedModel(t, fake)

	fake.listZonesErr = &gateway.Error{Message: "upstream down", StatusCode: 502}
	m, cmd := press(t, m, keyRune('r'))
	if cmd == nil {
		t.Fatalf("refresh should issue a load command")
	}
	mm, _ := m.Update(cmd())
	m = mm.(appModel)

	if got := len(m.tr.Root.Children); got != 2 {
		t.Fatalf("zone count after failed refresh = %d, want 2", got)
	}
	if m.minibufferText == "" {
		t.Fatalf("expected an error notification after failed refresh")
	}
}

func TestLoadRecords_PopulatesChildrenAndGuardsReentry(t *testing.T) {
	fake := newFakeGateway(testZones(), testRecords())
	m := newLoadedModel(t, fake)

	moveCursorTo(t, &m, func(n *tree.Node) bool { return n.Kind == tree.KindZone && n.ID == "z1" })
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("activating a zone should issue a load command")
	}
	zone := m.tr.FindZone("z1")
	if zone.State != tree.LoadLoading {
		t.Fatalf("zone state = %v, want loading", zone.State)
	}

	// Re-entrant trigger while loading is a no-op.
	_, cmd2 := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd2 != nil {
		t.Fatalf("second activation while loading should be ignored")
	}

	mm, _ := m.Update(cmd())
	m = mm.(appModel)
	zone = m.tr.FindZone("z1")

	if zone.State != tree.LoadLoaded {
		t.Fatalf("zone state = %v, want loaded", zone.State)
	}
	if len(zone.Children) != 2 {
		t.Fatalf("child count = %d, want 2", len(zone.Children))
	}
	for _, c := range zone.Children {
		if c.Kind != tree.KindRecord {
			t.Fatalf("loaded child kind = %v, want record", c.Kind)
		}
	}
}

func TestLoadRecords_EmptyZoneInstallsInfoLeaf(t *testing.T) {
	fake := newFakeGateway(testZones(), nil)
	m := newLoadedModel(t, fake)

	moveCursorTo(t, &m, func(n *tree.Node) bool { return n.Kind == tree.KindZone && n.ID == "z2" })
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	mm, _ := m.Update(cmd())
	m = mm.(appModel)

	zone := m.tr.FindZone("z2")
	if zone.State != tree.LoadLoaded {
		t.Fatalf("zone state = %v, want loaded", zone.State)
	}
	if len(zone.Children) != 1 || zone.Children[0].Kind != tree.KindPlaceholder {
		t.Fatalf("empty zone should show a single informational leaf")
	}
}

func TestLoadRecords_FailureInstallsErrorLeafAndRetryRecovers(t *testing.T) {
	fake := newFakeGateway(testZones(), testRecords())
	fake.listRecordsErr = &gateway.Error{Message: "rate limited", StatusCode: 429}
	m := newLoadedModel(t, fake)

	moveCursorTo(t, &m, func(n *tree.Node) bool { return n.Kind == tree.KindZone && n.ID == "z1" })
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	mm, _ := m.Update(cmd())
	m = mm.(appModel)

	zone := m.tr.FindZone("z1")
	if zone.State != tree.LoadFailed {
		t.Fatalf("zone state = %v, want failed", zone.State)
	}
	if len(zone.Children) != 1 || zone.Children[0].Kind != tree.KindError {
		t.Fatalf("failed zone should show a single error leaf")
	}
	if m.minibufferText == "" {
		t.Fatalf("expected an error notification for the failed load")
	}

	// Activating the error leaf retries the load.
	fake.listRecordsErr = nil
	moveCursorTo(t, &m, func(n *tree.Node) bool { return n.Kind == tree.KindError })
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("activating the error leaf should retry the load")
	}
	mm, _ = m.Update(cmd())
	m = mm.(appModel)

	zone = m.tr.FindZone("z1")
	if zone.State != tree.LoadLoaded {
		t.Fatalf("zone state after retry = %v, want loaded", zone.State)
	}
	if len(zone.Children) != 2 {
		t.Fatalf("child count after retry = %d, want 2", len(zone.Children))
	}
}

func TestLoadRecords_StaleResultIsDropped(t *testing.T) {
	fake := newFakeGateway(testZones(), testRecords())
	m := newLoadedModel(t, fake)

	zone := m.tr.FindZone("z1")
	moveCursorTo(t, &m, func(n *tree.Node) bool { return n == zone })
	m, cmd1 := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	staleMsg := cmd1()

	// A second load supersedes the first before its result lands.
	zone.State = tree.LoadUnloaded
	cmd2 := (&m).startLoadRecords(zone)

	fake.mu.Lock()
	fake.records["z1"] = fake.records["z1"][:1]
	fake.mu.Unlock()
	mm, _ := m.Update(cmd2())
	m = mm.(appModel)
	if got := len(m.tr.FindZone("z1").Children); got != 1 {
		t.Fatalf("child count = %d, want 1", got)
	}

	// The stale result arrives afterwards and must change nothing.
	mm, _ = m.Update(staleMsg)
	m = mm.(appModel)
	if got := len(m.tr.FindZone("z1").Children); got != 1 {
		t.Fatalf("stale load result mutated the tree: child count = %d, want 1", got)
	}
}
