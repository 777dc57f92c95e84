package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"zonetree/internal/tree"
)

func (m appModel) Init() tea.Cmd {
	return loadZonesCmd(m.gw, m.rootSeq)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		first := !m.seenWindowSize
		m.seenWindowSize = true
		m.width = msg.Width
		m.height = msg.Height
		if first {
			return m, nil
		}
		// Debounce relayout: repaint once the resize stream settles.
		m.resizing = true
		m.resizeSeq++
		seq := m.resizeSeq
		return m, tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg { return resizeDoneMsg{seq: seq} })

	case resizeDoneMsg:
		if msg.seq == m.resizeSeq {
			m.resizing = false
		}
		return m, nil

	case zonesLoadedMsg:
		cmd := (&m).applyZones(msg)
		return m, cmd

	case recordsLoadedMsg:
		cmd := (&m).applyRecords(msg)
		return m, cmd

	case mutationDoneMsg:
		cmd := (&m).applyMutationDone(msg)
		return m, cmd

	case journalDoneMsg:
		if msg.err != nil {
			cmd := (&m).notify("Journal", msg.err.Error(), severityWarning)
			return m, cmd
		}
		return m, nil

	case minibufferClearMsg:
		(&m).applyMinibufferClear(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.modal != modalNone {
		return m.handleModalKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "g":
		m.cursor = 0
	case "G":
		if len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
		}

	case "r":
		cmd := (&m).startLoadRoot()
		return m, cmd

	case "enter":
		return m.activateSelection()

	case "a":
		zone := m.selectedZone()
		if zone == nil {
			cmd := (&m).notify("Add record", "select a zone first", severityWarning)
			return m, cmd
		}
		m.modal = modalRecordForm
		m.form = newRecordForm(zone.ID, zone.Label, nil)
		return m, nil

	case "e":
		return m.openEditForm()

	case "d":
		node := m.selectedNode()
		if node == nil || node.Kind != tree.KindRecord {
			cmd := (&m).notify("Delete record", "select a record first", severityWarning)
			return m, cmd
		}
		zone := m.tr.ContainingZone(node)
		if zone == nil {
			return m, nil
		}
		m.modal = modalConfirmDelete
		m.confirmFocus = confirmFocusCancel
		m.confirm = &deleteConfirm{
			zoneID:     zone.ID,
			zoneName:   zone.Label,
			recordID:   node.Record.ID,
			recordType: node.Record.Type,
			recordName: node.Record.Name,
			label:      node.Record.Type + " " + node.Record.Name,
		}
		return m, nil

	case "?":
		m.modal = modalHelp
		return m, nil
	}
	return m, nil
}

// activateSelection is the select/activate action: a zone lazily loads its
// records, a record opens the edit dialog, and an error leaf retries the
// failed load of its zone.
func (m appModel) activateSelection() (tea.Model, tea.Cmd) {
	node := m.selectedNode()
	if node == nil {
		return m, nil
	}
	switch node.Kind {
	case tree.KindZone:
		cmd := (&m).startLoadRecords(node)
		return m, cmd
	case tree.KindRecord:
		return m.openEditForm()
	case tree.KindPlaceholder, tree.KindError:
		zone := m.tr.ContainingZone(node)
		if zone != nil && zone.State != tree.LoadLoading {
			zone.State = tree.LoadUnloaded
			cmd := (&m).startLoadRecords(zone)
			return m, cmd
		}
	}
	return m, nil
}

func (m appModel) openEditForm() (tea.Model, tea.Cmd) {
	node := m.selectedNode()
	if node == nil || node.Kind != tree.KindRecord {
		cmd := (&m).notify("Edit record", "select a record first", severityWarning)
		return m, cmd
	}
	zone := m.tr.ContainingZone(node)
	if zone == nil {
		return m, nil
	}
	m.modal = modalRecordForm
	m.form = newRecordForm(zone.ID, zone.Label, node.Record)
	return m, nil
}

func (m appModel) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalHelp:
		switch msg.String() {
		case "esc", "q", "?", "enter":
			(&m).closeAllModals()
		}
		return m, nil

	case modalConfirmDelete:
		switch msg.String() {
		case "esc", "ctrl+g":
			(&m).closeAllModals()
			return m, nil
		case "tab", "shift+tab", "left", "right":
			if m.confirmFocus == confirmFocusConfirm {
				m.confirmFocus = confirmFocusCancel
			} else {
				m.confirmFocus = confirmFocusConfirm
			}
			return m, nil
		case "enter":
			if m.confirm == nil || m.confirmFocus != confirmFocusConfirm {
				(&m).closeAllModals()
				return m, nil
			}
			c := *m.confirm
			(&m).closeAllModals()
			cmd := (&m).dispatchDelete(c)
			return m, cmd
		}
		return m, nil

	case modalRecordForm:
		return m.handleFormKey(msg)
	}
	return m, nil
}

func (m appModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	if f == nil {
		(&m).closeAllModals()
		return m, nil
	}

	switch msg.String() {
	case "esc", "ctrl+g":
		(&m).closeAllModals()
		return m, nil

	case "tab", "down":
		f.focusNext()
		return m, nil
	case "shift+tab", "up":
		f.focusPrev()
		return m, nil

	case " ":
		if f.focus == fieldProxied {
			f.proxied = !f.proxied
			return m, nil
		}

	case "enter":
		switch f.focus {
		case fieldCancel:
			(&m).closeAllModals()
			return m, nil
		case fieldProxied:
			f.proxied = !f.proxied
			return m, nil
		case fieldSave:
			return m.submitForm()
		default:
			f.focusNext()
			return m, nil
		}
	}

	cmd := f.updateInput(msg)
	return m, cmd
}

// submitForm validates and packages the form, then hands the payload to
// the dispatcher. Modal state is cleared before dispatch; the result lands
// in the tree, never back in the form.
func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	f := m.form
	payload, ok := f.submit()
	if !ok {
		// Validation failure keeps the dialog open.
		return m, nil
	}

	zoneID, zoneName, recordID := f.zoneID, f.zoneName, f.recordID
	(&m).closeAllModals()

	var cmd tea.Cmd
	if recordID != "" {
		cmd = (&m).dispatchUpdate(zoneID, zoneName, recordID, payload)
	} else {
		cmd = (&m).dispatchCreate(zoneID, zoneName, payload)
	}
	return m, cmd
}
