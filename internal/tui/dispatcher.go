package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"zonetree/internal/journal"
	"zonetree/internal/model"
)

// Mutation dispatcher: one exclusive in-flight slot. Dispatching while a
// mutation is still running supersedes it: the old context is cancelled and
// the old continuation, should its result still arrive, fails the
// generation check in Update and is discarded without touching the tree or
// the journal. There is no queue and no automatic retry.

func (m *appModel) dispatchCreate(zoneID, zoneName string, payload model.RecordPayload) tea.Cmd {
	ctx, gen := m.claimMutationSlot()
	gw := m.gw
	return func() tea.Msg {
		_, err := gw.CreateRecord(ctx, zoneID, payload)
		return mutationDoneMsg{
			gen:        gen,
			op:         journal.OpCreate,
			zoneID:     zoneID,
			zoneName:   zoneName,
			recordType: payload.Type,
			recordName: payload.Name,
			err:        err,
		}
	}
}

func (m *appModel) dispatchUpdate(zoneID, zoneName, recordID string, payload model.RecordPayload) tea.Cmd {
	ctx, gen := m.claimMutationSlot()
	gw := m.gw
	return func() tea.Msg {
		_, err := gw.UpdateRecord(ctx, zoneID, recordID, payload)
		return mutationDoneMsg{
			gen:        gen,
			op:         journal.OpUpdate,
			zoneID:     zoneID,
			zoneName:   zoneName,
			recordType: payload.Type,
			recordName: payload.Name,
			err:        err,
		}
	}
}

func (m *appModel) dispatchDelete(c deleteConfirm) tea.Cmd {
	ctx, gen := m.claimMutationSlot()
	gw := m.gw
	return func() tea.Msg {
		err := gw.DeleteRecord(ctx, c.zoneID, c.recordID)
		return mutationDoneMsg{
			gen:        gen,
			op:         journal.OpDelete,
			zoneID:     c.zoneID,
			zoneName:   c.zoneName,
			recordType: c.recordType,
			recordName: c.recordName,
			err:        err,
		}
	}
}

// claimMutationSlot supersedes any in-flight mutation and reserves the slot
// for a new one: the prior call's context is torn down and the returned
// generation is what its continuation will fail to match.
func (m *appModel) claimMutationSlot() (context.Context, int) {
	if m.mutCancel != nil {
		m.mutCancel()
	}
	m.mutGen++
	ctx, cancel := context.WithCancel(context.Background())
	m.mutCancel = cancel
	return ctx, m.mutGen
}

// applyMutationDone commits a mutation result: journal it, notify, and on
// success reload the owning zone so the view reflects server-authoritative
// state. Stale (superseded) results are dropped wholesale.
func (m *appModel) applyMutationDone(msg mutationDoneMsg) tea.Cmd {
	if msg.gen != m.mutGen {
		return nil
	}
	if m.mutCancel != nil {
		m.mutCancel()
		m.mutCancel = nil
	}

	var cmds []tea.Cmd
	if c := m.appendJournal(msg); c != nil {
		cmds = append(cmds, c)
	}

	if msg.err != nil {
		// The tree is left exactly as it was before the call.
		cmds = append(cmds, m.notify(opTitle(msg.op), msg.err.Error(), severityError))
		return tea.Batch(cmds...)
	}

	cmds = append(cmds, m.notify(opTitle(msg.op), msg.recordType+" "+msg.recordName, severityInfo))
	if zoneNode := m.tr.FindZone(msg.zoneID); zoneNode != nil {
		if c := m.startLoadRecords(zoneNode); c != nil {
			cmds = append(cmds, c)
		}
	}
	return tea.Batch(cmds...)
}

func (m *appModel) appendJournal(msg mutationDoneMsg) tea.Cmd {
	if m.jr == nil {
		return nil
	}
	jr := m.jr
	e := journal.Entry{
		Operation:  msg.op,
		Zone:       msg.zoneName,
		RecordType: msg.recordType,
		RecordName: msg.recordName,
		Outcome:    journal.OutcomeOK,
	}
	if msg.err != nil {
		e.Outcome = msg.err.Error()
	}
	return func() tea.Msg {
		return journalDoneMsg{err: jr.Append(context.Background(), e)}
	}
}

func opTitle(op string) string {
	switch op {
	case journal.OpCreate:
		return "Created record"
	case journal.OpUpdate:
		return "Updated record"
	case journal.OpDelete:
		return "Deleted record"
	}
	return op
}
