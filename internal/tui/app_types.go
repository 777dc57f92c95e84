package tui

import (
	"zonetree/internal/model"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalRecordForm
	modalConfirmDelete
	modalHelp
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

type severity int

const (
	severityInfo severity = iota
	severityWarning
	severityError
)

type resizeDoneMsg struct{ seq int }

type minibufferClearMsg struct{ seq int }

// zonesLoadedMsg is the continuation of a root load. seq is compared to the
// model's rootSeq so a result from a superseded refresh is dropped.
type zonesLoadedMsg struct {
	seq   int
	zones []model.Zone
	err   error
}

// recordsLoadedMsg is the continuation of a per-zone record load. seq is the
// zone node's LoadSeq at dispatch time; a mismatch on receipt means the node
// was reloaded or replaced in the meantime and the result is stale.
type recordsLoadedMsg struct {
	zoneID  string
	seq     int
	records []model.Record
	err     error
}

// mutationDoneMsg is the continuation of a create/update/delete call. gen is
// the dispatcher generation at dispatch time; a mismatch means the mutation
// was superseded and its result must not touch the tree or the journal.
type mutationDoneMsg struct {
	gen        int
	op         string
	zoneID     string
	zoneName   string
	recordType string
	recordName string
	err        error
}

type journalDoneMsg struct{ err error }

// deleteConfirm holds the pending delete while the confirmation modal is up.
type deleteConfirm struct {
	zoneID     string
	zoneName   string
	recordID   string
	recordType string
	recordName string
	label      string
}

func (m *appModel) closeAllModals() {
	if m == nil {
		return
	}
	m.modal = modalNone
	m.form = nil
	m.confirm = nil
	m.confirmFocus = confirmFocusCancel
}
