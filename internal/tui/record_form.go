package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zonetree/internal/model"
)

type recordFormField int

const (
	fieldType recordFormField = iota
	fieldName
	fieldContent
	fieldTTL
	fieldProxied
	fieldSave
	fieldCancel
)

// recordForm is the create/edit modal. It resumes exactly once: either
// Update hands a validated payload to the dispatcher and closes it, or the
// operator cancels and nothing is produced.
type recordForm struct {
	zoneID   string
	zoneName string
	recordID string // empty means create

	typeInput    textinput.Model
	nameInput    textinput.Model
	contentInput textinput.Model
	ttlInput     textinput.Model
	proxied      bool

	focus   recordFormField
	errText string
}

func newFormInput(placeholder string, limit, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = width
	return in
}

// newRecordForm seeds the form. For an existing record the name field shows
// the short form ("@" for the zone apex, the zone suffix stripped
// otherwise); for a create it defaults to "@", empty content, automatic
// TTL, proxied on.
func newRecordForm(zoneID, zoneName string, existing *model.Record) *recordForm {
	f := &recordForm{
		zoneID:       zoneID,
		zoneName:     zoneName,
		typeInput:    newFormInput("A", 10, 12),
		nameInput:    newFormInput("@", 255, 40),
		contentInput: newFormInput("Content", 1024, 40),
		ttlInput:     newFormInput("1 (auto)", 10, 12),
	}

	if existing != nil {
		f.recordID = existing.ID
		f.typeInput.SetValue(existing.Type)
		f.nameInput.SetValue(model.ShortName(existing.Name, zoneName))
		f.contentInput.SetValue(existing.Content)
		f.ttlInput.SetValue(strconv.Itoa(existing.TTL))
		f.proxied = existing.Proxied
	} else {
		f.nameInput.SetValue("@")
		f.ttlInput.SetValue(strconv.Itoa(model.TTLAuto))
		f.proxied = true
	}

	f.setFocus(fieldType)
	return f
}

func (f *recordForm) editing() bool { return f.recordID != "" }

func (f *recordForm) setFocus(field recordFormField) {
	f.focus = field
	inputs := []*textinput.Model{&f.typeInput, &f.nameInput, &f.contentInput, &f.ttlInput}
	for i, in := range inputs {
		if recordFormField(i) == field {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (f *recordForm) focusNext() {
	next := f.focus + 1
	if next > fieldCancel {
		next = fieldType
	}
	f.setFocus(next)
}

func (f *recordForm) focusPrev() {
	prev := f.focus - 1
	if prev < fieldType {
		prev = fieldCancel
	}
	f.setFocus(prev)
}

// submit packages the form into a mutation payload. Type is upper-cased,
// "@" expands to the zone apex, short names get the zone suffix back, and
// an unparseable TTL falls back to the automatic sentinel. Empty
// type/name/content after trimming fails validation and keeps the dialog
// open; anything else is the remote service's problem.
func (f *recordForm) submit() (model.RecordPayload, bool) {
	typ := strings.ToUpper(strings.TrimSpace(f.typeInput.Value()))
	name := strings.TrimSpace(f.nameInput.Value())
	content := strings.TrimSpace(f.contentInput.Value())

	if typ == "" || name == "" || content == "" {
		f.errText = "type, name and content are required"
		return model.RecordPayload{}, false
	}

	ttl, err := strconv.Atoi(strings.TrimSpace(f.ttlInput.Value()))
	if err != nil {
		ttl = model.TTLAuto
	}

	f.errText = ""
	return model.RecordPayload{
		Type:    typ,
		Name:    model.QualifyName(name, f.zoneName),
		Content: content,
		TTL:     ttl,
		Proxied: f.proxied,
	}, true
}

// updateInput routes a key to whichever text input has focus.
func (f *recordForm) updateInput(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldType:
		f.typeInput, cmd = f.typeInput.Update(msg)
	case fieldName:
		f.nameInput, cmd = f.nameInput.Update(msg)
	case fieldContent:
		f.contentInput, cmd = f.contentInput.Update(msg)
	case fieldTTL:
		f.ttlInput, cmd = f.ttlInput.Update(msg)
	}
	return cmd
}

func renderRecordForm(width int, f *recordForm) string {
	bodyW := modalBodyWidth(width)

	label := lipgloss.NewStyle().Foreground(colorSurfaceFg).Background(colorSurfaceBg).Bold(true)
	row := func(name string, focused bool, view string) string {
		marker := "  "
		if focused {
			marker = glyphTwistyCollapsed() + " "
		}
		return marker + label.Render(padRight(name, 9)) + " " + view
	}

	proxiedVal := "off"
	if f.proxied {
		proxiedVal = "on"
	}
	if !model.Proxiable(f.typeInput.Value()) {
		proxiedVal += " (ignored for this type)"
	}

	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	save := btnBase.Render("Save")
	cancel := btnBase.Render("Cancel")
	if f.focus == fieldSave {
		save = btnActive.Render("Save")
	}
	if f.focus == fieldCancel {
		cancel = btnActive.Render("Cancel")
	}
	sep := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, save, sep, cancel)

	lines := []string{
		row("Type", f.focus == fieldType, renderInputLine(bodyW-14, f.typeInput.View())),
		row("Name", f.focus == fieldName, renderInputLine(bodyW-14, f.nameInput.View())),
		row("Content", f.focus == fieldContent, renderInputLine(bodyW-14, f.contentInput.View())),
		row("TTL", f.focus == fieldTTL, renderInputLine(bodyW-14, f.ttlInput.View())),
		row("Proxied", f.focus == fieldProxied, proxiedVal),
		"",
		controls,
	}
	if f.errText != "" {
		lines = append(lines, "", styleSeverity(severityError).Render(f.errText))
	}
	lines = append(lines, "", styleMuted().Width(bodyW).Render("tab: next field   space: toggle proxied   enter: save   esc/ctrl+g: cancel"))

	title := "New record in " + f.zoneName
	if f.editing() {
		title = "Edit record in " + f.zoneName
	}
	return renderModalBox(width, title, strings.Join(lines, "\n"))
}

func padRight(s string, w int) string {
	for len(s) < w {
		s += " "
	}
	return s
}
