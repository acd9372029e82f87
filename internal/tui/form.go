package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/tasktable/internal/domain"
)

// formField is one row of the task form: a text input, or a fixed choice
// cycled with ←/→ or space.
type formField struct {
	name    string // Draft field name, as reported by validation
	label   string
	options []string // Non-nil for choice fields
	input   textinput.Model
	choice  int
}

func newTextField(name, label, value, placeholder string) *formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.SetValue(value)
	return &formField{name: name, label: label, input: ti}
}

func newChoiceField(name, label, value string, options []string) *formField {
	f := &formField{name: name, label: label, options: options}
	for i, o := range options {
		if strings.EqualFold(o, value) {
			f.choice = i
		}
	}
	return f
}

func (f *formField) isChoice() bool {
	return f.options != nil
}

// Value returns the current text or the selected option.
func (f *formField) Value() string {
	if f.isChoice() {
		return f.options[f.choice]
	}
	return f.input.Value()
}

func (f *formField) cycle(delta int) {
	n := len(f.options)
	f.choice = ((f.choice+delta)%n + n) % n
}

// taskForm collects the editable fields of a task.
// An empty editingID means the form creates a new task.
type taskForm struct {
	err        string
	editingID  domain.TaskID
	createdOn  string
	fields     []*formField
	focus      int
	seq        int // Matches the Seq of the messages its submission produces
	submitting bool
}

// newTaskForm builds a form pre-filled from a draft.
func newTaskForm(d domain.TaskDraft, editingID domain.TaskID) *taskForm {
	f := &taskForm{
		editingID: editingID,
		createdOn: d.CreatedOn,
		fields: []*formField{
			newTextField("serialNo", "Serial No", d.SerialNo, "1"),
			newTextField("description", "Title", d.Description, "What needs doing"),
			newTextField("assignedMembers", "Members", strings.Join(d.AssignedMembers, ", "), "teamMember1, 3"),
			newTextField("dueDate", "Due Date", d.DueDate, domain.DateLayout),
			newTextField("estimatedHours", "Est. Hours", d.EstimatedHours, "2.5"),
			newChoiceField("status", "Status", d.Status, statusOptions()),
			newChoiceField("priority", "Priority", d.Priority, priorityOptions()),
			newChoiceField("isAssigned", "Assigned", domain.FormatBool(d.IsAssigned), []string{"false", "true"}),
		},
	}
	f.focusField(0)
	return f
}

func statusOptions() []string {
	out := make([]string, 0, 3)
	for _, s := range domain.AllStatuses() {
		out = append(out, string(s))
	}
	return out
}

func priorityOptions() []string {
	out := make([]string, 0, 3)
	for _, p := range domain.AllPriorities() {
		out = append(out, string(p))
	}
	return out
}

// IsEdit reports whether the form edits an existing task.
func (f *taskForm) IsEdit() bool {
	return f.editingID != ""
}

// Field returns the field with the given draft name, or nil.
func (f *taskForm) Field(name string) *formField {
	for _, fld := range f.fields {
		if fld.name == name {
			return fld
		}
	}
	return nil
}

// Draft returns the form values as a draft.
func (f *taskForm) Draft() domain.TaskDraft {
	return domain.TaskDraft{
		SerialNo:        f.Field("serialNo").Value(),
		Description:     f.Field("description").Value(),
		AssignedMembers: []string{f.Field("assignedMembers").Value()},
		DueDate:         f.Field("dueDate").Value(),
		EstimatedHours:  f.Field("estimatedHours").Value(),
		Status:          f.Field("status").Value(),
		Priority:        f.Field("priority").Value(),
		IsAssigned:      f.Field("isAssigned").Value() == "true",
		CreatedOn:       f.createdOn,
	}
}

// Validate checks the draft and records a "missing: a, b" style message.
// It returns the task to submit when the form is valid.
func (f *taskForm) Validate() (*domain.Task, bool) {
	task, err := f.Draft().ToTask()
	if err != nil {
		f.err = formatValidation(err)
		return nil, false
	}
	f.err = ""
	return &task, true
}

func (f *taskForm) focusField(i int) {
	n := len(f.fields)
	f.focus = ((i % n) + n) % n
	for j, fld := range f.fields {
		if j == f.focus && !fld.isChoice() {
			fld.input.Focus()
		} else {
			fld.input.Blur()
		}
	}
}

// Next moves focus to the next field, wrapping around.
func (f *taskForm) Next() {
	f.focusField(f.focus + 1)
}

// Prev moves focus to the previous field, wrapping around.
func (f *taskForm) Prev() {
	f.focusField(f.focus - 1)
}

// Focused returns the focused field.
func (f *taskForm) Focused() *formField {
	return f.fields[f.focus]
}

// Update forwards a key to the focused field.
func (f *taskForm) Update(msg tea.KeyMsg) tea.Cmd {
	fld := f.Focused()
	if fld.isChoice() {
		switch msg.Type {
		case tea.KeyLeft:
			fld.cycle(-1)
		case tea.KeyRight, tea.KeySpace:
			fld.cycle(1)
		}
		return nil
	}
	var cmd tea.Cmd
	fld.input, cmd = fld.input.Update(msg)
	return cmd
}

// formatValidation renders validation failures as "missing: a, b; invalid: c".
func formatValidation(err error) string {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}
	var parts []string
	if len(verr.Missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(verr.Missing, ", "))
	}
	if len(verr.Invalid) > 0 {
		parts = append(parts, "invalid: "+strings.Join(verr.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}
