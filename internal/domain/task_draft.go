package domain

import (
	"strconv"
	"strings"
	"time"
)

// TaskDraft holds the editable fields of a task as entered by the user.
// It is the form model behind both the TUI form and the CLI flags; values stay as
// strings until Validate/ToTask so partial input can be edited and re-checked.
type TaskDraft struct {
	SerialNo        string
	Description     string
	Status          string
	DueDate         string
	EstimatedHours  string
	Priority        string
	CreatedOn       string // Read-only in forms
	AssignedMembers []string
	IsAssigned      bool
}

// requiredDraftFields lists the required fields in the order they are reported.
var requiredDraftFields = []string{"serialNo", "assignedMembers", "dueDate", "estimatedHours", "description", "status"}

// NewTaskDraft returns an empty draft with form defaults and createdOn set to today.
func NewTaskDraft(today time.Time) TaskDraft {
	return TaskDraft{
		Status:     string(DefaultStatus),
		Priority:   string(DefaultPriority),
		CreatedOn:  string(DateOf(today)),
		IsAssigned: false,
	}
}

// DraftFromTask loads an existing task into a draft for editing.
// A task without createdOn gets today's date.
func DraftFromTask(t *Task, today time.Time) TaskDraft {
	d := TaskDraft{
		SerialNo:        t.SerialNo.String(),
		Description:     t.Description,
		Status:          string(t.Status.OrDefault()),
		DueDate:         string(t.DueDate),
		EstimatedHours:  t.EstimatedHours.String(),
		Priority:        string(t.Priority.OrDefault()),
		CreatedOn:       string(t.CreatedOn),
		AssignedMembers: t.AssignedMembers.Strings(),
		IsAssigned:      t.IsAssigned,
	}
	if d.CreatedOn == "" {
		d.CreatedOn = string(DateOf(today))
	}
	return d
}

// Validate checks required fields and value formats.
// It returns a *ValidationError, or nil when the draft can be submitted.
func (d TaskDraft) Validate() error {
	_, err := d.ToTask()
	return err
}

// ToTask validates the draft and converts it to a task without an id.
func (d TaskDraft) ToTask() (Task, error) {
	verr := &ValidationError{Missing: d.missingFields()}
	var t Task

	if s := strings.TrimSpace(d.SerialNo); s != "" {
		n, err := ParseNumber(s)
		if err != nil {
			verr.Invalid = append(verr.Invalid, "serialNo")
		}
		t.SerialNo = n
	}
	if members, err := ParseMembers(d.AssignedMembers); err != nil {
		verr.Invalid = append(verr.Invalid, "assignedMembers")
	} else {
		t.AssignedMembers = members
	}
	if s := strings.TrimSpace(d.DueDate); s != "" {
		due, err := ParseDate(s)
		if err != nil {
			verr.Invalid = append(verr.Invalid, "dueDate")
		}
		t.DueDate = due
	}
	if s := strings.TrimSpace(d.EstimatedHours); s != "" {
		n, err := ParseNumber(s)
		if err != nil || n < 0 {
			verr.Invalid = append(verr.Invalid, "estimatedHours")
		}
		t.EstimatedHours = n
	}
	t.Description = strings.TrimSpace(d.Description)
	if s := strings.TrimSpace(d.Status); s != "" {
		st, err := ParseStatus(s)
		if err != nil {
			verr.Invalid = append(verr.Invalid, "status")
		}
		t.Status = st
	}
	t.Priority = DefaultPriority
	if s := strings.TrimSpace(d.Priority); s != "" {
		p, err := ParsePriority(s)
		if err != nil {
			verr.Invalid = append(verr.Invalid, "priority")
		}
		t.Priority = p
	}
	if s := strings.TrimSpace(d.CreatedOn); s != "" {
		created, err := ParseDate(s)
		if err != nil {
			verr.Invalid = append(verr.Invalid, "createdOn")
		}
		t.CreatedOn = created
	}
	t.IsAssigned = d.IsAssigned

	if verr.HasErrors() {
		return Task{}, verr
	}
	return t, nil
}

// missingFields returns the required fields that are empty.
func (d TaskDraft) missingFields() []string {
	var missing []string
	for _, field := range requiredDraftFields {
		if d.isEmpty(field) {
			missing = append(missing, field)
		}
	}
	return missing
}

func (d TaskDraft) isEmpty(field string) bool {
	switch field {
	case "serialNo":
		return strings.TrimSpace(d.SerialNo) == ""
	case "assignedMembers":
		for _, m := range d.AssignedMembers {
			if strings.Trim(m, " ,") != "" {
				return false
			}
		}
		return true
	case "dueDate":
		return strings.TrimSpace(d.DueDate) == ""
	case "estimatedHours":
		return strings.TrimSpace(d.EstimatedHours) == ""
	case "description":
		return strings.TrimSpace(d.Description) == ""
	case "status":
		return strings.TrimSpace(d.Status) == ""
	}
	return false
}

// FormatBool renders the isAssigned value the way forms show it.
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}
