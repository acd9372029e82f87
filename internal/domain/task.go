// Package domain contains core business entities and interfaces.
package domain

import (
	"encoding/json"
	"fmt"
)

// Task is a single task record managed by the remote task resource.
type Task struct {
	ID              TaskID   `json:"id,omitempty"`    // Assigned by the server (empty before creation)
	Description     string   `json:"description"`     // Task title (required)
	Status          Status   `json:"status"`          // Progress state
	AssignedMembers Members  `json:"assignedMembers"` // Assigned team members (required, non-empty)
	DueDate         Date     `json:"dueDate"`         // Due date (required)
	Priority        Priority `json:"priority"`        // Urgency
	CreatedOn       Date     `json:"createdOn"`       // Creation date, read-only after creation
	SerialNo        Number   `json:"serialNo"`        // Display serial number (required)
	EstimatedHours  Number   `json:"estimatedHours"`  // Estimated effort in hours (required)
	IsAssigned      bool     `json:"isAssigned"`      // Whether the task has been handed out
}

// UnmarshalJSON decodes a task record and normalizes it.
// isAssigned may arrive as a boolean or as the strings "true"/"false".
func (t *Task) UnmarshalJSON(data []byte) error {
	type taskAlias Task
	aux := struct {
		*taskAlias
		IsAssigned json.RawMessage `json:"isAssigned"`
	}{taskAlias: (*taskAlias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	assigned, err := ParseBool(aux.IsAssigned)
	if err != nil {
		return fmt.Errorf("isAssigned: %w", err)
	}
	t.IsAssigned = assigned
	t.Normalize()
	return nil
}

// Normalize applies the record invariants in place:
// unknown status and priority fall back to their defaults and
// assigned members are reduced to a set of known members.
func (t *Task) Normalize() {
	t.Status = t.Status.OrDefault()
	t.Priority = t.Priority.OrDefault()
	t.AssignedMembers = NewMembers(t.AssignedMembers...)
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	if t.AssignedMembers != nil {
		c.AssignedMembers = append(Members(nil), t.AssignedMembers...)
	}
	return &c
}

// CloneTasks deep-copies a task slice.
func CloneTasks(tasks []*Task) []*Task {
	out := make([]*Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// IndexOf returns the position of the task with the given id, or -1.
func IndexOf(tasks []*Task, id TaskID) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
