package domain

import (
	"errors"
	"strings"
)

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrNetwork          = errors.New("network error")
	ErrRemote           = errors.New("remote task resource error")
	ErrIndexOutOfRange  = errors.New("row index out of range")
	ErrReorderSorted    = errors.New("rows cannot be reordered while sorted (clear the sort first)")
	ErrInvalidBaseURL   = errors.New("invalid API base URL")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidSort      = errors.New("invalid sort direction")
	ErrUnknownMember    = errors.New("unknown team member")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrEmptyFile        = errors.New("file is empty")
	ErrNoTasksInFile    = errors.New("no tasks found in file")
	ErrConfigExists     = errors.New("config file already exists")
)

// ValidationError reports form fields that are missing or malformed.
// Field names use the wire names (serialNo, dueDate, ...).
type ValidationError struct {
	Missing []string // Required fields left empty
	Invalid []string // Fields whose value could not be parsed
}

// Error lists the offending fields.
func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

// HasErrors returns true if any field failed validation.
func (e *ValidationError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Invalid) > 0
}
