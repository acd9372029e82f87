package tui

import "github.com/runoshun/tasktable/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the row store has been reloaded from the resource.
type MsgTasksLoaded struct {
	Count int
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskCreated is sent when the resource confirmed a new task.
// Seq identifies the form submission that produced it.
type MsgTaskCreated struct {
	Task *domain.Task
	Seq  int
}

func (MsgTaskCreated) sealed() {}

// MsgTaskUpdated is sent when the resource confirmed an edit.
// Task is nil if the row disappeared before the update settled.
type MsgTaskUpdated struct {
	Task *domain.Task
	ID   domain.TaskID
	Seq  int
}

func (MsgTaskUpdated) sealed() {}

// MsgTaskDeleted is sent when a task is deleted.
type MsgTaskDeleted struct {
	TaskID domain.TaskID
}

func (MsgTaskDeleted) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent when an error has been shown long enough.
// Only the error with the same Seq is cleared.
type MsgClearError struct {
	Seq int
}

func (MsgClearError) sealed() {}
