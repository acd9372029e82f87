package usecase

import (
	"context"

	"github.com/runoshun/tasktable/internal/domain"
	"github.com/runoshun/tasktable/internal/rowstore"
	"github.com/runoshun/tasktable/internal/usecase/shared"
)

// TaskPatch holds the fields to change. Nil fields keep their current value.
type TaskPatch struct {
	SerialNo        *string
	Description     *string
	Status          *string
	DueDate         *string
	EstimatedHours  *string
	Priority        *string
	IsAssigned      *bool
	AssignedMembers []string // nil = no change
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.SerialNo == nil && p.Description == nil && p.Status == nil &&
		p.DueDate == nil && p.EstimatedHours == nil && p.Priority == nil &&
		p.IsAssigned == nil && p.AssignedMembers == nil
}

// Apply writes the patch onto a draft.
func (p TaskPatch) Apply(d *domain.TaskDraft) {
	if p.SerialNo != nil {
		d.SerialNo = *p.SerialNo
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.DueDate != nil {
		d.DueDate = *p.DueDate
	}
	if p.EstimatedHours != nil {
		d.EstimatedHours = *p.EstimatedHours
	}
	if p.Priority != nil {
		d.Priority = *p.Priority
	}
	if p.IsAssigned != nil {
		d.IsAssigned = *p.IsAssigned
	}
	if p.AssignedMembers != nil {
		d.AssignedMembers = p.AssignedMembers
	}
}

// EditTaskInput contains the parameters for editing a task.
type EditTaskInput struct {
	TaskID domain.TaskID // Task to edit (required)
	Patch  TaskPatch     // Fields to change
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task *domain.Task // The updated task
}

// EditTask is the use case for editing an existing task.
type EditTask struct {
	store *rowstore.Store
	clock domain.Clock
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(store *rowstore.Store, clock domain.Clock) *EditTask {
	return &EditTask{store: store, clock: clock}
}

// Execute applies the patch to the stored task and saves it.
func (uc *EditTask) Execute(ctx context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if in.Patch.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	current, err := shared.LoadTask(ctx, uc.store, in.TaskID)
	if err != nil {
		return nil, err
	}

	draft := domain.DraftFromTask(current, uc.clock.Now())
	in.Patch.Apply(&draft)

	task, err := draft.ToTask()
	if err != nil {
		return nil, err
	}

	updated, err := uc.store.Update(ctx, in.TaskID, &task)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Removed between load and update.
		return nil, domain.ErrTaskNotFound
	}
	return &EditTaskOutput{Task: updated}, nil
}
