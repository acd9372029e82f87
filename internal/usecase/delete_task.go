package usecase

import (
	"context"

	"github.com/runoshun/tasktable/internal/domain"
	"github.com/runoshun/tasktable/internal/rowstore"
	"github.com/runoshun/tasktable/internal/usecase/shared"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID domain.TaskID // Task to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task *domain.Task // The deleted task as it was last loaded
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	store *rowstore.Store
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(store *rowstore.Store) *DeleteTask {
	return &DeleteTask{store: store}
}

// Execute deletes the task with the given id.
// Unlike the store, an unknown id is reported as domain.ErrTaskNotFound.
func (uc *DeleteTask) Execute(ctx context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	task, err := shared.LoadTask(ctx, uc.store, in.TaskID)
	if err != nil {
		return nil, err
	}

	if err := uc.store.Remove(ctx, in.TaskID); err != nil {
		return nil, err
	}
	return &DeleteTaskOutput{Task: task}, nil
}
