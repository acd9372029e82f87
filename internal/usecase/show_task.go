package usecase

import (
	"context"

	"github.com/runoshun/tasktable/internal/domain"
	"github.com/runoshun/tasktable/internal/rowstore"
	"github.com/runoshun/tasktable/internal/usecase/shared"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	TaskID domain.TaskID
}

// ShowTaskOutput contains the task details.
type ShowTaskOutput struct {
	Task *domain.Task
}

// ShowTask is the use case for displaying a single task.
type ShowTask struct {
	store *rowstore.Store
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(store *rowstore.Store) *ShowTask {
	return &ShowTask{store: store}
}

// Execute returns the task with the given id.
func (uc *ShowTask) Execute(ctx context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	task, err := shared.LoadTask(ctx, uc.store, in.TaskID)
	if err != nil {
		return nil, err
	}
	return &ShowTaskOutput{Task: task}, nil
}
