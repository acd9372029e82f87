package usecase

import (
	"context"

	"github.com/runoshun/tasktable/internal/domain"
	"github.com/runoshun/tasktable/internal/rowstore"
)

// NewTaskInput contains the parameters for creating a task.
type NewTaskInput struct {
	Draft domain.TaskDraft // Form values; start from domain.NewTaskDraft for defaults
}

// NewTaskOutput contains the result of creating a task.
type NewTaskOutput struct {
	Task *domain.Task // Record as confirmed by the server
}

// NewTask is the use case for creating a task.
type NewTask struct {
	store *rowstore.Store
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(store *rowstore.Store) *NewTask {
	return &NewTask{store: store}
}

// Execute validates the draft and creates the task.
// A *domain.ValidationError is returned before anything is sent.
func (uc *NewTask) Execute(ctx context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	task, err := in.Draft.ToTask()
	if err != nil {
		return nil, err
	}

	created, err := uc.store.Create(ctx, &task)
	if err != nil {
		return nil, err
	}
	return &NewTaskOutput{Task: created}, nil
}
