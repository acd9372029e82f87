package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasktable/internal/domain"
	"github.com/runoshun/tasktable/internal/infra/taskfile"
	"github.com/runoshun/tasktable/internal/rowstore"
)

// ImportTasksInput contains the parameters for creating tasks from a YAML file.
type ImportTasksInput struct {
	Content []byte // File content (YAML)
	DryRun  bool   // If true, parse and validate without creating tasks
}

// ImportTasksOutput contains the result of importing tasks.
type ImportTasksOutput struct {
	Tasks []*domain.Task // Created tasks (or tasks that would be created in dry-run mode)
}

// ImportTasks is the use case for creating tasks from a file.
type ImportTasks struct {
	store  *rowstore.Store
	clock  domain.Clock
	logger domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(store *rowstore.Store, clock domain.Clock, logger domain.Logger) *ImportTasks {
	return &ImportTasks{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Execute validates every record first, then creates them in file order.
// If a create fails, the tasks created so far are returned along with the error.
func (uc *ImportTasks) Execute(ctx context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	drafts, err := taskfile.Decode(in.Content, domain.NewTaskDraft(uc.clock.Now()))
	if err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, 0, len(drafts))
	for i, d := range drafts {
		task, err := d.ToTask()
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		tasks = append(tasks, &task)
	}

	if in.DryRun {
		return &ImportTasksOutput{Tasks: tasks}, nil
	}

	out := &ImportTasksOutput{Tasks: make([]*domain.Task, 0, len(tasks))}
	for i, task := range tasks {
		created, err := uc.store.Create(ctx, task)
		if err != nil {
			return out, fmt.Errorf("task %d: %w", i+1, err)
		}
		out.Tasks = append(out.Tasks, created)
	}

	uc.logger.Info("", "import", fmt.Sprintf("imported %d tasks", len(out.Tasks)))
	return out, nil
}
