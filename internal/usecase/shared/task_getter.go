// Package shared holds helpers used by several use cases.
package shared

import (
	"context"
	"fmt"

	"github.com/runoshun/tasktable/internal/domain"
	"github.com/runoshun/tasktable/internal/rowstore"
)

// LoadTask loads the collection into the store and returns the task with the given id.
// It returns domain.ErrTaskNotFound if the id is not in the collection.
// This centralizes the common pattern of:
//
//	if err := store.Load(ctx); err != nil { return nil, err }
//	task, ok := store.Get(id)
//	if !ok { return nil, domain.ErrTaskNotFound }
func LoadTask(ctx context.Context, store *rowstore.Store, id domain.TaskID) (*domain.Task, error) {
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	task, ok := store.Get(id)
	if !ok {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrTaskNotFound)
	}
	return task, nil
}
