package rowstore

import (
	"context"
	"fmt"

	"github.com/runoshun/tasktable/internal/domain"
)

// Update replaces the record with the given id once the resource confirms it.
// An id that is not in the collection is a no-op returning (nil, nil).
// The stored createdOn is kept regardless of the submitted value.
func (s *Store) Update(ctx context.Context, id domain.TaskID, task *domain.Task) (*domain.Task, error) {
	s.mu.RLock()
	idx := domain.IndexOf(s.tasks, id)
	var createdOn domain.Date
	if idx >= 0 {
		createdOn = s.tasks[idx].CreatedOn
	}
	s.mu.RUnlock()

	if idx < 0 {
		s.logger.Warn(id, logCategory, "update ignored: task not in collection")
		return nil, nil
	}

	draft := task.Clone()
	draft.ID = id
	if !createdOn.IsZero() {
		draft.CreatedOn = createdOn
	}
	draft.Normalize()

	updated, err := s.resource.Update(ctx, id, draft)
	if err != nil {
		s.logger.Error(id, logCategory, fmt.Sprintf("update failed: %v", err))
		return nil, fmt.Errorf("update task %s: %w", id, err)
	}
	if updated == nil {
		s.logger.Error(id, logCategory, "update response has no record")
		return nil, fmt.Errorf("update task %s: %w: response has no record", id, domain.ErrRemote)
	}

	stored := updated.Clone()
	stored.ID = id
	stored.Normalize()

	s.mu.Lock()
	// The record may have been removed while the request was in flight.
	if i := domain.IndexOf(s.tasks, id); i >= 0 {
		s.tasks[i] = stored
	}
	s.mu.Unlock()

	s.logger.Info(id, logCategory, "task updated")
	return stored.Clone(), nil
}
