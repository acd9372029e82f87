package rowstore

import (
	"context"
	"fmt"

	"github.com/runoshun/tasktable/internal/domain"
)

// Create sends a new record to the resource and appends the confirmed record.
// Any client-side id is discarded; createdOn defaults to today.
func (s *Store) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	draft := task.Clone()
	draft.ID = ""
	if draft.CreatedOn.IsZero() {
		draft.CreatedOn = domain.DateOf(s.clock.Now())
	}
	draft.Normalize()

	created, err := s.resource.Create(ctx, draft)
	if err != nil {
		s.logger.Error("", logCategory, fmt.Sprintf("create failed: %v", err))
		return nil, fmt.Errorf("create task: %w", err)
	}
	if created == nil || created.ID == "" {
		s.logger.Error("", logCategory, "create response has no id")
		return nil, fmt.Errorf("create task: %w: response has no id", domain.ErrRemote)
	}

	stored := created.Clone()
	stored.Normalize()

	s.mu.Lock()
	if idx := domain.IndexOf(s.tasks, stored.ID); idx >= 0 {
		s.tasks[idx] = stored
	} else {
		s.tasks = append(s.tasks, stored)
	}
	s.mu.Unlock()

	s.logger.Info(stored.ID, logCategory, fmt.Sprintf("task created: %q", stored.Description))
	return stored.Clone(), nil
}
