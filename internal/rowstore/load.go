package rowstore

import (
	"context"
	"fmt"

	"github.com/runoshun/tasktable/internal/domain"
)

// Load fetches every record from the resource and replaces the canonical sequence.
// Records are normalized and duplicate ids are dropped, keeping the first.
// On failure the state is left unchanged.
func (s *Store) Load(ctx context.Context) error {
	fetched, err := s.resource.List(ctx)
	if err != nil {
		s.logger.Error("", logCategory, fmt.Sprintf("load failed: %v", err))
		return fmt.Errorf("load tasks: %w", err)
	}

	tasks := make([]*domain.Task, 0, len(fetched))
	seen := make(map[domain.TaskID]struct{}, len(fetched))
	for _, t := range fetched {
		if t == nil {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			s.logger.Warn(t.ID, logCategory, "duplicate id in resource, keeping first record")
			continue
		}
		seen[t.ID] = struct{}{}
		c := t.Clone()
		c.Normalize()
		tasks = append(tasks, c)
	}

	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()

	s.logger.Info("", logCategory, fmt.Sprintf("loaded %d tasks", len(tasks)))
	return nil
}
