package rowstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/tasktable/internal/domain"
)

// Remove deletes the record with the given id once the resource confirms it.
// An id that is not in the collection is a no-op. A not-found answer from the
// resource counts as a confirmed deletion.
func (s *Store) Remove(ctx context.Context, id domain.TaskID) error {
	s.mu.RLock()
	present := domain.IndexOf(s.tasks, id) >= 0
	s.mu.RUnlock()

	if !present {
		s.logger.Debug(id, logCategory, "remove ignored: task not in collection")
		return nil
	}

	if err := s.resource.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrTaskNotFound) {
			s.logger.Error(id, logCategory, fmt.Sprintf("delete failed: %v", err))
			return fmt.Errorf("delete task %s: %w", id, err)
		}
		s.logger.Warn(id, logCategory, "task already gone on the server")
	}

	s.mu.Lock()
	if i := domain.IndexOf(s.tasks, id); i >= 0 {
		s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	}
	s.params.Page = domain.ClampPage(s.params.Page, s.totalPagesLocked())
	s.mu.Unlock()

	s.logger.Info(id, logCategory, "task deleted")
	return nil
}
