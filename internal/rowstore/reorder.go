package rowstore

import (
	"fmt"

	"github.com/runoshun/tasktable/internal/domain"
)

// Reorder moves the record at canonical index from to canonical index to.
// The move is local only; the resource has no order field.
func (s *Store) Reorder(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reorderLocked(from, to)
}

// ReorderVisible moves a row within the current page window. Indices are
// positions in View().Page. Rejected while a sort direction is active, since
// the visible order then differs from the stored order.
func (s *Store) ReorderVisible(visibleFrom, visibleTo int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.params.Sort != domain.SortNone {
		return domain.ErrReorderSorted
	}
	view := domain.Derive(s.tasks, s.params)
	from, to, err := domain.MapVisibleMove(visibleFrom, visibleTo, view.Page, s.tasks)
	if err != nil {
		return fmt.Errorf("reorder: %w", err)
	}
	return s.reorderLocked(from, to)
}

func (s *Store) reorderLocked(from, to int) error {
	if err := domain.MoveTask(s.tasks, from, to); err != nil {
		return fmt.Errorf("reorder: %w", err)
	}
	if from != to {
		s.logger.Debug(s.tasks[to].ID, logCategory, fmt.Sprintf("moved row %d -> %d", from, to))
	}
	return nil
}
