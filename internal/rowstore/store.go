// Package rowstore holds the client-side task collection: the canonical record
// order, the view parameters (filter, sort, page), and the server-confirmed
// create/update/remove operations.
package rowstore

import (
	"sync"

	"github.com/runoshun/tasktable/internal/domain"
)

// logCategory tags every log entry emitted by the store.
const logCategory = "rowstore"

// Store owns the canonical task sequence and the view parameters.
// All methods are safe for concurrent use. Remote calls run without
// holding the lock; their results are applied when they settle.
// Fields are ordered to minimize memory padding.
type Store struct {
	resource domain.TaskResource
	logger   domain.Logger
	clock    domain.Clock
	tasks    []*domain.Task
	params   domain.ViewParams
	mu       sync.RWMutex
}

// New creates an empty Store. A pageSize <= 0 selects domain.DefaultPageSize.
func New(resource domain.TaskResource, logger domain.Logger, clock domain.Clock, pageSize int) *Store {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &Store{
		resource: resource,
		logger:   logger,
		clock:    clock,
		tasks:    []*domain.Task{},
		params: domain.ViewParams{
			Sort:     domain.SortNone,
			Page:     1,
			PageSize: pageSize,
		},
	}
}

// View derives the filtered, sorted and paginated projection of the current state.
// The returned tasks are copies; mutating them does not affect the store.
func (s *Store) View() domain.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Derive(domain.CloneTasks(s.tasks), s.params)
}

// Tasks returns a copy of the canonical sequence.
func (s *Store) Tasks() []*domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneTasks(s.tasks)
}

// Len returns the size of the canonical sequence.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id domain.TaskID) (*domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := domain.IndexOf(s.tasks, id)
	if idx < 0 {
		return nil, false
	}
	return s.tasks[idx].Clone(), true
}

// Params returns the current view parameters.
func (s *Store) Params() domain.ViewParams {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}
