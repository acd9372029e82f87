package rowstore

import (
	"github.com/runoshun/tasktable/internal/domain"
)

// SetFilterText sets the description filter and returns to the first page.
func (s *Store) SetFilterText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.params.FilterText != text {
		s.params.FilterText = text
		s.params.Page = 1
	}
}

// SetSortDirection sets the serial number sort direction.
func (s *Store) SetSortDirection(dir domain.SortDirection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dir == "" {
		dir = domain.SortNone
	}
	s.params.Sort = dir
}

// ToggleSort cycles the sort direction none -> asc -> desc -> none and returns the new one.
func (s *Store) ToggleSort() domain.SortDirection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.Sort = s.params.Sort.Next()
	return s.params.Sort
}

// SetPage selects a page, clamped to [1, TotalPages]. It returns the effective page.
func (s *Store) SetPage(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.Page = domain.ClampPage(n, s.totalPagesLocked())
	return s.params.Page
}

// NextPage advances one page, staying on the last page.
func (s *Store) NextPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := s.totalPagesLocked()
	s.params.Page = domain.ClampPage(domain.ClampPage(s.params.Page, total)+1, total)
	return s.params.Page
}

// PrevPage goes back one page, staying on the first page.
func (s *Store) PrevPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := s.totalPagesLocked()
	s.params.Page = domain.ClampPage(domain.ClampPage(s.params.Page, total)-1, total)
	return s.params.Page
}

// SetPageSize changes the number of rows per page and re-clamps the current page.
func (s *Store) SetPageSize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 {
		n = domain.DefaultPageSize
	}
	s.params.PageSize = n
	s.params.Page = domain.ClampPage(s.params.Page, s.totalPagesLocked())
}

func (s *Store) totalPagesLocked() int {
	return domain.TotalPages(len(domain.FilterTasks(s.tasks, s.params.FilterText)), s.params.PageSize)
}
