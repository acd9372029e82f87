// Package usecase contains application use cases.
package usecase

import (
	"context"

	"github.com/runoshun/tasktable/internal/domain"
	"github.com/runoshun/tasktable/internal/rowstore"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	FilterText string               // Case-insensitive description filter
	Sort       domain.SortDirection // Serial number sort (empty = none)
	Page       int                  // 1-based page, clamped to the available pages
	PageSize   int                  // Rows per page (0 = store default)
	All        bool                 // Ignore paging and return every matching row
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	View domain.View
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	store *rowstore.Store
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store *rowstore.Store) *ListTasks {
	return &ListTasks{store: store}
}

// Execute loads the collection and derives the requested view.
func (uc *ListTasks) Execute(ctx context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	if err := uc.store.Load(ctx); err != nil {
		return nil, err
	}

	if in.All {
		uc.store.SetPageSize(max(uc.store.Len(), 1))
	} else if in.PageSize > 0 {
		uc.store.SetPageSize(in.PageSize)
	}
	uc.store.SetFilterText(in.FilterText)
	uc.store.SetSortDirection(in.Sort)
	uc.store.SetPage(max(in.Page, 1))

	return &ListTasksOutput{View: uc.store.View()}, nil
}
