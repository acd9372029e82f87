package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// DefaultPageSize is the number of rows per page.
const DefaultPageSize = 3

// SortDirection controls the serial number ordering of the derived view.
type SortDirection string

const (
	SortNone SortDirection = "none" // Canonical (stored) order
	SortAsc  SortDirection = "asc"  // Ascending serial number
	SortDesc SortDirection = "desc" // Descending serial number
)

// ParseSortDirection parses user input. An empty string means SortNone.
func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortNone:
		return SortNone, nil
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	}
	return "", fmt.Errorf("%w: %q (want none, asc or desc)", ErrInvalidSort, s)
}

// Next cycles none -> asc -> desc -> none.
func (d SortDirection) Next() SortDirection {
	switch d {
	case SortAsc:
		return SortDesc
	case SortDesc:
		return SortNone
	default:
		return SortAsc
	}
}

// Indicator returns the arrow shown next to the sort control.
func (d SortDirection) Indicator() string {
	switch d {
	case SortAsc:
		return "▲"
	case SortDesc:
		return "▼"
	default:
		return ""
	}
}

// ViewParams holds the parameters of the derived view.
type ViewParams struct {
	FilterText string
	Sort       SortDirection
	Page       int // 1-based
	PageSize   int
}

// View is the filtered, sorted and paginated projection of the canonical sequence.
type View struct {
	Filtered    []*Task // Records whose description matches the filter, canonical order
	Sorted      []*Task // Filtered, ordered by the sort direction
	Page        []*Task // Window of Sorted for the current page
	Params      ViewParams
	CurrentPage int // Effective page after clamping
	TotalPages  int // Always >= 1
	PageStart   int // Offset of Page within Sorted
	Total       int // Size of the canonical sequence
}

// RowNumber returns the 1-based position within Sorted of the i-th visible row.
func (v View) RowNumber(i int) int {
	return v.PageStart + i + 1
}

// Derive computes the view of tasks under the given parameters.
// Out-of-range pages are clamped to [1, TotalPages].
func Derive(tasks []*Task, p ViewParams) View {
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.Sort == "" {
		p.Sort = SortNone
	}

	filtered := FilterTasks(tasks, p.FilterText)
	sorted := SortTasks(filtered, p.Sort)
	total := TotalPages(len(filtered), p.PageSize)
	page := ClampPage(p.Page, total)

	start := min((page-1)*p.PageSize, len(sorted))
	end := min(start+p.PageSize, len(sorted))

	return View{
		Filtered:    filtered,
		Sorted:      sorted,
		Page:        sorted[start:end:end],
		Params:      p,
		CurrentPage: page,
		TotalPages:  total,
		PageStart:   start,
		Total:       len(tasks),
	}
}

// FilterTasks returns the tasks whose description contains text, ignoring case.
// An empty filter matches every task.
func FilterTasks(tasks []*Task, text string) []*Task {
	needle := strings.ToLower(text)
	out := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Description), needle) {
			out = append(out, t)
		}
	}
	return out
}

// SortTasks returns a copy of tasks ordered by serial number, ties broken by id.
// SortNone keeps the input order.
func SortTasks(tasks []*Task, dir SortDirection) []*Task {
	out := slices.Clone(tasks)
	if dir != SortAsc && dir != SortDesc {
		return out
	}
	slices.SortStableFunc(out, func(a, b *Task) int {
		c := cmp.Or(
			cmp.Compare(a.SerialNo, b.SerialNo),
			strings.Compare(string(a.ID), string(b.ID)),
		)
		if dir == SortDesc {
			return -c
		}
		return c
	})
	return out
}

// TotalPages returns ceil(n/pageSize), at least 1.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return max(1, (n+pageSize-1)/pageSize)
}

// ClampPage limits page to [1, total].
func ClampPage(page, total int) int {
	return max(1, min(page, max(total, 1)))
}

// MoveTask removes the task at from and reinserts it at to, in place.
func MoveTask(tasks []*Task, from, to int) error {
	if from < 0 || from >= len(tasks) || to < 0 || to >= len(tasks) {
		return fmt.Errorf("%w: move %d -> %d (have %d rows)", ErrIndexOutOfRange, from, to, len(tasks))
	}
	if from == to {
		return nil
	}
	moved := tasks[from]
	if from < to {
		copy(tasks[from:to], tasks[from+1:to+1])
	} else {
		copy(tasks[to+1:from+1], tasks[to:from])
	}
	tasks[to] = moved
	return nil
}

// MapVisibleMove translates a move between two visible rows into canonical indices.
// The visible rows are a filtered and paginated subsequence of canonical, so positions are
// resolved through the ids of the moved row and the row it is dropped onto.
func MapVisibleMove(visibleFrom, visibleTo int, visible, canonical []*Task) (from, to int, err error) {
	if visibleFrom < 0 || visibleFrom >= len(visible) || visibleTo < 0 || visibleTo >= len(visible) {
		return 0, 0, fmt.Errorf("%w: visible move %d -> %d (have %d rows)", ErrIndexOutOfRange, visibleFrom, visibleTo, len(visible))
	}
	from = IndexOf(canonical, visible[visibleFrom].ID)
	to = IndexOf(canonical, visible[visibleTo].ID)
	if from < 0 || to < 0 {
		return 0, 0, ErrTaskNotFound
	}
	return from, to, nil
}
