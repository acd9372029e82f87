package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/runoshun/tasktable/internal/domain"
	"github.com/runoshun/tasktable/internal/infra/taskfile"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// checkFormat validates a --format value.
func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
}

// printTasks writes tasks in the requested format.
// The table form numbers rows from start+1 to match the interactive view.
func printTasks(w io.Writer, tasks []*domain.Task, start int, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, tasks)
	case formatYAML:
		return taskfile.Encode(w, tasks)
	default:
		printTaskTable(w, tasks, start)
		return nil
	}
}

// printTaskTable prints tasks in aligned columns.
func printTaskTable(w io.Writer, tasks []*domain.Task, start int) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "NO\tSERIAL\tID\tTITLE\tSTATUS\tMEMBERS\tDUE\tASSIGNED\tHOURS\tPRIORITY\tCREATED")

	for i, task := range tasks {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			start+i+1,
			task.SerialNo,
			task.ID,
			task.Description,
			task.Status.Display(),
			orDash(task.AssignedMembers.Display()),
			orDash(task.DueDate.String()),
			yesNo(task.IsAssigned),
			task.EstimatedHours,
			task.Priority.Display(),
			orDash(task.CreatedOn.String()),
		)
	}
}

// printTaskDetails prints a single task as labeled fields.
func printTaskDetails(w io.Writer, task *domain.Task) {
	_, _ = fmt.Fprintf(w, "# Task %s: %s\n\n", task.ID, task.Description)

	_, _ = fmt.Fprintf(w, "Serial: %s\n", task.SerialNo)
	_, _ = fmt.Fprintf(w, "Status: %s\n", task.Status.Display())
	_, _ = fmt.Fprintf(w, "Priority: %s\n", task.Priority.Display())
	if len(task.AssignedMembers) > 0 {
		_, _ = fmt.Fprintf(w, "Members: %s\n", task.AssignedMembers.Display())
	} else {
		_, _ = fmt.Fprintln(w, "Members: none")
	}
	_, _ = fmt.Fprintf(w, "Assigned: %s\n", yesNo(task.IsAssigned))
	_, _ = fmt.Fprintf(w, "Due: %s\n", orDash(task.DueDate.String()))
	_, _ = fmt.Fprintf(w, "Estimated hours: %s\n", task.EstimatedHours)
	_, _ = fmt.Fprintf(w, "Created: %s\n", orDash(task.CreatedOn.String()))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
