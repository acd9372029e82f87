package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/tasktable/internal/app"
	"github.com/runoshun/tasktable/internal/domain"
	"github.com/runoshun/tasktable/internal/usecase"
)

var errNoTaskResource = errors.New("task resource is not configured (check TASKTABLE_API_URL or api.base_url)")

// requireTasks fails commands that talk to the task resource when the
// container was built without one.
func requireTasks(c *app.Container) error {
	if c == nil || c.Tasks == nil {
		return errNoTaskResource
	}
	return nil
}

// taskFlags holds the field flags shared by new and edit.
type taskFlags struct {
	serial   string
	title    string
	due      string
	hours    string
	status   string
	priority string
	members  []string
	assigned bool
}

func (f *taskFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.serial, "serial", "", "Serial number")
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "Task title (description)")
	cmd.Flags().StringArrayVarP(&f.members, "member", "m", nil, "Assigned team member (repeatable, or comma-separated)")
	cmd.Flags().StringVar(&f.due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.hours, "hours", "", "Estimated hours")
	cmd.Flags().StringVar(&f.status, "status", "", "Status: uninitiated, inProgress, completed")
	cmd.Flags().StringVar(&f.priority, "priority", "", "Priority: low, medium, high")
	cmd.Flags().BoolVar(&f.assigned, "assigned", false, "Mark the task as handed out")
}

// patch returns the fields whose flags were given on the command line.
func (f *taskFlags) patch(cmd *cobra.Command) usecase.TaskPatch {
	var p usecase.TaskPatch
	changed := cmd.Flags().Changed
	if changed("serial") {
		p.SerialNo = &f.serial
	}
	if changed("title") {
		p.Description = &f.title
	}
	if changed("member") {
		p.AssignedMembers = f.members
	}
	if changed("due") {
		p.DueDate = &f.due
	}
	if changed("hours") {
		p.EstimatedHours = &f.hours
	}
	if changed("status") {
		p.Status = &f.status
	}
	if changed("priority") {
		p.Priority = &f.priority
	}
	if changed("assigned") {
		p.IsAssigned = &f.assigned
	}
	return p
}

// parseTaskID parses a task id argument. A leading '#' is accepted.
func parseTaskID(s string) (domain.TaskID, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return "", errors.New("task ID is empty")
	}
	return domain.TaskID(s), nil
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Filter   string
		Sort     string
		Format   string
		Page     int
		PageSize int
		All      bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display one page of the task table.

Rows are filtered by title (case-insensitive substring), optionally sorted
by serial number, and paginated. A page past the end shows the last page.

Examples:
  # First page in server order
  tasktable list

  # Tasks mentioning "report", highest serial first
  tasktable list --filter report --sort desc

  # Every task as YAML (re-importable with "tasktable import")
  tasktable list --all --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireTasks(c); err != nil {
				return err
			}
			if err := checkFormat(opts.Format); err != nil {
				return err
			}
			sort, err := domain.ParseSortDirection(opts.Sort)
			if err != nil {
				return err
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{
				FilterText: opts.Filter,
				Sort:       sort,
				Page:       opts.Page,
				PageSize:   opts.PageSize,
				All:        opts.All,
			})
			if err != nil {
				return err
			}

			v := out.View
			if err := printTasks(cmd.OutOrStdout(), v.Page, v.PageStart, opts.Format); err != nil {
				return err
			}
			if opts.Format == formatTable {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d (%d of %d tasks match)\n",
					v.CurrentPage, v.TotalPages, len(v.Filtered), v.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Filter, "filter", "f", "", "Show only tasks whose title contains this text")
	cmd.Flags().StringVarP(&opts.Sort, "sort", "s", "none", "Sort by serial number: none, asc, desc")
	cmd.Flags().IntVarP(&opts.Page, "page", "p", 1, "Page to show")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", 0, "Rows per page (default from config)")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Show all matching tasks on one page")
	cmd.Flags().StringVarP(&opts.Format, "format", "o", formatTable, "Output format: table, json, yaml")

	return cmd
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display task details",
		Long: `Display all fields of a single task.

Examples:
  tasktable show 3
  tasktable show 3 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTasks(c); err != nil {
				return err
			}
			if err := checkFormat(format); err != nil {
				return err
			}
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: taskID})
			if err != nil {
				return err
			}

			switch format {
			case formatJSON:
				return writeJSON(cmd.OutOrStdout(), out.Task)
			case formatYAML:
				return printTasks(cmd.OutOrStdout(), []*domain.Task{out.Task}, 0, format)
			default:
				printTaskDetails(cmd.OutOrStdout(), out.Task)
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", formatTable, "Output format: table, json, yaml")

	return cmd
}

// newNewCommand creates the new command for creating tasks.
func newNewCommand(c *app.Container) *cobra.Command {
	var flags taskFlags

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new task",
		Long: `Create a new task on the remote resource.

Required: --serial, --title, --member, --due and --hours.
Status defaults to inProgress, priority to low, and the creation date to today.

Examples:
  tasktable new --serial 7 --title "Write report" --member 1 --member 3 \
    --due 2026-11-01 --hours 4 --priority high`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireTasks(c); err != nil {
				return err
			}

			draft := domain.NewTaskDraft(c.Clock.Now())
			flags.patch(cmd).Apply(&draft)

			uc := c.NewTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.NewTaskInput{Draft: draft})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s: %s\n", out.Task.ID, out.Task.Description)
			return nil
		},
	}

	flags.bind(cmd)

	return cmd
}

// newEditCommand creates the edit command for updating tasks.
func newEditCommand(c *app.Container) *cobra.Command {
	var flags taskFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing task",
		Long: `Edit an existing task. Only the fields given as flags change.

Examples:
  # Mark a task completed
  tasktable edit 3 --status completed

  # Replace the assigned members
  tasktable edit 3 --member 2,4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTasks(c); err != nil {
				return err
			}
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.EditTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.EditTaskInput{
				TaskID: taskID,
				Patch:  flags.patch(cmd),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s: %s\n", out.Task.ID, out.Task.Description)
			return nil
		},
	}

	flags.bind(cmd)

	return cmd
}

// newRmCommand creates the rm command for deleting tasks.
func newRmCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long: `Delete a task from the remote resource.

Examples:
  tasktable rm 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTasks(c); err != nil {
				return err
			}
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.DeleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: taskID})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s: %s\n", out.Task.ID, out.Task.Description)
			return nil
		},
	}

	return cmd
}
