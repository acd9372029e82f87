package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/runoshun/tasktable/internal/app"
	"github.com/runoshun/tasktable/internal/usecase"
)

// newImportCommand creates the import command for creating tasks from a YAML file.
func newImportCommand(c *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Create tasks from a YAML file",
		Long: `Create tasks from a YAML file ("-" reads standard input).

The file holds a list of task records using the field names of the resource
("title" is accepted for "description"). Missing status and priority take the
form defaults. Every record is validated before any task is created.

File format:
  - serialNo: 1
    title: Write report
    assignedMembers: [teamMember1, teamMember3]
    dueDate: 2026-11-01
    estimatedHours: 4
    priority: high

The output of "tasktable list --all --format yaml" is a valid import file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTasks(c); err != nil {
				return err
			}

			content, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			uc := c.ImportTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{
				Content: content,
				DryRun:  dryRun,
			})
			w := cmd.OutOrStdout()
			if out != nil {
				if dryRun {
					_, _ = fmt.Fprintln(w, "Dry run - tasks that would be created:")
					_, _ = fmt.Fprintln(w, "")
				}
				printTaskTable(w, out.Tasks, 0)
				if !dryRun {
					_, _ = fmt.Fprintf(w, "\nCreated %d task(s)\n", len(out.Tasks))
				}
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and show the tasks without creating them")

	return cmd
}

// readInput reads a file, or stdin when path is "-".
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return content, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return content, nil
}
