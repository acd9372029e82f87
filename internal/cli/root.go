// Package cli provides the command-line interface for tasktable.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/tasktable/internal/app"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for tasktable.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tasktable",
		Short: "Task table client for a remote task resource",
		Long: `tasktable manages task records stored on a remote REST resource.

Running tasktable without a command opens the interactive table: filter,
sort, page, create, edit, delete and reorder rows. The subcommands offer
the same operations for scripts.

The resource location is read from TASKTABLE_API_URL (a .env file in the
working directory is honored) or api.base_url in the config file.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
	)

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	// Task management commands
	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTask

	newCmd := newNewCommand(c)
	newCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	root.AddCommand(
		configCmd,
		listCmd,
		showCmd,
		newCmd,
		editCmd,
		rmCmd,
		importCmd,
		tuiCmd,
	)

	return root
}
