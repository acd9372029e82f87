package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/tasktable/internal/app"
	"github.com/runoshun/tasktable/internal/tui"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// It is the same as running tasktable without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive task table.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
	return cmd
}

// launchTUI runs the task table over a fresh row store until the user quits.
func launchTUI(c *app.Container) error {
	if err := requireTasks(c); err != nil {
		return err
	}
	model := tui.New(c.NewRowStore(), c.Clock)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
