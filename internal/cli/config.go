package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/runoshun/tasktable/internal/app"
	"github.com/runoshun/tasktable/internal/domain"
	"github.com/runoshun/tasktable/internal/infra/config"
	"github.com/runoshun/tasktable/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage tasktable configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	var pathOnly bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Sources, lowest precedence first: built-in defaults, the global config file,
the file named by TASKTABLE_CONFIG, then environment variables
(TASKTABLE_API_URL, TASKTABLE_LOG_LEVEL). A .env file in the working
directory is loaded into the environment first.

This command works even when the configuration is broken, and reports why.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			printConfigSource(w, out.GlobalConfig)
			if out.ExplicitConfig.Path != "" {
				printConfigSource(w, out.ExplicitConfig)
			}

			if pathOnly {
				return nil
			}

			_, _ = fmt.Fprintln(w)
			if out.LoadErr != nil {
				_, _ = fmt.Fprintf(w, "[Error]\n%v\n", out.LoadErr)
				return nil
			}

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			rendered, err := config.Render(out.Effective)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(w, rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&pathOnly, "path", false, "Show only the config file locations")

	return cmd
}

func printConfigSource(w io.Writer, info domain.ConfigInfo) {
	switch {
	case info.Path == "":
		_, _ = fmt.Fprintln(w, "- (config directory unavailable)")
	case info.Exists:
		_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
	default:
		_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate configuration file",
		Long: `Generate the global configuration file with default values
(~/.config/tasktable/config.toml, or under $XDG_CONFIG_HOME).

Error conditions:
- Target file already exists: error`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitConfigInput{})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	return cmd
}
