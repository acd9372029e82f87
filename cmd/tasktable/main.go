// Package main is the entry point for the tasktable CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/runoshun/tasktable/internal/app"
	"github.com/runoshun/tasktable/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

// newRootCommand is swapped in tests.
var newRootCommand func(*app.Container, string) *cobra.Command = cli.NewRootCommand

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container, err := app.New(cwd)
	if err != nil {
		return runWithoutContainer(cwd, args, err)
	}
	defer func() { _ = container.Close() }()

	rootCmd := newRootCommand(container, version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// runWithoutContainer handles a broken configuration. Help, version and the
// config commands still run so the configuration can be inspected and fixed.
func runWithoutContainer(cwd string, args []string, initErr error) error {
	if !canRunWithoutContainer(args) {
		return fmt.Errorf("failed to initialize: %w", initErr)
	}
	rootCmd := newRootCommand(app.NewConfigOnly(cwd), version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func canRunWithoutContainer(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "help", "config":
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
