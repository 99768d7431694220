// Package cmd provides the Cobra commands for lumen-cycle.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumen-shell/lumen/internal/cli"
	"github.com/lumen-shell/lumen/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "lumen-cycle",
		Short: "Inspect and configure Lumen's window cycling",
		Long: `lumen-cycle - companion CLI for Lumen's Alt-Tab window switcher.

The switcher itself runs inside the shell; this tool inspects its
recorded telemetry and manages its configuration from the terminal.

Use 'lumen-cycle telemetry' to browse recorded desk-switch distances,
or explore the subcommands for configuration management.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
