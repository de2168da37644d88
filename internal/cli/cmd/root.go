// Package cmd provides Cobra CLI commands for glide.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/glide/internal/cli"
	"github.com/bnema/glide/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "glide",
		Short: "A small GTK4 media player window",
		Long: `Glide - a GTK4 media player window.

Run 'glide' without arguments to open the player. Press F11 or F to toggle
full screen and Escape to leave it. While full screen the toolbar and
pointer hide after a quiet period and display sleep is held off.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
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

// playCmd is a placeholder for help - actual execution is in main.go
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the player window",
	Long:  `Open the GTK4 player window. Running glide with no arguments does the same.`,
	Run: func(_ *cobra.Command, _ []string) {
		// This is handled by main.go before cobra runs
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
