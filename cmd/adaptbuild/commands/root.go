// Package commands implements the CLI commands for the adaptbuild tool.
package commands

import (
	"context"

	"github.com/Milun/adapt-framework/internal/app"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for adaptbuild.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "adaptbuild",
		Short:         "Bundle course modules into a single deployable file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// buildOptions reads the shared run-mode flags from a command.
func buildOptions(cmd *cobra.Command) app.BuildOptions {
	skipCache, _ := cmd.Flags().GetBool("skip-cache")
	check, _ := cmd.Flags().GetBool("check")
	return app.BuildOptions{SkipCache: skipCache, Check: check}
}

func addRunModeFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("skip-cache", false, "Disable cache restore and save for this run")
	cmd.Flags().Bool("check", false, "Enable the type-check pass")
}
