package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldops/rollcall/cmd/rollcall/cmd/fetch"
	"github.com/fieldops/rollcall/cmd/rollcall/cmd/match"
	"github.com/fieldops/rollcall/cmd/rollcall/cmd/migrate"
	"github.com/fieldops/rollcall/cmd/rollcall/cmd/validate"
	"github.com/fieldops/rollcall/internal/cmd/globals"
)

// Execute runs the rollcall CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	// Create root command with app context
	rootCmd := a.createRootCommand()

	// Set arguments
	rootCmd.SetArgs(args)

	// Execute with context
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "rollcall",
		Short:   "Reconcile exported person records with live CRM users",
		Version: a.version,
		Long: `Rollcall reconciles person records from an organizing-system export
with the membership CRM's live user records.

Matching is deterministic and rule-based: exact email or phone agreement
pairs records at full confidence, and name matches are confirmed by zip
code where possible. Match runs never write to the live system; only the
migrate commands do, and those say so explicitly.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	// Add global flags
	a.flags = globals.AddFlags(rootCmd)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "",
		"config file (default is $HOME/.rollcall.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"log level: trace, debug, info, warn, error (overrides -v/-q)")

	// Customize version output to match version subcommand
	rootCmd.SetVersionTemplate("rollcall {{.Version}}\n")

	// Register all commands
	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(_ *cobra.Command, _ []string) error {
	// An explicit --config replaces the default config search
	if a.configFile != "" {
		config, err := LoadConfig(a.configFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	// Flag values take precedence over config file and env vars
	a.config.UpdateFromFlags(a.flags.Verbose, a.flags.Quiet, a.flags.NoColor, a.flags.Output, a.logLevel)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// registerCommands registers all subcommands with the root command.
// This is where we wire up all the command handlers.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(match.NewCommand(a))
	rootCmd.AddCommand(fetch.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(validate.NewCommand(a))
	rootCmd.AddCommand(migrate.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.newVersionCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
