// Package match provides the command that reconciles an export snapshot
// against the live roster.
package match

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fieldops/rollcall"
	"github.com/fieldops/rollcall/internal/cmd/globals"
	"github.com/fieldops/rollcall/internal/cmd/output"
	"github.com/fieldops/rollcall/pkg/constants"
	"github.com/fieldops/rollcall/pkg/errors"
)

// AppContext defines what the match command needs from the app. Keeping
// the interface local lets tests supply a stub without the full app.
type AppContext interface {
	ClientWithOptions(opts ...rollcall.Option) (rollcall.Client, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the match command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "match <export-file>",
		GroupID: "core",
		Short:   "Match exported persons against live users",
		Args:    cobra.ExactArgs(1),
		Long: `Match loads an export snapshot, pages the full roster out of the live
system, and reports which live users each exported person could be.

Each reported match carries a confidence:
  1.0  normalized email or phone number agrees
  0.9  first and last name agree, confirmed by the zip code
  0.7  first and last name agree with no zip confirmation

Candidates below the threshold are dropped. Nothing is written to the
live system.`,
		Example: `  rollcall match export.json                  # All qualifying matches per person
  rollcall match export.json --best           # One best match per person
  rollcall match export.json --threshold 0.7  # Include name-only matches
  rollcall match export.json -o json          # Machine-readable output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, args[0])
		},
	}

	cmd.Flags().Bool("best", false,
		"Report only the strongest match per person")
	cmd.Flags().Float64("threshold", constants.DefaultMatchThreshold,
		"Minimum confidence for a reported match, in (0.0, 1.0]")
	cmd.Flags().Int("page-size", constants.DefaultPageSize,
		"Users fetched per page while walking the roster")

	return cmd
}

// run executes one reconciliation pass and prints the result.
func run(cmd *cobra.Command, app AppContext, exportPath string) error {
	ctx := cmd.Context()

	best, _ := cmd.Flags().GetBool("best")

	// Only overrides the user asked for; everything else follows config.
	var opts []rollcall.Option
	if cmd.Flags().Changed("threshold") {
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		opts = append(opts, rollcall.WithThreshold(threshold))
	}
	if cmd.Flags().Changed("page-size") {
		pageSize, _ := cmd.Flags().GetInt("page-size")
		if pageSize > constants.MaxPageSize {
			return errors.NewValidationError("page-size", pageSize,
				fmt.Sprintf("must be at most %d", constants.MaxPageSize))
		}
		opts = append(opts, rollcall.WithPageSize(pageSize))
	}

	client, err := app.ClientWithOptions(opts...)
	if err != nil {
		return err
	}

	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	app.Logger().Debug().
		Str("export", exportPath).
		Bool("best", best).
		Msg("Starting match run")

	if best {
		matches, err := client.FindBestMatches(ctx, exportPath)
		if err != nil {
			return err
		}

		if !globalFlags.Quiet {
			matched := 0
			for _, m := range matches {
				if m != nil {
					matched++
				}
			}
			fmt.Fprintf(os.Stderr, "Matched %d of %d people\n", matched, len(matches))
		}

		return output.FormatBest(matches, globalFlags)
	}

	matches, err := client.FindMatches(ctx, exportPath)
	if err != nil {
		return err
	}

	if !globalFlags.Quiet {
		fmt.Fprintf(os.Stderr, "Found matches for %d people\n", len(matches))
	}

	return output.FormatMatches(matches, globalFlags)
}
