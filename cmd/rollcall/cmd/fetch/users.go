package fetch

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldops/rollcall"
	"github.com/fieldops/rollcall/internal/cmd/globals"
	"github.com/fieldops/rollcall/internal/cmd/output"
)

// NewUsersCommand creates the fetch users subcommand using app context.
func NewUsersCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Short:   "Fetch the full live user roster",
		Aliases: []string{"user"},
		Long: `Users pages through every user record in the live system, the same
walk the match command performs, and prints the accumulated roster.`,
		Example: `  rollcall fetch users                  # Whole roster
  rollcall fetch users --user-list 12   # Only members of user list 12
  rollcall fetch users --limit 50       # Stop printing after 50 users
  rollcall fetch users -o wide          # Include chapter, zip, created`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUsers(cmd, app)
		},
	}

	cmd.Flags().IntP("limit", "l", 0,
		"Limit number of users printed (0 means all)")
	cmd.Flags().Int64Slice("user-list", nil,
		"Restrict to members of the given user list IDs")

	return cmd
}

// runUsers walks the roster and prints it.
func runUsers(cmd *cobra.Command, app AppContext) error {
	ctx := cmd.Context()

	limit, _ := cmd.Flags().GetInt("limit")
	lists, _ := cmd.Flags().GetInt64Slice("user-list")

	// CLI options apply after config, so --user-list wins over user_list_ids.
	var opts []rollcall.Option
	if len(lists) > 0 {
		opts = append(opts, rollcall.WithUserLists(lists...))
	}

	client, err := app.ClientWithOptions(opts...)
	if err != nil {
		return err
	}

	app.Logger().Debug().
		Ints64("user_lists", lists).
		Msg("Fetching user roster")

	users, err := client.Users(ctx)
	if err != nil {
		return err
	}

	total := len(users)
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}

	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	if !globalFlags.Quiet {
		if len(users) < total {
			fmt.Fprintf(os.Stderr, "Fetched %d users, showing %d\n", total, len(users))
		} else {
			fmt.Fprintf(os.Stderr, "Fetched %d users\n", total)
		}
	}

	return output.FormatUsers(users, globalFlags)
}
