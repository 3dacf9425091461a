// Package fetch provides commands for retrieving resources from the live
// system's API.
package fetch

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fieldops/rollcall"
	"github.com/fieldops/rollcall/pkg/crm"
)

// AppContext defines what the fetch commands need from the app.
type AppContext interface {
	ClientWithOptions(opts ...rollcall.Option) (rollcall.Client, error)
	CRM() (*crm.Client, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the fetch command using app context.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fetch [resource]",
		GroupID: "core",
		Short:   "Retrieve resources from the live system",
		Long: `Fetch retrieves live data from the organizing system's API.

This requires an API key and base URL to be configured either through
environment variables or the configuration file.`,
		Example: `  rollcall fetch users
  rollcall fetch users --user-list 12
  rollcall fetch chapters
  rollcall fetch events --since 1700000000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	cmd.AddCommand(NewUsersCommand(app))
	cmd.AddCommand(NewChaptersCommand(app))
	cmd.AddCommand(NewEventsCommand(app))

	return cmd
}
