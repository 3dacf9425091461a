package fetch

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldops/rollcall/internal/cmd/globals"
	"github.com/fieldops/rollcall/internal/cmd/output"
	"github.com/fieldops/rollcall/pkg/crm"
)

// NewEventsCommand creates the fetch events subcommand using app context.
func NewEventsCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Short:   "Fetch scheduled events",
		Aliases: []string{"event"},
		Example: `  rollcall fetch events
  rollcall fetch events --since 1700000000
  rollcall fetch events -o yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEvents(cmd, app)
		},
	}

	globals.AddResourceFlags(cmd)

	return cmd
}

// runEvents lists one page of events.
func runEvents(cmd *cobra.Command, app AppContext) error {
	ctx := cmd.Context()
	flags := globals.ParseResources(cmd)

	client, err := app.CRM()
	if err != nil {
		return err
	}

	page, err := client.ListEvents(ctx, crm.ListParams{
		Limit: flags.Limit,
		Since: flags.Since,
	})
	if err != nil {
		return err
	}

	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	if !globalFlags.Quiet {
		if page.Meta != nil && page.Meta.TotalCount != nil {
			fmt.Fprintf(os.Stderr, "Fetched %d of %d events\n", len(page.Data), *page.Meta.TotalCount)
		} else {
			fmt.Fprintf(os.Stderr, "Fetched %d events\n", len(page.Data))
		}
	}

	return output.FormatEvents(page.Data, globalFlags)
}
