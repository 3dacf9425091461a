package fetch

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldops/rollcall/internal/cmd/globals"
	"github.com/fieldops/rollcall/internal/cmd/output"
	"github.com/fieldops/rollcall/pkg/crm"
)

// NewChaptersCommand creates the fetch chapters subcommand using app context.
func NewChaptersCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "chapters",
		Short:   "Fetch organizing chapters",
		Aliases: []string{"chapter"},
		Example: `  rollcall fetch chapters
  rollcall fetch chapters --limit 50
  rollcall fetch chapters -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChapters(cmd, app)
		},
	}

	globals.AddResourceFlags(cmd)

	return cmd
}

// runChapters lists one page of chapters.
func runChapters(cmd *cobra.Command, app AppContext) error {
	ctx := cmd.Context()
	flags := globals.ParseResources(cmd)

	client, err := app.CRM()
	if err != nil {
		return err
	}

	page, err := client.ListChapters(ctx, crm.ListParams{
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
			fmt.Fprintf(os.Stderr, "Fetched %d of %d chapters\n", len(page.Data), *page.Meta.TotalCount)
		} else {
			fmt.Fprintf(os.Stderr, "Fetched %d chapters\n", len(page.Data))
		}
	}

	return output.FormatChapters(page.Data, globalFlags)
}
