// Package migrate provides commands that write export history into the
// live system.
package migrate

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fieldops/rollcall"
)

// AppContext defines what the migrate commands need from the app.
type AppContext interface {
	ClientWithOptions(opts ...rollcall.Option) (rollcall.Client, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the migrate command using app context.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "migrate [resource]",
		GroupID: "management",
		Short:   "Write export history into the live system",
		Long: `Migrate copies engagement history from an export snapshot onto the
matched live users. These are the only commands that write to the live
system; everything else is read-only.`,
		Example: `  rollcall migrate notes export.json --dry-run
  rollcall migrate notes export.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	cmd.AddCommand(NewNotesCommand(app))

	return cmd
}
