// Package validate provides the command that checks an export snapshot
// without touching the live system.
package validate

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fieldops/rollcall/internal/cmd/emoji"
	"github.com/fieldops/rollcall/internal/cmd/globals"
	"github.com/fieldops/rollcall/internal/cmd/output"
	"github.com/fieldops/rollcall/internal/cmd/table"
	"github.com/fieldops/rollcall/pkg/export"
	"github.com/fieldops/rollcall/pkg/match"
)

// AppContext defines what the validate command needs from the app.
type AppContext interface {
	Logger() *zerolog.Logger
}

// Summary reports which match keys an export snapshot carries. A record
// with no key at all can never match and is worth knowing about before a
// migration.
type Summary struct {
	Records     int `json:"records" yaml:"records"`
	WithEmail   int `json:"with_email" yaml:"with_email"`
	WithPhone   int `json:"with_phone" yaml:"with_phone"`
	WithName    int `json:"with_name" yaml:"with_name"`
	WithNameZip int `json:"with_name_zip" yaml:"with_name_zip"`
	NoKeys      int `json:"no_keys" yaml:"no_keys"`
}

// NewCommand creates the validate command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "validate <export-file>",
		GroupID: "management",
		Short:   "Validate an export snapshot",
		Args:    cobra.ExactArgs(1),
		Long: `Validate loads an export snapshot, checks every record against the
export schema, and summarizes which match keys the records carry. The
live system is never contacted.`,
		Example: `  rollcall validate export.json
  rollcall validate export.yaml -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, args[0])
		},
	}
}

// run loads the snapshot and prints the key summary. A schema violation
// anywhere in the file surfaces as the command error.
func run(cmd *cobra.Command, app AppContext, path string) error {
	app.Logger().Debug().Str("path", path).Msg("Validating export")

	snapshot, err := export.Load(path)
	if err != nil {
		return err
	}

	summary := summarize(snapshot)

	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	if !globalFlags.Quiet {
		fmt.Fprintf(os.Stderr, "%s %s: %s valid records\n",
			emoji.Success, path, table.FormatNumber(int64(summary.Records)))
	}

	var outputData any
	switch output.Format(globalFlags.Output) {
	case output.FormatTable, output.FormatWide, "":
		outputData = summaryData(summary)
	default:
		outputData = summary
	}

	return output.FormatAny(outputData, globalFlags)
}

// summarize counts the match keys the same way the matcher's index does:
// email and phone must survive normalization, the name key needs both
// first and last name, and zip only counts alongside a name.
func summarize(snapshot *export.Snapshot) Summary {
	s := Summary{Records: len(snapshot.People)}

	for i := range snapshot.People {
		p := &snapshot.People[i]

		_, hasEmail := match.NormalizeEmail(p.Email)
		_, hasPhone := match.NormalizePhone(p.PhoneNumber)
		hasName := match.NormalizeName(p.FirstName) != "" && match.NormalizeName(p.LastName) != ""
		hasZip := strings.TrimSpace(p.PostalCode) != ""

		if hasEmail {
			s.WithEmail++
		}
		if hasPhone {
			s.WithPhone++
		}
		if hasName {
			s.WithName++
		}
		if hasName && hasZip {
			s.WithNameZip++
		}
		if !hasEmail && !hasPhone && !hasName {
			s.NoKeys++
		}
	}

	return s
}

// summaryData renders the summary as a two-column table.
func summaryData(s Summary) output.Data {
	return output.Data{
		Headers: []string{"MATCH KEY", "RECORDS"},
		Rows: [][]string{
			{"total", table.FormatNumber(int64(s.Records))},
			{"email", table.FormatNumber(int64(s.WithEmail))},
			{"phone", table.FormatNumber(int64(s.WithPhone))},
			{"first+last name", table.FormatNumber(int64(s.WithName))},
			{"name confirmed by zip", table.FormatNumber(int64(s.WithNameZip))},
			{"none", table.FormatNumber(int64(s.NoKeys))},
		},
		ColumnAlignment: []table.Align{table.AlignLeft, table.AlignRight},
	}
}
