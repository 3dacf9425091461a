package migrate

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldops/rollcall"
	"github.com/fieldops/rollcall/internal/cmd/emoji"
	"github.com/fieldops/rollcall/internal/cmd/globals"
	"github.com/fieldops/rollcall/internal/cmd/output"
	"github.com/fieldops/rollcall/internal/utils/ptr"
	"github.com/fieldops/rollcall/pkg/constants"
	"github.com/fieldops/rollcall/pkg/crm"
	"github.com/fieldops/rollcall/pkg/export"
	"github.com/fieldops/rollcall/pkg/people"
)

// Result summarizes one notes migration run.
type Result struct {
	People       int  `json:"people" yaml:"people"`
	WithNotes    int  `json:"with_notes" yaml:"with_notes"`
	Unmatched    int  `json:"unmatched" yaml:"unmatched"`
	NotesCreated int  `json:"notes_created" yaml:"notes_created"`
	NotesFailed  int  `json:"notes_failed" yaml:"notes_failed"`
	DryRun       bool `json:"dry_run" yaml:"dry_run"`
}

// NewNotesCommand creates the migrate notes subcommand using app context.
func NewNotesCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes <export-file>",
		Short: "Copy exported notes onto matched live users",
		Args:  cobra.ExactArgs(1),
		Long: `Notes best-matches the export against the live roster, then creates
each matched person's notes on the corresponding live user, preserving
the original note timestamps. Persons without a match at or above the
threshold are skipped with a warning; a failed note is logged and the
run continues.`,
		Example: `  rollcall migrate notes export.json --dry-run   # Preview without writing
  rollcall migrate notes export.json
  rollcall migrate notes export.json --threshold 0.9`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotes(cmd, app, args[0])
		},
	}

	cmd.Flags().Bool("dry-run", false,
		"Show what would be created without making modifications")
	cmd.Flags().Float64("threshold", constants.DefaultMatchThreshold,
		"Minimum confidence for a usable match, in (0.0, 1.0]")

	return cmd
}

// runNotes executes the migration.
func runNotes(cmd *cobra.Command, app AppContext, exportPath string) error {
	ctx := cmd.Context()

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	var opts []rollcall.Option
	if cmd.Flags().Changed("threshold") {
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		opts = append(opts, rollcall.WithThreshold(threshold))
	}

	client, err := app.ClientWithOptions(opts...)
	if err != nil {
		return err
	}

	// The snapshot is read twice: FindBestMatches loads its own copy for
	// matching, and the notes themselves come from this one.
	snapshot, err := export.Load(exportPath)
	if err != nil {
		return err
	}

	best, err := client.FindBestMatches(ctx, exportPath)
	if err != nil {
		return err
	}

	logger := app.Logger()
	result := Result{People: len(snapshot.People), DryRun: dryRun}

	for i := range snapshot.People {
		person := &snapshot.People[i]
		if len(person.Notes) == 0 {
			continue
		}
		result.WithNotes++

		m := best[person.ID]
		if m == nil {
			result.Unmatched++
			logger.Warn().
				Int64("person_id", person.ID).
				Str("name", person.Name).
				Int("notes", len(person.Notes)).
				Msg("No live match; skipping notes")
			continue
		}

		for j := range person.Notes {
			note := &person.Notes[j]

			if dryRun {
				logger.Info().
					Int64("person_id", person.ID).
					Int64("user_id", m.UserID).
					Int64("note_id", note.ID).
					Msg("Would create note")
				result.NotesCreated++
				continue
			}

			if _, err := createNote(ctx, client.CRM(), m.UserID, note); err != nil {
				result.NotesFailed++
				logger.Error().Err(err).
					Int64("person_id", person.ID).
					Int64("user_id", m.UserID).
					Int64("note_id", note.ID).
					Msg("Failed to create note")
				continue
			}
			result.NotesCreated++
		}
	}

	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	switch output.Format(globalFlags.Output) {
	case output.FormatTable, output.FormatWide, "":
		if !globalFlags.Quiet {
			printSummary(result)
		}
		return nil
	default:
		return output.FormatAny(result, globalFlags)
	}
}

// createNote writes one exported note onto a live user, carrying the
// original author and creation time when present.
func createNote(ctx context.Context, c *crm.Client, userID int64, note *people.Note) (*crm.UserNote, error) {
	req := crm.UserNoteCreate{
		UserID:  userID,
		Content: note.Content,
	}
	if note.AgentUserID != 0 {
		req.AgentID = ptr.Int64(note.AgentUserID)
	}
	if !note.CreatedAt.IsZero() {
		req.CreatedAt = ptr.Int64(note.CreatedAt.Unix())
	}
	return c.CreateUserNote(ctx, req)
}

// printSummary writes the human-readable run summary to stderr.
func printSummary(result Result) {
	verb := "Created"
	if result.DryRun {
		fmt.Fprintf(os.Stderr, "Dry run mode - no changes were made\n")
		verb = "Would create"
	}

	matched := result.WithNotes - result.Unmatched
	fmt.Fprintf(os.Stderr, "%s %d notes for %d people\n", verb, result.NotesCreated, matched)

	if result.Unmatched > 0 {
		fmt.Fprintf(os.Stderr, "%s %d people with notes had no live match\n",
			emoji.Warning, result.Unmatched)
	}
	if result.NotesFailed > 0 {
		fmt.Fprintf(os.Stderr, "%s %d notes failed\n", emoji.Error, result.NotesFailed)
	}
}
