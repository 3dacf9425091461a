// Package output provides common output formatting utilities for CLI commands.
package output

import (
	"os"

	"github.com/fieldops/rollcall/internal/cmd/globals"
	"github.com/fieldops/rollcall/internal/cmd/table"
	"github.com/fieldops/rollcall/pkg/crm"
	"github.com/fieldops/rollcall/pkg/match"
	"github.com/fieldops/rollcall/pkg/people"
)

// FormatMatches handles the common pattern of formatting ranked match
// results for output. This encapsulates the switch logic for different
// output formats.
func FormatMatches(matches map[int64][]match.Match, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	// Transform to output format
	var outputData any
	switch Format(globalFlags.Output) {
	case FormatTable, FormatWide, "":
		outputData = fromTable(table.MatchesToData(matches))
	default:
		outputData = matches
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatBest handles the common pattern of formatting best-match results
// for output. Unmatched persons appear as null in structured formats.
func FormatBest(best map[int64]*match.Match, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	// Transform to output format
	var outputData any
	switch Format(globalFlags.Output) {
	case FormatTable, FormatWide, "":
		outputData = fromTable(table.BestToData(best))
	default:
		outputData = best
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatUsers handles the common pattern of formatting live user records
// for output.
func FormatUsers(users []people.User, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	// Transform to output format
	var outputData any
	switch Format(globalFlags.Output) {
	case FormatTable, FormatWide, "":
		outputData = fromTable(table.UsersToData(users, Format(globalFlags.Output) == FormatWide))
	default:
		outputData = users
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatChapters handles the common pattern of formatting chapters for output.
func FormatChapters(chapters []crm.Chapter, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	// Transform to output format
	var outputData any
	switch Format(globalFlags.Output) {
	case FormatTable, FormatWide, "":
		outputData = fromTable(table.ChaptersToData(chapters))
	default:
		outputData = chapters
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatEvents handles the common pattern of formatting events for output.
func FormatEvents(events []crm.Event, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))

	// Transform to output format
	var outputData any
	switch Format(globalFlags.Output) {
	case FormatTable, FormatWide, "":
		outputData = fromTable(table.EventsToData(events))
	default:
		outputData = events
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatAny handles the common pattern of formatting any data type for output.
// This is useful for commands with custom data structures.
func FormatAny(data any, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Output))
	return formatter.Format(os.Stdout, data)
}

// fromTable converts table.Data into the formatter's Data type.
func fromTable(td table.Data) Data {
	return Data{
		Headers:         td.Headers,
		Rows:            td.Rows,
		ColumnAlignment: td.ColumnAlignment,
	}
}
