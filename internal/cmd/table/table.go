// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fieldops/rollcall/internal/cmd/emoji"
	"github.com/fieldops/rollcall/pkg/crm"
	"github.com/fieldops/rollcall/pkg/match"
	"github.com/fieldops/rollcall/pkg/people"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// MatchesToData converts ranked match results to table format.
// Each candidate gets its own row; rows are grouped by person ID in
// ascending order with candidates kept in their ranked order.
func MatchesToData(matches map[int64][]match.Match) Data {
	headers := []string{"PERSON", "USER", "CONFIDENCE"}

	rows := make([][]string, 0, len(matches))
	for _, personID := range sortedKeys(matches) {
		for _, m := range matches[personID] {
			rows = append(rows, []string{
				strconv.FormatInt(personID, 10),
				strconv.FormatInt(m.UserID, 10),
				FormatConfidence(m.Confidence),
			})
		}
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignRight, AlignCenter},
	}
}

// BestToData converts best-match results to table format, one row per
// exported person in ascending ID order. Unmatched persons keep their row
// with a placeholder so absence is visible in the output.
func BestToData(best map[int64]*match.Match) Data {
	headers := []string{"PERSON", "USER", "CONFIDENCE", "STATUS"}

	rows := make([][]string, 0, len(best))
	for _, personID := range sortedKeys(best) {
		m := best[personID]
		if m == nil {
			rows = append(rows, []string{
				strconv.FormatInt(personID, 10),
				emoji.Optional,
				emoji.Optional,
				emoji.Unknown + " unmatched",
			})
			continue
		}
		rows = append(rows, []string{
			strconv.FormatInt(personID, 10),
			strconv.FormatInt(m.UserID, 10),
			FormatConfidence(m.Confidence),
			emoji.Success + " matched",
		})
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignRight, AlignCenter, AlignDefault},
	}
}

// UsersToData converts live user records to table format.
func UsersToData(users []people.User, wide bool) Data {
	headers := []string{"ID", "NAME", "EMAIL", "PHONE"}
	if wide {
		headers = append(headers, "CHAPTER", "ZIP", "CREATED")
	}

	rows := make([][]string, 0, len(users))
	for i := range users {
		user := &users[i]
		row := []string{
			strconv.FormatInt(user.ID, 10),
			valueOrDash(strings.TrimSpace(user.FirstName + " " + user.LastName)),
			valueOrDash(user.Email),
			valueOrDash(user.PhoneNumber),
		}

		if wide {
			chapter := emoji.Optional
			if user.ChapterID != nil {
				chapter = strconv.FormatInt(*user.ChapterID, 10)
			}

			zip := emoji.Optional
			if z, ok := user.Address.Zip(); ok {
				zip = z
			}

			created := emoji.Optional
			if user.CreatedAt != nil {
				created = user.CreatedAt.Format(time.DateOnly)
			}

			row = append(row, chapter, zip, created)
		}

		rows = append(rows, row)
	}

	return Data{
		Headers: headers,
		Rows:    rows,
	}
}

// ChaptersToData converts chapters to table format.
func ChaptersToData(chapters []crm.Chapter) Data {
	headers := []string{"ID", "NAME", "ORGANIZATION", "PHONE"}

	rows := make([][]string, 0, len(chapters))
	for _, chapter := range chapters {
		rows = append(rows, []string{
			strconv.FormatInt(chapter.ID, 10),
			valueOrDash(chapter.Name),
			strconv.FormatInt(chapter.OrganizationID, 10),
			valueOrDash(chapter.ChapterPhoneNumber),
		})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
	}
}

// EventsToData converts events to table format.
func EventsToData(events []crm.Event) Data {
	headers := []string{"ID", "TITLE", "TYPE", "LOCATION", "RSVPS"}

	rows := make([][]string, 0, len(events))
	for _, event := range events {
		rsvps := emoji.Optional
		if event.RSVPsCount != nil {
			rsvps = strconv.Itoa(*event.RSVPsCount)
		}

		rows = append(rows, []string{
			strconv.FormatInt(event.ID, 10),
			valueOrDash(event.Title),
			valueOrDash(event.EventType),
			valueOrDash(event.LocationName),
			rsvps,
		})
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignDefault, AlignDefault, AlignDefault, AlignCenter},
	}
}

// FormatConfidence renders a match confidence with a stable two-decimal form.
func FormatConfidence(confidence float64) string {
	return strconv.FormatFloat(confidence, 'f', 2, 64)
}

// FormatNumber formats large numbers with comma separators.
func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 {
		return str
	}

	// Add commas every 3 digits
	result := ""
	for i, r := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(r)
	}
	return result
}

// valueOrDash substitutes a placeholder for blank cells.
func valueOrDash(s string) string {
	if s == "" {
		return emoji.Optional
	}
	return s
}

// sortedKeys returns the map's person IDs in ascending order.
func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
