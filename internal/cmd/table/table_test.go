package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldops/rollcall/internal/cmd/table"
	"github.com/fieldops/rollcall/internal/utils/ptr"
	"github.com/fieldops/rollcall/pkg/match"
	"github.com/fieldops/rollcall/pkg/people"
)

func TestMatchesToData(t *testing.T) {
	matches := map[int64][]match.Match{
		202: {{UserID: 9, Confidence: 0.9}, {UserID: 10, Confidence: 0.7}},
		101: {{UserID: 7, Confidence: 1.0}},
	}

	data := table.MatchesToData(matches)

	require.Equal(t, []string{"PERSON", "USER", "CONFIDENCE"}, data.Headers)
	require.Len(t, data.Rows, 3)

	// Rows are grouped by ascending person ID with candidates in rank order.
	assert.Equal(t, []string{"101", "7", "1.00"}, data.Rows[0])
	assert.Equal(t, []string{"202", "9", "0.90"}, data.Rows[1])
	assert.Equal(t, []string{"202", "10", "0.70"}, data.Rows[2])
}

func TestBestToData(t *testing.T) {
	best := map[int64]*match.Match{
		101: {UserID: 7, Confidence: 1.0},
		104: nil,
	}

	data := table.BestToData(best)

	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"101", "7", "1.00", "✓ matched"}, data.Rows[0])
	assert.Equal(t, []string{"104", "-", "-", "? unmatched"}, data.Rows[1])
}

func TestUsersToData(t *testing.T) {
	users := []people.User{
		{
			ID:          7,
			FirstName:   "Ada",
			LastName:    "Lovelace",
			Email:       "ada@example.org",
			PhoneNumber: "+1 312 555 0117",
			ChapterID:   ptr.Int64(12),
			Address: &people.AddressData{
				Fields: map[string]any{"zip_code": float64(60601)},
			},
		},
		{ID: 8},
	}

	t.Run("default columns", func(t *testing.T) {
		data := table.UsersToData(users, false)

		require.Equal(t, []string{"ID", "NAME", "EMAIL", "PHONE"}, data.Headers)
		require.Len(t, data.Rows, 2)
		assert.Equal(t, []string{"7", "Ada Lovelace", "ada@example.org", "+1 312 555 0117"}, data.Rows[0])
		assert.Equal(t, []string{"8", "-", "-", "-"}, data.Rows[1])
	})

	t.Run("wide columns", func(t *testing.T) {
		data := table.UsersToData(users, true)

		require.Equal(t, []string{"ID", "NAME", "EMAIL", "PHONE", "CHAPTER", "ZIP", "CREATED"}, data.Headers)
		assert.Equal(t, "12", data.Rows[0][4])
		// Numeric zip codes from the mapping form render undecorated.
		assert.Equal(t, "60601", data.Rows[0][5])
		assert.Equal(t, "-", data.Rows[1][5])
	})
}

func TestFormatConfidence(t *testing.T) {
	assert.Equal(t, "1.00", table.FormatConfidence(1.0))
	assert.Equal(t, "0.90", table.FormatConfidence(0.9))
	assert.Equal(t, "0.70", table.FormatConfidence(0.7))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, table.FormatNumber(tt.in))
	}
}
