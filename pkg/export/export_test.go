package export_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldops/rollcall/pkg/errors"
	"github.com/fieldops/rollcall/pkg/export"
)

const exportJSON = `[
  {
    "id": 12,
    "name": "Ada Lovelace",
    "first_name": "Ada",
    "last_name": "Lovelace",
    "email": "Ada@Example.org",
    "phone_number": "(312) 555-0117",
    "postal_code": "60607",
    "membership-status": "member",
    "created_at": "2024-03-01T12:00:00Z",
    "tags": ["volunteer"],
    "notes": [
      {
        "id": 3,
        "content": "Call back about the canvass shift",
        "agent_user_id": 9,
        "created_at": "2024-03-02T08:30:00Z",
        "updated_at": "2024-03-02T08:30:00Z"
      }
    ]
  },
  {
    "id": 13,
    "name": "Grace Hopper",
    "first_name": "Grace",
    "last_name": "Hopper"
  }
]`

// writeSnapshot drops snapshot content into a temp file and returns its path.
func writeSnapshot(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("json snapshot", func(t *testing.T) {
		snap, err := export.Load(writeSnapshot(t, "export.json", exportJSON))
		require.NoError(t, err)
		require.Len(t, snap.People, 2)

		ada := snap.People[0]
		assert.Equal(t, int64(12), ada.ID)
		assert.Equal(t, "Ada", ada.FirstName)
		assert.Equal(t, "Ada@Example.org", ada.Email) // kept raw, matching normalizes later
		assert.Equal(t, "60607", ada.PostalCode)
		assert.Equal(t, "member", ada.MembershipStatus)
		require.Len(t, ada.Notes, 1)
		assert.Equal(t, int64(9), ada.Notes[0].AgentUserID)
		require.NotNil(t, ada.CreatedAt)
		assert.Equal(t, 2024, ada.CreatedAt.Year())

		assert.Equal(t, int64(13), snap.People[1].ID)
		assert.Empty(t, snap.People[1].Email)
	})

	t.Run("yaml snapshot", func(t *testing.T) {
		const doc = `- id: 12
  name: Ada Lovelace
  first_name: Ada
  last_name: Lovelace
  email: ada@example.org
  postal_code: "60607"
- id: 13
  name: Grace Hopper
  first_name: Grace
  last_name: Hopper
`
		for _, name := range []string{"export.yaml", "export.yml"} {
			snap, err := export.Load(writeSnapshot(t, name, doc))
			require.NoError(t, err, name)
			require.Len(t, snap.People, 2, name)
			assert.Equal(t, "ada@example.org", snap.People[0].Email)
			assert.Equal(t, "60607", snap.People[0].PostalCode)
		}
	})

	t.Run("empty export", func(t *testing.T) {
		snap, err := export.Load(writeSnapshot(t, "export.json", `[]`))
		require.NoError(t, err)
		assert.Empty(t, snap.People)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := export.Load(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)

		var ioErr *errors.IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, "read", ioErr.Operation)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := export.Load(writeSnapshot(t, "export.json", `{"id": 12}`))
		require.Error(t, err)

		var parseErr *errors.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "json", parseErr.Format)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := export.Load(writeSnapshot(t, "export.yaml", "id: 12\nname: Ada\n"))
		require.Error(t, err)

		var parseErr *errors.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "yaml", parseErr.Format)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := export.Load(writeSnapshot(t, "export.txt", exportJSON))
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "unsupported export format")
	})

	t.Run("record missing last name", func(t *testing.T) {
		const doc = `[
  {"id": 12, "name": "Ada Lovelace", "first_name": "Ada", "last_name": "Lovelace"},
  {"id": 13, "name": "Grace", "first_name": "Grace", "last_name": ""}
]`
		_, err := export.Load(writeSnapshot(t, "export.json", doc))
		require.Error(t, err)

		var valErr *errors.ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "people[1].LastName", valErr.Field)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})

	t.Run("record missing id", func(t *testing.T) {
		const doc = `[{"name": "Ada Lovelace", "first_name": "Ada", "last_name": "Lovelace"}]`
		_, err := export.Load(writeSnapshot(t, "export.json", doc))
		require.Error(t, err)

		var valErr *errors.ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "people[0].ID", valErr.Field)
	})
}
