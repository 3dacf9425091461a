// Package export loads person snapshots produced by an organizing-system
// export. A snapshot is a single file holding the full list of exported
// person records, in JSON or YAML form.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/fieldops/rollcall/pkg/errors"
	"github.com/fieldops/rollcall/pkg/people"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Snapshot is a decoded export file.
type Snapshot struct {
	People []people.Person
}

// Load reads and decodes the export snapshot at path. The format follows
// the file extension: .json for JSON exports, .yaml or .yml for YAML.
// Every record is checked against the export schema, and the first invalid
// record fails the whole load.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var persons []people.Person
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &persons); err != nil {
			return nil, errors.WrapParse("json", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &persons); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
	default:
		return nil, errors.NewValidationError("path", path,
			fmt.Sprintf("unsupported export format %q", ext))
	}

	for i := range persons {
		if err := validate.Struct(&persons[i]); err != nil {
			return nil, invalidRecord(i, err)
		}
	}

	return &Snapshot{People: persons}, nil
}

// invalidRecord converts a validator failure on record i into the shared
// error taxonomy, naming the first offending field.
func invalidRecord(i int, err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		field := fmt.Sprintf("people[%d].%s", i, fe.Field())
		return errors.NewValidationError(field, fe.Value(),
			fmt.Sprintf("%s rule failed", fe.Tag()))
	}
	return errors.WrapValidation(fmt.Sprintf("people[%d]", i), err)
}
