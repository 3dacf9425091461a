package people

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// User represents a live user record as returned by the system API.
type User struct {
	// Core identification
	ID     int64  `json:"id" yaml:"id"`
	HashID string `json:"hash_id,omitempty" yaml:"hash_id,omitempty"`

	// Contact details
	PhoneNumber string `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
	Email       string `json:"email,omitempty" yaml:"email,omitempty"`
	FirstName   string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty" yaml:"last_name,omitempty"`

	// Language preferences
	PreferredLanguage string `json:"preferred_language,omitempty" yaml:"preferred_language,omitempty"`
	SecondLanguage    string `json:"second_language,omitempty" yaml:"second_language,omitempty"`

	// Organizational placement
	ChapterID  *int64  `json:"chapter_id,omitempty" yaml:"chapter_id,omitempty"`
	ChapterIDs []int64 `json:"chapter_ids,omitempty" yaml:"chapter_ids,omitempty"`
	BranchID   *int64  `json:"branch_id,omitempty" yaml:"branch_id,omitempty"`

	// Address arrives either as a structured object or a free-form mapping,
	// depending on which API surface produced the record.
	Address *AddressData `json:"address,omitempty" yaml:"address,omitempty"`

	// Arbitrary per-organization properties
	CustomProperties map[string]any `json:"custom_user_properties,omitempty" yaml:"custom_user_properties,omitempty"`

	// Contact permissions
	SMSPermission   bool `json:"sms_permission,omitempty" yaml:"sms_permission,omitempty"`
	CallPermission  bool `json:"call_permission,omitempty" yaml:"call_permission,omitempty"`
	EmailPermission bool `json:"email_permission,omitempty" yaml:"email_permission,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Address is the structured form of a user's address.
type Address struct {
	Address1  string   `json:"address1,omitempty" yaml:"address1,omitempty"`
	Address2  string   `json:"address2,omitempty" yaml:"address2,omitempty"`
	City      string   `json:"city,omitempty" yaml:"city,omitempty"`
	State     string   `json:"state,omitempty" yaml:"state,omitempty"`
	ZipCode   string   `json:"zip_code,omitempty" yaml:"zip_code,omitempty"`
	Country   string   `json:"country,omitempty" yaml:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty" yaml:"longitude,omitempty"`
}

// AddressData holds a user's address in whichever shape the API produced it.
// Exactly one of Structured or Fields is set after a successful decode.
// Some API surfaces return a fully typed address object; others return an
// untyped mapping where zip_code may even be numeric.
type AddressData struct {
	Structured *Address
	Fields     map[string]any
}

// UnmarshalJSON decodes into the structured form first and falls back to a
// raw mapping when the payload doesn't fit (for example a numeric zip_code).
func (a *AddressData) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var structured Address
	if err := json.Unmarshal(data, &structured); err == nil {
		a.Structured = &structured
		a.Fields = nil
		return nil
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	a.Structured = nil
	a.Fields = fields
	return nil
}

// MarshalJSON emits whichever representation is populated.
func (a AddressData) MarshalJSON() ([]byte, error) {
	if a.Structured != nil {
		return json.Marshal(a.Structured)
	}
	if a.Fields != nil {
		return json.Marshal(a.Fields)
	}
	return []byte("null"), nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML sources.
func (a *AddressData) UnmarshalYAML(data []byte) error {
	var structured Address
	if err := yaml.Unmarshal(data, &structured); err == nil {
		a.Structured = &structured
		a.Fields = nil
		return nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return err
	}
	a.Structured = nil
	a.Fields = fields
	return nil
}

// MarshalYAML emits whichever representation is populated.
func (a AddressData) MarshalYAML() (any, error) {
	if a.Structured != nil {
		return a.Structured, nil
	}
	if a.Fields != nil {
		return a.Fields, nil
	}
	return nil, nil
}

// Zip resolves the trimmed postal code from either address shape.
// It reports false when no usable zip is present. Numeric zip codes in the
// mapping form render without decoration (60601 becomes "60601").
func (a *AddressData) Zip() (string, bool) {
	if a == nil {
		return "", false
	}
	if a.Structured != nil {
		zip := strings.TrimSpace(a.Structured.ZipCode)
		if zip == "" {
			return "", false
		}
		return zip, true
	}
	raw, ok := a.Fields["zip_code"]
	if !ok || raw == nil {
		return "", false
	}
	zip := strings.TrimSpace(stringify(raw))
	if zip == "" {
		return "", false
	}
	return zip, true
}

// stringify renders a raw mapping value the way a human wrote it: integral
// floats lose the trailing ".0" that JSON number decoding would add.
func stringify(v any) string {
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprint(v)
}
