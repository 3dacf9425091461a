// Package people defines the shared domain types for rollcall: exported
// person records as they appear in an organizing-system JSON export, and
// live user records as the system's REST API returns them.
package people

import "time"

// Person represents one record from an export snapshot.
type Person struct {
	// Core identification (required in every export)
	ID        int64  `json:"id" yaml:"id" validate:"required"`                 // Exported person identifier
	Name      string `json:"name" yaml:"name" validate:"required"`             // Display name
	FirstName string `json:"first_name" yaml:"first_name" validate:"required"` // Given name
	LastName  string `json:"last_name" yaml:"last_name" validate:"required"`   // Family name

	// Contact details
	PhoneNumber string `json:"phone_number,omitempty" yaml:"phone_number,omitempty"` // Raw phone number, any formatting
	Email       string `json:"email,omitempty" yaml:"email,omitempty"`               // Email address

	// Organizational context
	Chapter           string `json:"chapter,omitempty" yaml:"chapter,omitempty"`
	PreferredLanguage string `json:"preferred_language,omitempty" yaml:"preferred_language,omitempty"`
	MembershipStatus  string `json:"membership-status,omitempty" yaml:"membership-status,omitempty"`

	// Address
	FullAddress string `json:"full_address,omitempty" yaml:"full_address,omitempty"`
	Address1    string `json:"address1,omitempty" yaml:"address1,omitempty"`
	Address2    string `json:"address2,omitempty" yaml:"address2,omitempty"`
	City        string `json:"city,omitempty" yaml:"city,omitempty"`
	State       string `json:"state,omitempty" yaml:"state,omitempty"`
	PostalCode  string `json:"postal_code,omitempty" yaml:"postal_code,omitempty"` // Used for name+zip confirmation during matching
	Country     string `json:"country,omitempty" yaml:"country,omitempty"`

	// Timestamps
	CreatedAt     *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	PaidDuesSince *time.Time `json:"paid_dues_since,omitempty" yaml:"paid_dues_since,omitempty"`

	// Engagement history carried along from the export
	Tags  []string      `json:"tags,omitempty" yaml:"tags,omitempty"`
	Texts []TextMessage `json:"texts,omitempty" yaml:"texts,omitempty"`
	Calls []CallRecord  `json:"calls,omitempty" yaml:"calls,omitempty"`
	Notes []Note        `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Note is an organizer note attached to an exported person.
type Note struct {
	ID          int64     `json:"id" yaml:"id"`
	Content     string    `json:"content" yaml:"content"`
	AgentUserID int64     `json:"agent_user_id" yaml:"agent_user_id"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

// TextMessage is a text exchanged with an exported person.
type TextMessage struct {
	SentAt    int64  `json:"sent_at" yaml:"sent_at"` // Unix timestamp
	Content   string `json:"content" yaml:"content"`
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"` // "in" or "out"
}

// CallRecord is a call logged against an exported person.
type CallRecord struct {
	CalledAt int64  `json:"called_at" yaml:"called_at"` // Unix timestamp
	Duration int    `json:"duration" yaml:"duration"`   // Seconds
	Notes    string `json:"notes,omitempty" yaml:"notes,omitempty"`
}
