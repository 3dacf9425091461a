package crm

import (
	"net/url"
	"strconv"
	"time"

	"github.com/fieldops/rollcall/pkg/constants"
	"github.com/fieldops/rollcall/pkg/people"
)

// Meta carries the pagination metadata list endpoints return alongside
// their data. Servers may omit any of these fields.
type Meta struct {
	TotalCount *int64 `json:"total_count,omitempty"` // Total records matching the query
	Limit      *int   `json:"limit,omitempty"`       // Page size the server applied
	Offset     *int   `json:"offset,omitempty"`      // Records skipped from the start
}

// Page is one page of a list response.
type Page[T any] struct {
	Data []T   `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// ListParams control pagination on list endpoints.
type ListParams struct {
	Limit  int   // Page size; the server default applies when zero
	Offset int   // Records to skip
	Since  int64 // Unix timestamp filter; zero means no filter
}

// values renders the parameters as the _limit/_offset/_since query triple
// every list endpoint takes.
func (p ListParams) values() url.Values {
	limit := p.Limit
	if limit <= 0 {
		limit = constants.ServerDefaultLimit
	}

	v := url.Values{}
	v.Set("_limit", strconv.Itoa(limit))
	v.Set("_offset", strconv.Itoa(p.Offset))
	v.Set("_since", strconv.FormatInt(p.Since, 10))
	return v
}

// Chapter is an organizing chapter in the live system.
type Chapter struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	LogoURL            string `json:"logo_url,omitempty"`
	OrganizationID     int64  `json:"organization_id"`
	ChapterPhoneNumber string `json:"chapter_phone_number,omitempty"`
}

// Event is a scheduled event in the live system.
type Event struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	ScopeID         int64          `json:"scope_id"`
	ScopeType       string         `json:"scope_type"` // "Organization" or "Chapter"
	EventType       string         `json:"event_type"`
	LocationName    string         `json:"location_name,omitempty"`
	LocationData    map[string]any `json:"location_data,omitempty"`
	RSVPsCount      *int           `json:"rsvps_count,omitempty"`
	AttendanceCount *int           `json:"attendance_count,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// EventRSVP is a user's RSVP to an event session.
type EventRSVP struct {
	ID             *int64 `json:"id,omitempty"`
	EventID        int64  `json:"event_id"`
	EventSessionID int64  `json:"event_session_id"`
	UserID         int64  `json:"user_id"`
	IsAttending    string `json:"is_attending"` // "yes", "no", or "maybe"
	IsConfirmed    bool   `json:"is_confirmed"`
	AgentUserID    *int64 `json:"agent_user_id,omitempty"`
	Source         string `json:"source,omitempty"`
	SourceSystem   string `json:"source_system,omitempty"`
}

// UserNote is a note attached to a live user.
type UserNote struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	UserID  int64  `json:"user_id"`
}

// UserCreate is the request body for creating a live user.
type UserCreate struct {
	PhoneNumber       string            `json:"phone_number,omitempty"`
	Email             string            `json:"email,omitempty"`
	FirstName         string            `json:"first_name,omitempty"`
	LastName          string            `json:"last_name,omitempty"`
	PreferredLanguage string            `json:"preferred_language,omitempty"`
	SecondLanguage    string            `json:"second_language,omitempty"`
	ChapterID         *int64            `json:"chapter_id,omitempty"`
	ChapterIDs        []int64           `json:"chapter_ids,omitempty"`
	ReferredByUserID  *int64            `json:"referred_by_user_id,omitempty"`
	CustomProperties  map[string]string `json:"custom_user_properties,omitempty"`
	AddTags           []string          `json:"add_tags,omitempty"`
	RemoveTags        []string          `json:"remove_tags,omitempty"`
	Address           *people.Address   `json:"address,omitempty"`
	SMSPermission     *bool             `json:"sms_permission,omitempty"`
	CallPermission    *bool             `json:"call_permission,omitempty"`
	EmailPermission   *bool             `json:"email_permission,omitempty"`
	Timezone          string            `json:"timezone,omitempty"`

	// Server-side intake toggles
	RequireContactInfo      *bool `json:"require_contact_info,omitempty"`
	PhoneTextableValidation *bool `json:"phone_number_textable_validation,omitempty"`
}

// UserUpdate is the request body for updating a live user. Only the fields
// set here change on the server.
type UserUpdate struct {
	PhoneNumber         string            `json:"phone_number,omitempty"`
	Email               string            `json:"email,omitempty"`
	FirstName           string            `json:"first_name,omitempty"`
	LastName            string            `json:"last_name,omitempty"`
	PreferredLanguage   string            `json:"preferred_language,omitempty"`
	SecondLanguage      string            `json:"second_language,omitempty"`
	ChapterID           *int64            `json:"chapter_id,omitempty"`
	ChapterIDs          []int64           `json:"chapter_ids,omitempty"`
	AddChapterIDs       []int64           `json:"add_chapter_ids,omitempty"`
	RemoveChapterIDs    []int64           `json:"remove_chapter_ids,omitempty"`
	SetExclusiveChapter *bool             `json:"set_exclusive_chapter,omitempty"`
	ReferredByUserID    *int64            `json:"referred_by_user_id,omitempty"`
	CustomProperties    map[string]string `json:"custom_user_properties,omitempty"`
	Address             *people.Address   `json:"address,omitempty"`
	SMSPermission       *bool             `json:"sms_permission,omitempty"`
	CallPermission      *bool             `json:"call_permission,omitempty"`
	EmailPermission     *bool             `json:"email_permission,omitempty"`
	Timezone            string            `json:"timezone,omitempty"`
}

// UserNoteCreate is the request body for attaching a note to a live user.
type UserNoteCreate struct {
	UserID    int64  `json:"user_id"`
	AgentID   *int64 `json:"agent_id,omitempty"`
	Content   string `json:"content"`
	CreatedAt *int64 `json:"created_at,omitempty"` // Unix timestamp; lets imports keep original note dates
}

// EventRSVPCreate is the request body for RSVPing a user to an event session.
type EventRSVPCreate struct {
	EventID               int64  `json:"event_id"`
	EventSessionID        int64  `json:"event_session_id"`
	UserID                int64  `json:"user_id"`
	IsAttending           string `json:"is_attending"` // "yes", "no", or "maybe"
	IsConfirmed           bool   `json:"is_confirmed"`
	AgentUserID           *int64 `json:"agent_user_id,omitempty"`
	Source                string `json:"source,omitempty"`
	SourceSystem          string `json:"source_system,omitempty"`
	SkipEmailConfirmation *bool  `json:"skip_email_confirmation,omitempty"`
}
