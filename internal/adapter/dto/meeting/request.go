package meeting

import (
	"encoding/json"
	"time"
)

// CreateMeetingRequest represents the request to create a meeting.
// Field names follow the wire contract of the CRM API (camelCase).
// Reference lists are plain strings: well-formedness is checked by the
// reference validator together with existence, not at binding time.
type CreateMeetingRequest struct {
	Agenda        string          `json:"agenda" validate:"required"`
	Attendees     []string        `json:"attendees,omitempty"`
	AttendeeLeads []string        `json:"attendeeLeads,omitempty"`
	Location      *string         `json:"location,omitempty"`
	Related       json.RawMessage `json:"related,omitempty"`
	DateTime      *time.Time      `json:"dateTime,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedBy     string          `json:"createdBy" validate:"required"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	// CreatedBy narrows the listing to one creator. Honored only for the
	// privileged role; ignored for everyone else.
	CreatedBy string `query:"createdBy"`
}

// DeleteManyRequest represents the request to bulk delete meetings
type DeleteManyRequest struct {
	MeetingIDs []string `json:"meetingIds" validate:"required"`
}
