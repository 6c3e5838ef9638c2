package meeting

import (
	"encoding/json"
	"time"

	"github.com/relatecrm/backend/internal/domain/entities"
)

// MeetingResponse represents a meeting with resolved references. The
// createdBy reference is replaced by the composed display name, and the
// attendee identifier lists by the resolved records.
type MeetingResponse struct {
	ID            string             `json:"id"`
	Agenda        string             `json:"agenda"`
	Attendees     []*ContactResponse `json:"attendees"`
	AttendeeLeads []*LeadResponse    `json:"attendeeLeads"`
	Location      *string            `json:"location,omitempty"`
	Related       json.RawMessage    `json:"related,omitempty"`
	DateTime      *time.Time         `json:"dateTime,omitempty"`
	Notes         *string            `json:"notes,omitempty"`
	CreateByName  string             `json:"createByName"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// ContactResponse represents a resolved attendee contact
type ContactResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phoneNumber,omitempty"`
}

// LeadResponse represents a resolved attendee lead
type LeadResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"leadName"`
	Email  *string `json:"leadEmail,omitempty"`
	Phone  *string `json:"leadPhoneNumber,omitempty"`
	Source *string `json:"leadSource,omitempty"`
	Status *string `json:"leadStatus,omitempty"`
}

// CreateMeetingResponse represents the response after creating a meeting.
// The stored record is echoed with raw references, matching the write path.
type CreateMeetingResponse struct {
	Message string            `json:"message"`
	Meeting *entities.Meeting `json:"meeting"`
}

// DeleteMeetingResponse represents the acknowledgment of a single delete
type DeleteMeetingResponse struct {
	Message string            `json:"message"`
	Meeting *entities.Meeting `json:"meeting"`
}

// DeleteManyResponse represents the bulk delete summary
type DeleteManyResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}
