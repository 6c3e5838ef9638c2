package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MeetingStatus represents the lifecycle state of a meeting record
type MeetingStatus string

const (
	MeetingStatusActive  MeetingStatus = "active"
	MeetingStatusDeleted MeetingStatus = "deleted"
)

// Meeting represents a meeting record. Attendee references are stored as
// identifier lists and resolved against their owning collections at read time.
type Meeting struct {
	ID              uuid.UUID                      `gorm:"type:uuid;primary_key" json:"id"`
	Agenda          string                         `gorm:"type:text;not null" json:"agenda"`
	AttendeeIDs     datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb" json:"attendees,omitempty"`
	AttendeeLeadIDs datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb" json:"attendeeLeads,omitempty"`
	Location        *string                        `gorm:"type:varchar(255)" json:"location,omitempty"`
	Related         datatypes.JSON                 `gorm:"type:jsonb" json:"related,omitempty"`
	DateTime        *time.Time                     `json:"dateTime,omitempty"`
	Notes           *string                        `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy       uuid.UUID                      `gorm:"type:uuid;not null;index" json:"createdBy"`
	Status          MeetingStatus                  `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt       time.Time                      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time                      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// BeforeCreate assigns an identifier when the caller did not set one
func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// IsDeleted checks if the meeting has been soft-deleted
func (m *Meeting) IsDeleted() bool {
	return m.Status == MeetingStatusDeleted
}
