package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact represents a contact record owned by the contact module
type Contact struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FirstName string    `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName  string    `gorm:"type:varchar(255)" json:"lastName"`
	Email     *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone     *string   `gorm:"type:varchar(50)" json:"phoneNumber,omitempty"`
	CreatedBy uuid.UUID `gorm:"type:uuid;index" json:"createdBy"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}

// BeforeCreate assigns an identifier when the caller did not set one
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
