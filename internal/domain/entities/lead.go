package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead represents a sales lead record owned by the lead module
type Lead struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone     *string   `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Source    *string   `gorm:"type:varchar(100)" json:"source,omitempty"`
	Status    *string   `gorm:"type:varchar(50)" json:"status,omitempty"`
	CreatedBy uuid.UUID `gorm:"type:uuid;index" json:"createdBy"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Lead
func (Lead) TableName() string {
	return "leads"
}

// BeforeCreate assigns an identifier when the caller did not set one
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
