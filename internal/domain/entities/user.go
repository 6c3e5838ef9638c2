package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole defines user roles
type UserRole string

const (
	RoleSuperAdmin UserRole = "superAdmin"
	RoleAdmin      UserRole = "admin"
	RoleUser       UserRole = "user"
)

// IsValid checks if the user role is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// User represents a user in the system. Owned by the user module; this
// module only reads identifiers, names and the role.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FirstName string    `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName  string    `gorm:"type:varchar(255);not null" json:"lastName"`
	Role      UserRole  `gorm:"type:varchar(50);not null;default:'user'" json:"role"`
	IsActive  bool      `gorm:"default:true;not null" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an identifier when the caller did not set one
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// FullName composes the display name from first and last name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsSuperAdmin checks if the user holds the privileged role
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}
