package models

import (
	"time"
)

// Role values for User.Role
const (
	RoleTenant   = "tenant"
	RoleLandlord = "landlord"
)

// User represents a tenant or landlord account
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GoogleID  *string   `gorm:"uniqueIndex;size:255" json:"google_id,omitempty"`
	Name      string    `gorm:"size:255" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Role      string    `gorm:"not null;size:32;default:tenant" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Properties []Property `gorm:"foreignKey:LandlordID" json:"-"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsLandlord reports whether the user has the landlord role
func (u *User) IsLandlord() bool {
	return u.Role == RoleLandlord
}

// IsTenant reports whether the user has the tenant role
func (u *User) IsTenant() bool {
	return u.Role == RoleTenant
}
