package models

import (
	"time"
)

// Property represents a rental listing owned by a landlord
type Property struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	LandlordID       uint      `gorm:"not null;index" json:"landlord_id"`
	Address          string    `gorm:"not null;size:512" json:"address"`
	Price            float64   `gorm:"not null" json:"price"`
	Bedrooms         int       `gorm:"not null" json:"bedrooms"`
	Bathrooms        int       `gorm:"not null" json:"bathrooms"`
	ImagePath        string    `gorm:"size:512" json:"-"`
	ImageContentType string    `gorm:"size:128" json:"-"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Landlord     User                  `gorm:"foreignKey:LandlordID" json:"-"`
	Applications []PropertyApplication `gorm:"foreignKey:PropertyID" json:"-"`
}

// TableName returns the table name for Property
func (Property) TableName() string {
	return "properties"
}

// PropertyListItem is a lightweight projection for the public listing endpoint
type PropertyListItem struct {
	ID        uint      `json:"id"`
	Address   string    `json:"address"`
	Price     float64   `json:"price"`
	Bedrooms  int       `json:"bedrooms"`
	Bathrooms int       `json:"bathrooms"`
	HasImage  bool      `json:"has_image"`
	CreatedAt time.Time `json:"created_at"`
}
