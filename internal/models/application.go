package models

import (
	"time"
)

// Application status values
const (
	ApplicationPending  = "Pending"
	ApplicationApproved = "Approved"
	ApplicationRejected = "Rejected"
)

// PropertyApplication is a tenant's rental application for a property.
// Status starts at Pending and is overwritten by a landlord decision.
type PropertyApplication struct {
	ID              uint      `gorm:"primaryKey;column:application_id" json:"application_id"`
	PropertyID      uint      `gorm:"not null;index" json:"property_id"`
	TenantID        uint      `gorm:"not null;index" json:"tenant_id"`
	ApplicantName   string    `gorm:"not null;size:255" json:"applicant_name"`
	ContactEmail    string    `gorm:"not null;size:255" json:"contact_email"`
	ContactPhone    string    `gorm:"size:64" json:"contact_phone"`
	AnnualIncome    float64   `json:"annual_income"`
	Occupation      string    `gorm:"size:255" json:"occupation"`
	MoveInDate      string    `gorm:"size:64" json:"move_in_date"`
	ApplicationDate time.Time `gorm:"autoCreateTime" json:"application_date"`
	Status          string    `gorm:"not null;size:32;default:Pending" json:"status"`

	// Relationships
	Property Property `gorm:"foreignKey:PropertyID" json:"-"`
	Tenant   User     `gorm:"foreignKey:TenantID" json:"-"`
}

// TableName returns the table name for PropertyApplication
func (PropertyApplication) TableName() string {
	return "property_applications"
}

// ApplicationListItem joins an application with its property address for the
// landlord review view.
type ApplicationListItem struct {
	ID              uint      `json:"application_id"`
	PropertyID      uint      `json:"property_id"`
	PropertyAddress string    `json:"property_address"`
	TenantID        uint      `json:"tenant_id"`
	ApplicantName   string    `json:"applicant_name"`
	ContactEmail    string    `json:"contact_email"`
	AnnualIncome    float64   `json:"annual_income"`
	ApplicationDate time.Time `json:"application_date"`
	Status          string    `json:"status"`
}
