package models

// TenantLandlordLink associates a tenant with a landlord. The pair is unique;
// inserting an existing pair is treated as a no-op by the repository.
type TenantLandlordLink struct {
	LandlordID uint `gorm:"primaryKey;autoIncrement:false" json:"landlord_id"`
	TenantID   uint `gorm:"primaryKey;autoIncrement:false" json:"tenant_id"`

	// Relationships
	Landlord User `gorm:"foreignKey:LandlordID" json:"-"`
	Tenant   User `gorm:"foreignKey:TenantID" json:"-"`
}

// TableName returns the table name for TenantLandlordLink
func (TenantLandlordLink) TableName() string {
	return "tenant_landlord"
}
