package repository

import (
	"context"
	"fmt"

	"github.com/dwellist/dwellist-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LinkRepository defines the interface for tenant-landlord association access
type LinkRepository interface {
	Link(ctx context.Context, landlordID, tenantID uint) error
	ListTenants(ctx context.Context, landlordID uint) ([]models.User, error)
	ListLandlords(ctx context.Context, tenantID uint) ([]models.User, error)
}

// linkRepository implements LinkRepository using GORM
type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository creates a new LinkRepository instance
func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{db: db}
}

// Link associates a tenant with a landlord. Inserting an existing pair is a
// no-op, not an error.
func (r *linkRepository) Link(ctx context.Context, landlordID, tenantID uint) error {
	link := models.TenantLandlordLink{LandlordID: landlordID, TenantID: tenantID}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&link)
	if result.Error != nil {
		// Some drivers surface the conflict instead of honoring DoNothing.
		if isDuplicateKeyError(result.Error) {
			return nil
		}
		return fmt.Errorf("failed to link tenant to landlord: %w", result.Error)
	}
	return nil
}

// ListTenants retrieves all tenants linked to a landlord
func (r *linkRepository) ListTenants(ctx context.Context, landlordID uint) ([]models.User, error) {
	var tenants []models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN tenant_landlord tl ON tl.tenant_id = users.id").
		Where("tl.landlord_id = ?", landlordID).
		Order("users.name ASC").
		Find(&tenants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list linked tenants: %w", err)
	}
	return tenants, nil
}

// ListLandlords retrieves all landlords linked to a tenant
func (r *linkRepository) ListLandlords(ctx context.Context, tenantID uint) ([]models.User, error) {
	var landlords []models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN tenant_landlord tl ON tl.landlord_id = users.id").
		Where("tl.tenant_id = ?", tenantID).
		Order("users.name ASC").
		Find(&landlords).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list linked landlords: %w", err)
	}
	return landlords, nil
}
