package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwellist/dwellist-backend/internal/models"
	"gorm.io/gorm"
)

// ApplicationRepository defines the interface for rental application access
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.PropertyApplication) error
	GetByID(ctx context.Context, id uint) (*models.PropertyApplication, error)
	ListByTenant(ctx context.Context, tenantID uint) ([]models.ApplicationListItem, error)
	ListForLandlord(ctx context.Context, landlordID uint) ([]models.ApplicationListItem, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// applicationRepository implements ApplicationRepository using GORM
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository instance
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create inserts a new application. Status is always Pending on insert,
// whatever the caller set. Nothing prevents a tenant from applying to the
// same property twice.
func (r *applicationRepository) Create(ctx context.Context, application *models.PropertyApplication) error {
	application.Status = models.ApplicationPending
	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// GetByID retrieves an application by its ID
func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.PropertyApplication, error) {
	var application models.PropertyApplication
	result := r.db.WithContext(ctx).First(&application, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get application by ID: %w", result.Error)
	}
	return &application, nil
}

const applicationListQuery = `
	SELECT
		a.application_id AS id, a.property_id, p.address AS property_address,
		a.tenant_id, a.applicant_name, a.contact_email, a.annual_income,
		a.application_date, a.status
	FROM property_applications a
	JOIN properties p ON p.id = a.property_id
	WHERE %s
	ORDER BY a.application_date DESC, a.application_id DESC
`

// ListByTenant retrieves a tenant's applications, newest first
func (r *applicationRepository) ListByTenant(ctx context.Context, tenantID uint) ([]models.ApplicationListItem, error) {
	var items []models.ApplicationListItem
	query := fmt.Sprintf(applicationListQuery, "a.tenant_id = ?")
	if err := r.db.WithContext(ctx).Raw(query, tenantID).Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list tenant applications: %w", err)
	}
	return items, nil
}

// ListForLandlord retrieves applications against any property owned by the
// landlord, newest first.
func (r *applicationRepository) ListForLandlord(ctx context.Context, landlordID uint) ([]models.ApplicationListItem, error) {
	var items []models.ApplicationListItem
	query := fmt.Sprintf(applicationListQuery, "p.landlord_id = ?")
	if err := r.db.WithContext(ctx).Raw(query, landlordID).Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list landlord applications: %w", err)
	}
	return items, nil
}

// UpdateStatus overwrites the application status. There is no transition
// lock: a decided application can be decided again.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	if status != models.ApplicationApproved && status != models.ApplicationRejected {
		return fmt.Errorf("status must be Approved or Rejected: %w", ErrInvalidInput)
	}
	result := r.db.WithContext(ctx).Model(&models.PropertyApplication{}).
		Where("application_id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update application status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
