package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwellist/dwellist-backend/internal/models"
	"gorm.io/gorm"
)

// PropertyRepository defines the interface for property data access
type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id uint) (*models.Property, error)
	ListByLandlord(ctx context.Context, landlordID uint) ([]models.Property, error)
	ListAll(ctx context.Context) ([]models.PropertyListItem, error)
}

// propertyRepository implements PropertyRepository using GORM
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new PropertyRepository instance
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// Create creates a new property. The owner must be an existing landlord.
func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	var landlord models.User
	if err := r.db.WithContext(ctx).First(&landlord, property.LandlordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("landlord %d does not exist: %w", property.LandlordID, ErrInvalidInput)
		}
		return fmt.Errorf("failed to verify landlord: %w", err)
	}
	if !landlord.IsLandlord() {
		return fmt.Errorf("user %d is not a landlord: %w", property.LandlordID, ErrInvalidInput)
	}

	if err := r.db.WithContext(ctx).Create(property).Error; err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

// GetByID retrieves a property by its ID
func (r *propertyRepository) GetByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	result := r.db.WithContext(ctx).First(&property, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get property by ID: %w", result.Error)
	}
	return &property, nil
}

// ListByLandlord retrieves all properties owned by a landlord, newest first
func (r *propertyRepository) ListByLandlord(ctx context.Context, landlordID uint) ([]models.Property, error) {
	var properties []models.Property
	result := r.db.WithContext(ctx).
		Where("landlord_id = ?", landlordID).
		Order("created_at DESC").
		Find(&properties)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list properties: %w", result.Error)
	}
	return properties, nil
}

// ListAll retrieves every listing as a lightweight projection for the public
// listing endpoint, newest first.
func (r *propertyRepository) ListAll(ctx context.Context) ([]models.PropertyListItem, error) {
	// The public endpoint serializes this directly; an empty table must
	// come back as [] rather than null.
	items := make([]models.PropertyListItem, 0)

	query := `
		SELECT
			p.id, p.address, p.price, p.bedrooms, p.bathrooms,
			p.image_path <> '' AS has_image, p.created_at
		FROM properties p
		ORDER BY p.created_at DESC
	`

	if err := r.db.WithContext(ctx).Raw(query).Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list all properties: %w", err)
	}
	return items, nil
}
