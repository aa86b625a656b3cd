package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwellist/dwellist-backend/internal/models"
	"gorm.io/gorm"
)

// Profile is a normalized identity returned by an external provider.
type Profile struct {
	ExternalID  string
	Email       string
	DisplayName string
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	FindOrCreate(ctx context.Context, profile Profile) (*models.User, bool, error)
	UpdateProfile(ctx context.Context, id uint, name, role string) error
}

// userRepository implements UserRepository using GORM
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return fmt.Errorf("user with email '%s' already exists: %w", user.Email, ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to create user: %w", result.Error)
	}
	return nil
}

// GetByID retrieves a user by its ID
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", result.Error)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email address
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", result.Error)
	}
	return &user, nil
}

// GetByGoogleID retrieves a user by its external Google account id
func (r *userRepository) GetByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).Where("google_id = ?", googleID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by google id: %w", result.Error)
	}
	return &user, nil
}

// FindOrCreate resolves a user for an external identity profile. An existing
// row matched by google_id or email is returned untouched; profile fields are
// not synced on repeat login. A miss inserts a new user with the tenant role.
// Returns the user, a boolean indicating if it was created, and any error.
func (r *userRepository) FindOrCreate(ctx context.Context, profile Profile) (*models.User, bool, error) {
	email := normalizeEmail(profile.Email)

	if profile.ExternalID != "" {
		user, err := r.GetByGoogleID(ctx, profile.ExternalID)
		if err == nil {
			return user, false, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, false, err
		}
	}

	user, err := r.GetByEmail(ctx, email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	user = &models.User{
		Name:  profile.DisplayName,
		Email: email,
		Role:  models.RoleTenant,
	}
	if profile.ExternalID != "" {
		externalID := profile.ExternalID
		user.GoogleID = &externalID
	}

	if err := r.Create(ctx, user); err != nil {
		// A concurrent first login for the same email may have won the
		// insert; the unique constraint serializes us, so re-query.
		if errors.Is(err, ErrDuplicateEntry) {
			user, err = r.GetByEmail(ctx, email)
			if err != nil {
				return nil, false, err
			}
			return user, false, nil
		}
		return nil, false, err
	}

	return user, true, nil
}

// UpdateProfile updates the mutable profile fields of a user
func (r *userRepository) UpdateProfile(ctx context.Context, id uint, name, role string) error {
	if role != models.RoleTenant && role != models.RoleLandlord {
		return fmt.Errorf("role must be tenant or landlord: %w", ErrInvalidInput)
	}
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "role": role})
	if result.Error != nil {
		return fmt.Errorf("failed to update user profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
