package mocks

import (
	"context"

	"github.com/dwellist/dwellist-backend/internal/models"
	"github.com/dwellist/dwellist-backend/internal/repository"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository implements repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// GetByID retrieves a user by its ID
func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// GetByEmail retrieves a user by email address
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// GetByGoogleID retrieves a user by its external Google account id
func (m *MockUserRepository) GetByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// FindOrCreate resolves a user for an external identity profile
func (m *MockUserRepository) FindOrCreate(ctx context.Context, profile repository.Profile) (*models.User, bool, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.Bool(1), args.Error(2)
}

// UpdateProfile updates the mutable profile fields of a user
func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uint, name, role string) error {
	args := m.Called(ctx, id, name, role)
	return args.Error(0)
}

// MockPropertyRepository implements repository.PropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

// Create creates a new property
func (m *MockPropertyRepository) Create(ctx context.Context, property *models.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

// GetByID retrieves a property by its ID
func (m *MockPropertyRepository) GetByID(ctx context.Context, id uint) (*models.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

// ListByLandlord retrieves all properties owned by a landlord
func (m *MockPropertyRepository) ListByLandlord(ctx context.Context, landlordID uint) ([]models.Property, error) {
	args := m.Called(ctx, landlordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

// ListAll retrieves every listing as a lightweight projection
func (m *MockPropertyRepository) ListAll(ctx context.Context) ([]models.PropertyListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PropertyListItem), args.Error(1)
}

// MockLinkRepository implements repository.LinkRepository
type MockLinkRepository struct {
	mock.Mock
}

// Link associates a tenant with a landlord
func (m *MockLinkRepository) Link(ctx context.Context, landlordID, tenantID uint) error {
	args := m.Called(ctx, landlordID, tenantID)
	return args.Error(0)
}

// ListTenants retrieves all tenants linked to a landlord
func (m *MockLinkRepository) ListTenants(ctx context.Context, landlordID uint) ([]models.User, error) {
	args := m.Called(ctx, landlordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// ListLandlords retrieves all landlords linked to a tenant
func (m *MockLinkRepository) ListLandlords(ctx context.Context, tenantID uint) ([]models.User, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// MockMailboxRepository implements repository.MailboxRepository
type MockMailboxRepository struct {
	mock.Mock
}

// Create appends a message
func (m *MockMailboxRepository) Create(ctx context.Context, message *models.MailboxMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// ListByUser retrieves every message where the user is sender or receiver
func (m *MockMailboxRepository) ListByUser(ctx context.Context, userID uint) ([]models.MailboxListItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MailboxListItem), args.Error(1)
}

// MockApplicationRepository implements repository.ApplicationRepository
type MockApplicationRepository struct {
	mock.Mock
}

// Create inserts a new application
func (m *MockApplicationRepository) Create(ctx context.Context, application *models.PropertyApplication) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

// GetByID retrieves an application by its ID
func (m *MockApplicationRepository) GetByID(ctx context.Context, id uint) (*models.PropertyApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PropertyApplication), args.Error(1)
}

// ListByTenant retrieves a tenant's applications
func (m *MockApplicationRepository) ListByTenant(ctx context.Context, tenantID uint) ([]models.ApplicationListItem, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationListItem), args.Error(1)
}

// ListForLandlord retrieves applications against any property owned by the landlord
func (m *MockApplicationRepository) ListForLandlord(ctx context.Context, landlordID uint) ([]models.ApplicationListItem, error) {
	args := m.Called(ctx, landlordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationListItem), args.Error(1)
}

// UpdateStatus overwrites the application status
func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
