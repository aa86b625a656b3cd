package mocks

import (
	"context"

	"github.com/dwellist/dwellist-backend/internal/models"
	"github.com/dwellist/dwellist-backend/internal/repository"
	"github.com/dwellist/dwellist-backend/internal/services"
	"github.com/stretchr/testify/mock"
)

// MockMailboxService implements services.MailboxService
type MockMailboxService struct {
	mock.Mock
}

// Send delivers a message to each resolved recipient
func (m *MockMailboxService) Send(ctx context.Context, senderID uint, recipients []string, subject, content string) (*services.SendReport, error) {
	args := m.Called(ctx, senderID, recipients, subject, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.SendReport), args.Error(1)
}

// List returns the user's mailbox, both sent and received
func (m *MockMailboxService) List(ctx context.Context, userID uint) ([]models.MailboxListItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MailboxListItem), args.Error(1)
}

// MockApplicationService implements services.ApplicationService
type MockApplicationService struct {
	mock.Mock
}

// Submit records a rental application
func (m *MockApplicationService) Submit(ctx context.Context, tenantID, propertyID uint, input services.ApplicationInput) (*models.PropertyApplication, error) {
	args := m.Called(ctx, tenantID, propertyID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PropertyApplication), args.Error(1)
}

// Decide records a landlord decision
func (m *MockApplicationService) Decide(ctx context.Context, applicationID uint, decision string) error {
	args := m.Called(ctx, applicationID, decision)
	return args.Error(0)
}

// ListByTenant returns the tenant's applications
func (m *MockApplicationService) ListByTenant(ctx context.Context, tenantID uint) ([]models.ApplicationListItem, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationListItem), args.Error(1)
}

// ListForLandlord returns applications against the landlord's properties
func (m *MockApplicationService) ListForLandlord(ctx context.Context, landlordID uint) ([]models.ApplicationListItem, error) {
	args := m.Called(ctx, landlordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationListItem), args.Error(1)
}

// MockMailer implements services.Mailer
type MockMailer struct {
	mock.Mock
}

// SendContact relays a contact form message
func (m *MockMailer) SendContact(ctx context.Context, msg services.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockIdentityProvider implements auth.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

// AuthCodeURL returns the provider authorization URL
func (m *MockIdentityProvider) AuthCodeURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

// Exchange trades an authorization code for a normalized profile
func (m *MockIdentityProvider) Exchange(ctx context.Context, code string) (repository.Profile, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(repository.Profile), args.Error(1)
}
