package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/dwellist/dwellist-backend/internal/errors"
	"github.com/dwellist/dwellist-backend/internal/models"
	"github.com/dwellist/dwellist-backend/internal/repository"
)

// ApplicationInput carries the rental application form fields
type ApplicationInput struct {
	ApplicantName string
	ContactEmail  string
	ContactPhone  string
	AnnualIncome  float64
	Occupation    string
	MoveInDate    string
}

// ApplicationService handles rental application submission and review
type ApplicationService interface {
	// Submit records a new application against an existing property.
	// Repeat submissions by the same tenant are allowed.
	Submit(ctx context.Context, tenantID, propertyID uint, input ApplicationInput) (*models.PropertyApplication, error)

	// Decide sets an application's status from a landlord decision.
	// A later decision overwrites an earlier one.
	Decide(ctx context.Context, applicationID uint, decision string) error

	// ListByTenant returns the tenant's own applications
	ListByTenant(ctx context.Context, tenantID uint) ([]models.ApplicationListItem, error)

	// ListForLandlord returns applications against the landlord's properties
	ListForLandlord(ctx context.Context, landlordID uint) ([]models.ApplicationListItem, error)
}

// applicationService implements ApplicationService
type applicationService struct {
	applications repository.ApplicationRepository
	properties   repository.PropertyRepository
}

// NewApplicationService creates a new ApplicationService instance
func NewApplicationService(
	applications repository.ApplicationRepository,
	properties repository.PropertyRepository,
) ApplicationService {
	return &applicationService{
		applications: applications,
		properties:   properties,
	}
}

// Submit validates the property and inserts a Pending application
func (s *applicationService) Submit(ctx context.Context, tenantID, propertyID uint, input ApplicationInput) (*models.PropertyApplication, error) {
	if strings.TrimSpace(input.ApplicantName) == "" || strings.TrimSpace(input.ContactEmail) == "" {
		return nil, fmt.Errorf("applicant name and contact email are required: %w", apperrors.ErrInvalidInput)
	}

	if _, err := s.properties.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("property %d: %w", propertyID, apperrors.ErrPropertyNotFound)
		}
		return nil, fmt.Errorf("failed to load property: %w", err)
	}

	application := &models.PropertyApplication{
		PropertyID:    propertyID,
		TenantID:      tenantID,
		ApplicantName: strings.TrimSpace(input.ApplicantName),
		ContactEmail:  strings.TrimSpace(strings.ToLower(input.ContactEmail)),
		ContactPhone:  strings.TrimSpace(input.ContactPhone),
		AnnualIncome:  input.AnnualIncome,
		Occupation:    strings.TrimSpace(input.Occupation),
		MoveInDate:    strings.TrimSpace(input.MoveInDate),
	}

	if err := s.applications.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return application, nil
}

// Decide maps the form decision onto a stored status
func (s *applicationService) Decide(ctx context.Context, applicationID uint, decision string) error {
	var status string
	switch strings.ToLower(strings.TrimSpace(decision)) {
	case "approved":
		status = models.ApplicationApproved
	case "rejected":
		status = models.ApplicationRejected
	default:
		return fmt.Errorf("decision must be approved or rejected: %w", apperrors.ErrInvalidInput)
	}

	if err := s.applications.UpdateStatus(ctx, applicationID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("application %d: %w", applicationID, apperrors.ErrApplicationNotFound)
		}
		return fmt.Errorf("failed to update application status: %w", err)
	}

	return nil
}

// ListByTenant returns the tenant's own applications
func (s *applicationService) ListByTenant(ctx context.Context, tenantID uint) ([]models.ApplicationListItem, error) {
	return s.applications.ListByTenant(ctx, tenantID)
}

// ListForLandlord returns applications against the landlord's properties
func (s *applicationService) ListForLandlord(ctx context.Context, landlordID uint) ([]models.ApplicationListItem, error) {
	return s.applications.ListForLandlord(ctx, landlordID)
}
