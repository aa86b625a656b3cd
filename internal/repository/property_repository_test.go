package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dwellist/dwellist-backend/internal/models"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PropertyRepositoryTestSuite is the test suite for PropertyRepository
type PropertyRepositoryTestSuite struct {
	suite.Suite
	db       *gorm.DB
	repo     PropertyRepository
	userRepo UserRepository
	landlord *models.User
	tenant   *models.User
}

// SetupSuite runs once before all tests
func (s *PropertyRepositoryTestSuite) SetupSuite() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	db.Exec("PRAGMA foreign_keys = ON")

	err = db.AutoMigrate(&models.User{}, &models.Property{}, &models.TenantLandlordLink{},
		&models.MailboxMessage{}, &models.PropertyApplication{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewPropertyRepository(db)
	s.userRepo = NewUserRepository(db)
}

// TearDownSuite runs once after all tests
func (s *PropertyRepositoryTestSuite) TearDownSuite() {
	sqlDB, _ := s.db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// SetupTest runs before each test
func (s *PropertyRepositoryTestSuite) SetupTest() {
	ctx := context.Background()
	s.db.Exec("DELETE FROM properties")
	s.db.Exec("DELETE FROM users")

	s.landlord = &models.User{Name: "Lena", Email: "lena@example.com", Role: models.RoleLandlord}
	s.tenant = &models.User{Name: "Tom", Email: "tom@example.com", Role: models.RoleTenant}
	require.NoError(s.T(), s.userRepo.Create(ctx, s.landlord))
	require.NoError(s.T(), s.userRepo.Create(ctx, s.tenant))
}

// TestPropertyRepositoryTestSuite runs the test suite
func TestPropertyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PropertyRepositoryTestSuite))
}

func (s *PropertyRepositoryTestSuite) TestCreate_Success() {
	property := &models.Property{
		LandlordID: s.landlord.ID,
		Address:    "12 Oak Lane",
		Price:      1500,
		Bedrooms:   2,
		Bathrooms:  1,
	}

	err := s.repo.Create(context.Background(), property)
	s.NoError(err)
	s.NotZero(property.ID)
}

func (s *PropertyRepositoryTestSuite) TestCreate_UnknownOwnerRejected() {
	property := &models.Property{LandlordID: 9999, Address: "12 Oak Lane", Price: 1500}

	err := s.repo.Create(context.Background(), property)
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *PropertyRepositoryTestSuite) TestCreate_TenantOwnerRejected() {
	property := &models.Property{LandlordID: s.tenant.ID, Address: "12 Oak Lane", Price: 1500}

	err := s.repo.Create(context.Background(), property)
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *PropertyRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(context.Background(), 9999)
	s.ErrorIs(err, ErrNotFound)
}

// An empty table must produce an empty slice, not nil. The public listings
// endpoint serializes the result directly, and nil marshals to JSON null
// instead of an array.
func (s *PropertyRepositoryTestSuite) TestListAll_EmptyTableYieldsEmptySlice() {
	items, err := s.repo.ListAll(context.Background())
	s.NoError(err)
	s.NotNil(items)
	s.Empty(items)

	body, err := json.Marshal(items)
	s.Require().NoError(err)
	s.Equal("[]", string(body))
}

func (s *PropertyRepositoryTestSuite) TestListAll_ProjectsImageFlag() {
	ctx := context.Background()
	bare := &models.Property{LandlordID: s.landlord.ID, Address: "12 Oak Lane", Price: 1500}
	pictured := &models.Property{
		LandlordID:       s.landlord.ID,
		Address:          "8 Elm Street",
		Price:            2100,
		ImagePath:        "8-elm.jpg",
		ImageContentType: "image/jpeg",
	}
	s.Require().NoError(s.repo.Create(ctx, bare))
	s.Require().NoError(s.repo.Create(ctx, pictured))

	items, err := s.repo.ListAll(ctx)
	s.NoError(err)
	s.Require().Len(items, 2)

	byAddress := map[string]models.PropertyListItem{}
	for _, item := range items {
		byAddress[item.Address] = item
	}
	s.False(byAddress["12 Oak Lane"].HasImage)
	s.True(byAddress["8 Elm Street"].HasImage)
}

func (s *PropertyRepositoryTestSuite) TestListByLandlord_OnlyReturnsOwn() {
	ctx := context.Background()
	other := &models.User{Name: "Omar", Email: "omar@example.com", Role: models.RoleLandlord}
	s.Require().NoError(s.userRepo.Create(ctx, other))

	s.Require().NoError(s.repo.Create(ctx, &models.Property{LandlordID: s.landlord.ID, Address: "12 Oak Lane", Price: 1500}))
	s.Require().NoError(s.repo.Create(ctx, &models.Property{LandlordID: other.ID, Address: "8 Elm Street", Price: 2100}))

	properties, err := s.repo.ListByLandlord(ctx, s.landlord.ID)
	s.NoError(err)
	s.Require().Len(properties, 1)
	s.Equal("12 Oak Lane", properties[0].Address)
}
