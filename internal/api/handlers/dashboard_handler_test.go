package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/dwellist/dwellist-backend/internal/api/middleware"
	"github.com/dwellist/dwellist-backend/internal/auth"
	"github.com/dwellist/dwellist-backend/internal/models"
	"github.com/dwellist/dwellist-backend/internal/repository"
	"github.com/dwellist/dwellist-backend/tests/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	echo      *echo.Echo
	handler   *DashboardHandler
	mockUsers *mocks.MockUserRepository
	mockLinks *mocks.MockLinkRepository
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	s.echo = newTestEcho(s.T())
	s.mockUsers = new(mocks.MockUserRepository)
	s.mockLinks = new(mocks.MockLinkRepository)
	s.handler = NewDashboardHandler(s.mockUsers, s.mockLinks, slog.Default())
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	s.mockUsers.AssertExpectations(s.T())
	s.mockLinks.AssertExpectations(s.T())
}

func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (s *DashboardHandlerTestSuite) TestTenant_GreetsByName() {
	s.mockUsers.On("GetByID", mock.Anything, uint(7)).
		Return(&models.User{ID: 7, Name: "Casey", Role: models.RoleTenant}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tenant-dashboard", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	middleware.SetPrincipal(c, &auth.Principal{ID: 7, Role: models.RoleTenant})

	err := s.handler.Tenant(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Casey")
}

func (s *DashboardHandlerTestSuite) TestAddTenant_LinksExistingAccount() {
	s.mockUsers.On("GetByEmail", mock.Anything, "casey@example.com").
		Return(&models.User{ID: 7, Email: "casey@example.com", Role: models.RoleTenant}, nil)
	s.mockLinks.On("Link", mock.Anything, uint(9), uint(7)).Return(nil)

	req := formRequest("/landlord-dashboard/tenants", url.Values{"tenant_email": {" Casey@Example.com "}})
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	middleware.SetPrincipal(c, &auth.Principal{ID: 9, Role: models.RoleLandlord})

	err := s.handler.AddTenant(c)

	s.NoError(err)
	s.Equal(http.StatusFound, rec.Code)
	s.Equal("/landlord-dashboard?tenant=added", rec.Header().Get("Location"))
}

func (s *DashboardHandlerTestSuite) TestAddTenant_UnknownEmail() {
	s.mockUsers.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrNotFound)

	req := formRequest("/landlord-dashboard/tenants", url.Values{"tenant_email": {"ghost@example.com"}})
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	middleware.SetPrincipal(c, &auth.Principal{ID: 9, Role: models.RoleLandlord})

	err := s.handler.AddTenant(c)

	s.NoError(err)
	s.Equal("/landlord-dashboard?tenant=unknown", rec.Header().Get("Location"))
	s.mockLinks.AssertNotCalled(s.T(), "Link", mock.Anything, mock.Anything, mock.Anything)
}

func (s *DashboardHandlerTestSuite) TestAddTenant_EmptyEmail() {
	req := formRequest("/landlord-dashboard/tenants", url.Values{})
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	middleware.SetPrincipal(c, &auth.Principal{ID: 9, Role: models.RoleLandlord})

	err := s.handler.AddTenant(c)

	s.NoError(err)
	s.Equal("/landlord-dashboard?tenant=unknown", rec.Header().Get("Location"))
}
