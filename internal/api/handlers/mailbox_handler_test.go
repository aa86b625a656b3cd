package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/dwellist/dwellist-backend/internal/api/middleware"
	"github.com/dwellist/dwellist-backend/internal/auth"
	apperrors "github.com/dwellist/dwellist-backend/internal/errors"
	"github.com/dwellist/dwellist-backend/internal/models"
	"github.com/dwellist/dwellist-backend/internal/services"
	"github.com/dwellist/dwellist-backend/tests/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MailboxHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	handler     *MailboxHandler
	mockMailbox *mocks.MockMailboxService
	mockLinks   *mocks.MockLinkRepository
}

func (s *MailboxHandlerTestSuite) SetupTest() {
	s.echo = newTestEcho(s.T())
	s.mockMailbox = new(mocks.MockMailboxService)
	s.mockLinks = new(mocks.MockLinkRepository)
	s.handler = NewMailboxHandler(s.mockMailbox, s.mockLinks, slog.Default())
}

func (s *MailboxHandlerTestSuite) TearDownTest() {
	s.mockMailbox.AssertExpectations(s.T())
	s.mockLinks.AssertExpectations(s.T())
}

func TestMailboxHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MailboxHandlerTestSuite))
}

func (s *MailboxHandlerTestSuite) tenantContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	middleware.SetPrincipal(c, &auth.Principal{ID: 7, Role: models.RoleTenant})
	return c, rec
}

func (s *MailboxHandlerTestSuite) landlordContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	middleware.SetPrincipal(c, &auth.Principal{ID: 9, Role: models.RoleLandlord})
	return c, rec
}

func (s *MailboxHandlerTestSuite) TestInbox_RendersMessages() {
	s.mockMailbox.On("List", mock.Anything, uint(7)).Return([]models.MailboxListItem{
		{ID: 1, SenderID: 9, ReceiverID: 7, SenderName: "Lena", Subject: "Boiler inspection", MessageContent: "Tuesday at 9am.", SentAt: time.Now()},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tenant-dashboard/mailbox", nil)
	c, rec := s.tenantContext(req)

	err := s.handler.Inbox(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Boiler inspection")
	s.Contains(rec.Body.String(), "Lena")
}

func (s *MailboxHandlerTestSuite) TestCompose_LandlordSeesAllSentinelHint() {
	s.mockLinks.On("ListTenants", mock.Anything, uint(9)).Return([]models.User{
		{ID: 7, Email: "casey@example.com"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/landlord-dashboard/mailbox/compose", nil)
	c, rec := s.landlordContext(req)

	err := s.handler.Compose(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "all")
	s.Contains(rec.Body.String(), "casey@example.com")
}

func (s *MailboxHandlerTestSuite) TestSend_Success_RedirectsToMailbox() {
	s.mockMailbox.On("Send", mock.Anything, uint(7), []string{"lena@example.com"}, "Rent", "Paid today.").
		Return(&services.SendReport{Delivered: 1}, nil)

	req := formRequest("/tenant-dashboard/mailbox/compose", url.Values{
		"recipients": {"lena@example.com"},
		"subject":    {"Rent"},
		"content":    {"Paid today."},
	})
	c, rec := s.tenantContext(req)

	err := s.handler.Send(c)

	s.NoError(err)
	s.Equal(http.StatusFound, rec.Code)
	s.Equal("/tenant-dashboard/mailbox", rec.Header().Get("Location"))
}

func (s *MailboxHandlerTestSuite) TestSend_UnknownRecipientRerendersWithError() {
	s.mockMailbox.On("Send", mock.Anything, uint(7), []string{"ghost@example.com"}, "Hi", "Hello").
		Return(nil, apperrors.ErrRecipientNotFound)
	s.mockLinks.On("ListLandlords", mock.Anything, uint(7)).Return([]models.User{}, nil)

	req := formRequest("/tenant-dashboard/mailbox/compose", url.Values{
		"recipients": {"ghost@example.com"},
		"subject":    {"Hi"},
		"content":    {"Hello"},
	})
	c, rec := s.tenantContext(req)

	err := s.handler.Send(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "does not have an account")
}

func (s *MailboxHandlerTestSuite) TestSend_EmptyContentRerendersWithError() {
	s.mockMailbox.On("Send", mock.Anything, uint(7), []string{"lena@example.com"}, "", "").
		Return(nil, apperrors.ErrInvalidInput)
	s.mockLinks.On("ListLandlords", mock.Anything, uint(7)).Return([]models.User{}, nil)

	req := formRequest("/tenant-dashboard/mailbox/compose", url.Values{
		"recipients": {"lena@example.com"},
	})
	c, rec := s.tenantContext(req)

	err := s.handler.Send(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "at least one recipient")
}

func (s *MailboxHandlerTestSuite) TestSend_PartialFailureReportsBoth() {
	s.mockMailbox.On("Send", mock.Anything, uint(9), []string{"all"}, "Notice", "Water off Friday.").
		Return(&services.SendReport{Delivered: 2, Failed: []string{"casey@example.com"}}, nil)
	s.mockLinks.On("ListTenants", mock.Anything, uint(9)).Return([]models.User{}, nil)

	req := formRequest("/landlord-dashboard/mailbox/compose", url.Values{
		"recipients": {"all"},
		"subject":    {"Notice"},
		"content":    {"Water off Friday."},
	})
	c, rec := s.landlordContext(req)

	err := s.handler.Send(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Delivered 2 message(s).")
	s.Contains(rec.Body.String(), "casey@example.com")
}

func (s *MailboxHandlerTestSuite) TestSend_BackendFailureRerendersGenericError() {
	s.mockMailbox.On("Send", mock.Anything, uint(7), []string{"lena@example.com"}, "Hi", "Hello").
		Return(nil, errors.New("db down"))
	s.mockLinks.On("ListLandlords", mock.Anything, uint(7)).Return([]models.User{}, nil)

	req := formRequest("/tenant-dashboard/mailbox/compose", url.Values{
		"recipients": {"lena@example.com"},
		"subject":    {"Hi"},
		"content":    {"Hello"},
	})
	c, rec := s.tenantContext(req)

	err := s.handler.Send(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Could not send the message")
	s.NotContains(rec.Body.String(), "db down")
}
