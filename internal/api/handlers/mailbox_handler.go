package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dwellist/dwellist-backend/internal/api/middleware"
	"github.com/dwellist/dwellist-backend/internal/auth"
	apperrors "github.com/dwellist/dwellist-backend/internal/errors"
	"github.com/dwellist/dwellist-backend/internal/models"
	"github.com/dwellist/dwellist-backend/internal/repository"
	"github.com/dwellist/dwellist-backend/internal/services"
	"github.com/dwellist/dwellist-backend/internal/web"
	"github.com/labstack/echo/v4"
)

// MailboxHandler serves the internal mailbox pages for both roles
type MailboxHandler struct {
	mailbox services.MailboxService
	links   repository.LinkRepository
	logger  *slog.Logger
}

// NewMailboxHandler creates a new MailboxHandler
func NewMailboxHandler(mailbox services.MailboxService, links repository.LinkRepository, logger *slog.Logger) *MailboxHandler {
	return &MailboxHandler{mailbox: mailbox, links: links, logger: logger}
}

// Inbox handles GET <dashboard>/mailbox
func (h *MailboxHandler) Inbox(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	}

	messages, err := h.mailbox.List(c.Request().Context(), principal.ID)
	if err != nil {
		h.logger.Error("failed to list mailbox",
			slog.Uint64("user_id", uint64(principal.ID)),
			slog.String("error", err.Error()))
	}

	return c.Render(http.StatusOK, "mailbox.html", web.MailboxView{
		UserID:   principal.ID,
		Role:     principal.Role,
		Messages: messages,
	})
}

// Compose handles GET <dashboard>/mailbox/compose
func (h *MailboxHandler) Compose(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	}
	return c.Render(http.StatusOK, "compose.html", h.composeView(c, principal))
}

// Send handles POST <dashboard>/mailbox/compose. An unresolvable recipient
// re-renders the form with an inline error and nothing is sent.
func (h *MailboxHandler) Send(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	}

	recipients := strings.Split(c.FormValue("recipients"), ",")
	subject := strings.TrimSpace(c.FormValue("subject"))
	content := strings.TrimSpace(c.FormValue("content"))

	report, err := h.mailbox.Send(c.Request().Context(), principal.ID, recipients, subject, content)
	if err != nil {
		view := h.composeView(c, principal)
		switch {
		case errors.Is(err, apperrors.ErrRecipientNotFound):
			view.Error = "One of the recipients does not have an account. Nothing was sent."
		case errors.Is(err, apperrors.ErrInvalidInput):
			view.Error = "A message needs at least one recipient and some content."
		default:
			h.logger.Error("failed to send mailbox message",
				slog.Uint64("sender_id", uint64(principal.ID)),
				slog.String("error", err.Error()))
			view.Error = "Could not send the message. Please try again."
		}
		return c.Render(http.StatusOK, "compose.html", view)
	}

	if len(report.Failed) > 0 {
		view := h.composeView(c, principal)
		view.Success = fmt.Sprintf("Delivered %d message(s).", report.Delivered)
		view.Error = fmt.Sprintf("Could not deliver to: %s", strings.Join(report.Failed, ", "))
		return c.Render(http.StatusOK, "compose.html", view)
	}

	return c.Redirect(http.StatusFound, dashboardPath(principal.Role)+"/mailbox")
}

// composeView fills the recipient suggestions from the sender's links
func (h *MailboxHandler) composeView(c echo.Context, principal *auth.Principal) web.ComposeView {
	view := web.ComposeView{
		Role:   principal.Role,
		CanAll: principal.Role == models.RoleLandlord,
	}

	var contacts []models.User
	var err error
	if principal.Role == models.RoleLandlord {
		contacts, err = h.links.ListTenants(c.Request().Context(), principal.ID)
	} else {
		contacts, err = h.links.ListLandlords(c.Request().Context(), principal.ID)
	}
	if err != nil {
		h.logger.Error("failed to list contacts", slog.String("error", err.Error()))
		return view
	}
	view.Contacts = contacts
	return view
}
