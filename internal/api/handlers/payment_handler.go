package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dwellist/dwellist-backend/internal/api/middleware"
	"github.com/dwellist/dwellist-backend/internal/api/response"
	apperrors "github.com/dwellist/dwellist-backend/internal/errors"
	"github.com/dwellist/dwellist-backend/internal/logger"
	"github.com/dwellist/dwellist-backend/internal/payment"
	"github.com/dwellist/dwellist-backend/internal/repository"
	"github.com/dwellist/dwellist-backend/internal/web"
	"github.com/labstack/echo/v4"
)

// PaymentHandler serves the tenant rent payment page and proxies charges to
// the payment simulator.
type PaymentHandler struct {
	users    repository.UserRepository
	links    repository.LinkRepository
	payments *payment.Client
	security *logger.SecurityLogger
	logger   *slog.Logger
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(
	users repository.UserRepository,
	links repository.LinkRepository,
	payments *payment.Client,
	security *logger.SecurityLogger,
	log *slog.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		users:    users,
		links:    links,
		payments: payments,
		security: security,
		logger:   log,
	}
}

// Page handles GET /tenant-dashboard/pay-rent. A history fetch failure
// degrades to an empty list; the page still renders.
func (h *PaymentHandler) Page(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	}

	view := web.PayRentView{}

	user, err := h.users.GetByID(c.Request().Context(), principal.ID)
	if err != nil {
		h.logger.Error("failed to load user for payment page", slog.String("error", err.Error()))
		return c.Render(http.StatusOK, "pay_rent.html", view)
	}

	view.History = h.payments.FetchHistory(c.Request().Context(), user.Email)

	if landlords, err := h.links.ListLandlords(c.Request().Context(), principal.ID); err == nil {
		view.Landlords = landlords
	}

	return c.Render(http.StatusOK, "pay_rent.html", view)
}

// Charge handles POST /tenant-dashboard/pay-rent. The response is JSON: the
// page submits the form with fetch so a decline can be shown inline.
func (h *PaymentHandler) Charge(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Error(c, apperrors.ErrUnauthorized)
	}

	user, err := h.users.GetByID(c.Request().Context(), principal.ID)
	if err != nil {
		return response.InternalError(c, "failed to load account")
	}

	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil || amount <= 0 {
		return response.BadRequest(c, "amount must be a positive number")
	}
	currency := strings.TrimSpace(c.FormValue("currency"))
	if currency == "" {
		currency = "USD"
	}

	card := payment.Card{
		Number:     strings.ReplaceAll(strings.TrimSpace(c.FormValue("card_number")), " ", ""),
		HolderName: strings.TrimSpace(c.FormValue("holder_name")),
		Expiry:     strings.TrimSpace(c.FormValue("expiry")),
		CVC:        strings.TrimSpace(c.FormValue("cvc")),
	}
	if card.Number == "" || card.HolderName == "" {
		return response.BadRequest(c, "card number and holder name are required")
	}

	result, err := h.payments.Charge(c.Request().Context(), user.Email, card, amount, currency)
	if err != nil {
		if payErr := apperrors.GetPaymentError(err); payErr != nil {
			h.security.PaymentFailure(c.RealIP(), user.Email, cardLastFour(card.Number), payErr.Message)
			return response.PaymentError(c, payErr)
		}
		h.logger.Error("charge failed", slog.String("error", err.Error()))
		return response.InternalError(c, "payment failed")
	}

	return response.Success(c, result)
}

// cardLastFour returns the last four digits of a card number, for logging
func cardLastFour(number string) string {
	if len(number) < 4 {
		return ""
	}
	return number[len(number)-4:]
}
