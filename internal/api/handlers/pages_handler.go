// Package handlers contains the HTTP handlers for the Dwellist web app.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dwellist/dwellist-backend/internal/api/middleware"
	apperrors "github.com/dwellist/dwellist-backend/internal/errors"
	"github.com/dwellist/dwellist-backend/internal/repository"
	"github.com/dwellist/dwellist-backend/internal/services"
	"github.com/dwellist/dwellist-backend/internal/validator"
	"github.com/dwellist/dwellist-backend/internal/web"
	"github.com/labstack/echo/v4"
)

// PagesHandler serves the public pages: landing, logins, listings, the
// contact form, and the rental application form.
type PagesHandler struct {
	properties   repository.PropertyRepository
	applications services.ApplicationService
	mailer       services.Mailer
	logger       *slog.Logger
}

// NewPagesHandler creates a new PagesHandler
func NewPagesHandler(
	properties repository.PropertyRepository,
	applications services.ApplicationService,
	mailer services.Mailer,
	logger *slog.Logger,
) *PagesHandler {
	return &PagesHandler{
		properties:   properties,
		applications: applications,
		mailer:       mailer,
		logger:       logger,
	}
}

// Home handles GET /
func (h *PagesHandler) Home(c echo.Context) error {
	view := web.HomeView{}

	properties, err := h.properties.ListAll(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list properties for home page", slog.String("error", err.Error()))
	} else {
		view.Properties = properties
	}

	switch c.QueryParam("contact") {
	case "sent":
		view.Success = "Thanks for reaching out. We will get back to you shortly."
	case "failed":
		view.Error = "We could not send your message right now. Please try again later."
	}

	return c.Render(http.StatusOK, "home.html", view)
}

// Login handles GET /login
func (h *PagesHandler) Login(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", web.LoginView{})
}

// ResidentLogin handles GET /resident-login
func (h *PagesHandler) ResidentLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "resident_login.html", loginView(c))
}

// LandlordLogin handles GET /landlord-login
func (h *PagesHandler) LandlordLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "landlord_login.html", loginView(c))
}

func loginView(c echo.Context) web.LoginView {
	view := web.LoginView{}
	if c.QueryParam("error") == "auth" {
		view.Error = "Sign-in failed. Please try again."
	}
	return view
}

// ListProperties handles GET /properties and returns every listing as JSON
func (h *PagesHandler) ListProperties(c echo.Context) error {
	properties, err := h.properties.ListAll(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list properties", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to list properties"})
	}
	return c.JSON(http.StatusOK, properties)
}

// SendEmail handles POST /send-email, forwarding the contact form through
// the configured mail relay.
func (h *PagesHandler) SendEmail(c echo.Context) error {
	name := strings.TrimSpace(c.FormValue("name"))
	email := strings.TrimSpace(c.FormValue("email"))
	subject := strings.TrimSpace(c.FormValue("subject"))
	body := strings.TrimSpace(c.FormValue("message"))

	if name == "" || body == "" {
		return c.Redirect(http.StatusFound, "/?contact=failed")
	}
	if err := validator.ValidateEmail(email); err != nil {
		return c.Redirect(http.StatusFound, "/?contact=failed")
	}

	msg := services.ContactMessage{
		Name:    name,
		ReplyTo: email,
		Subject: subject,
		Body:    body,
	}
	if err := h.mailer.SendContact(c.Request().Context(), msg); err != nil {
		h.logger.Error("contact form relay failed", slog.String("error", err.Error()))
		return c.Redirect(http.StatusFound, "/?contact=failed")
	}

	return c.Redirect(http.StatusFound, "/?contact=sent")
}

// RentalApplicationForm handles GET /rental-application
func (h *PagesHandler) RentalApplicationForm(c echo.Context) error {
	view := web.RentalApplicationView{}

	properties, err := h.properties.ListAll(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list properties for application form", slog.String("error", err.Error()))
	} else {
		view.Properties = properties
	}

	switch c.QueryParam("application") {
	case "submitted":
		view.Success = "Your application has been submitted."
	case "invalid":
		view.Error = "Please fill in your name, contact email, and a valid property."
	case "failed":
		view.Error = "We could not record your application. Please try again."
	}

	return c.Render(http.StatusOK, "rental_application.html", view)
}

// SubmitRentalApplication handles POST /rental-application. The form itself
// is public but recording an application needs a logged-in account.
func (h *PagesHandler) SubmitRentalApplication(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	}

	propertyID, err := strconv.ParseUint(c.FormValue("property_id"), 10, 32)
	if err != nil {
		return c.Redirect(http.StatusFound, "/rental-application?application=invalid")
	}

	if err := validator.ValidateEmail(strings.TrimSpace(c.FormValue("contact_email"))); err != nil {
		return c.Redirect(http.StatusFound, "/rental-application?application=invalid")
	}
	if err := validator.ValidateMoveInDate(strings.TrimSpace(c.FormValue("move_in_date"))); err != nil {
		return c.Redirect(http.StatusFound, "/rental-application?application=invalid")
	}

	income, _ := strconv.ParseFloat(c.FormValue("annual_income"), 64)
	input := services.ApplicationInput{
		ApplicantName: strings.TrimSpace(c.FormValue("applicant_name")),
		ContactEmail:  strings.TrimSpace(c.FormValue("contact_email")),
		ContactPhone:  strings.TrimSpace(c.FormValue("contact_phone")),
		AnnualIncome:  income,
		Occupation:    strings.TrimSpace(c.FormValue("occupation")),
		MoveInDate:    strings.TrimSpace(c.FormValue("move_in_date")),
	}

	if _, err := h.applications.Submit(c.Request().Context(), principal.ID, uint(propertyID), input); err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) || errors.Is(err, apperrors.ErrPropertyNotFound) {
			return c.Redirect(http.StatusFound, "/rental-application?application=invalid")
		}
		h.logger.Error("failed to record application", slog.String("error", err.Error()))
		return c.Redirect(http.StatusFound, "/rental-application?application=failed")
	}

	return c.Redirect(http.StatusFound, "/rental-application?application=submitted")
}
