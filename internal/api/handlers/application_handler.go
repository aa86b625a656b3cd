package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dwellist/dwellist-backend/internal/api/middleware"
	apperrors "github.com/dwellist/dwellist-backend/internal/errors"
	"github.com/dwellist/dwellist-backend/internal/services"
	"github.com/dwellist/dwellist-backend/internal/web"
	"github.com/labstack/echo/v4"
)

// ApplicationHandler serves the application review pages
type ApplicationHandler struct {
	applications services.ApplicationService
	logger       *slog.Logger
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(applications services.ApplicationService, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, logger: logger}
}

// TenantList handles GET /tenant-dashboard/applications
func (h *ApplicationHandler) TenantList(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	}

	view := web.ApplicationsView{Role: principal.Role}
	items, err := h.applications.ListByTenant(c.Request().Context(), principal.ID)
	if err != nil {
		h.logger.Error("failed to list tenant applications", slog.String("error", err.Error()))
	} else {
		view.Applications = items
	}

	return c.Render(http.StatusOK, "applications.html", view)
}

// LandlordList handles GET /landlord-dashboard/applications
func (h *ApplicationHandler) LandlordList(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	}

	view := web.ApplicationsView{Role: principal.Role}
	items, err := h.applications.ListForLandlord(c.Request().Context(), principal.ID)
	if err != nil {
		h.logger.Error("failed to list landlord applications", slog.String("error", err.Error()))
	} else {
		view.Applications = items
	}

	switch c.QueryParam("decision") {
	case "recorded":
		view.Success = "Decision recorded."
	case "invalid":
		view.Error = "A decision must be either approved or rejected."
	case "missing":
		view.Error = "That application no longer exists."
	case "failed":
		view.Error = "Could not record the decision. Please try again."
	}

	return c.Render(http.StatusOK, "applications.html", view)
}

// Decide handles POST /landlord-dashboard/applications/:id/decide. A repeat
// decision overwrites the previous status.
func (h *ApplicationHandler) Decide(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.Redirect(http.StatusFound, "/landlord-dashboard/applications?decision=missing")
	}

	if err := h.applications.Decide(c.Request().Context(), uint(id), c.FormValue("decision")); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidInput):
			return c.Redirect(http.StatusFound, "/landlord-dashboard/applications?decision=invalid")
		case errors.Is(err, apperrors.ErrApplicationNotFound):
			return c.Redirect(http.StatusFound, "/landlord-dashboard/applications?decision=missing")
		default:
			h.logger.Error("failed to record decision",
				slog.Uint64("application_id", id),
				slog.String("error", err.Error()))
			return c.Redirect(http.StatusFound, "/landlord-dashboard/applications?decision=failed")
		}
	}

	return c.Redirect(http.StatusFound, "/landlord-dashboard/applications?decision=recorded")
}
