package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dwellist/dwellist-backend/internal/api/middleware"
	"github.com/dwellist/dwellist-backend/internal/repository"
	"github.com/dwellist/dwellist-backend/internal/web"
	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the role dashboards and the landlord's tenant
// roster management.
type DashboardHandler struct {
	users  repository.UserRepository
	links  repository.LinkRepository
	logger *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(users repository.UserRepository, links repository.LinkRepository, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{users: users, links: links, logger: logger}
}

// Tenant handles GET /tenant-dashboard
func (h *DashboardHandler) Tenant(c echo.Context) error {
	view := h.dashboardView(c, "tenant")
	return c.Render(http.StatusOK, "tenant_dashboard.html", view)
}

// Landlord handles GET /landlord-dashboard
func (h *DashboardHandler) Landlord(c echo.Context) error {
	view := h.dashboardView(c, "landlord")

	switch c.QueryParam("tenant") {
	case "added":
		view.Success = "Tenant added."
	case "unknown":
		view.Error = "No account exists with that email address."
	case "failed":
		view.Error = "Could not add the tenant. Please try again."
	}

	return c.Render(http.StatusOK, "landlord_dashboard.html", view)
}

// AddTenant handles POST /landlord-dashboard/tenants, linking an existing
// account to the landlord by email. Linking an already linked tenant is a
// no-op.
func (h *DashboardHandler) AddTenant(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	}

	email := strings.ToLower(strings.TrimSpace(c.FormValue("tenant_email")))
	if email == "" {
		return c.Redirect(http.StatusFound, "/landlord-dashboard?tenant=unknown")
	}

	tenant, err := h.users.GetByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Redirect(http.StatusFound, "/landlord-dashboard?tenant=unknown")
		}
		h.logger.Error("failed to look up tenant", slog.String("error", err.Error()))
		return c.Redirect(http.StatusFound, "/landlord-dashboard?tenant=failed")
	}

	if err := h.links.Link(c.Request().Context(), principal.ID, tenant.ID); err != nil {
		h.logger.Error("failed to link tenant",
			slog.Uint64("landlord_id", uint64(principal.ID)),
			slog.Uint64("tenant_id", uint64(tenant.ID)),
			slog.String("error", err.Error()))
		return c.Redirect(http.StatusFound, "/landlord-dashboard?tenant=failed")
	}

	return c.Redirect(http.StatusFound, "/landlord-dashboard?tenant=added")
}

// dashboardView loads the display name. The route guard has already ensured
// an authenticated principal with the right role.
func (h *DashboardHandler) dashboardView(c echo.Context, role string) web.DashboardView {
	view := web.DashboardView{Role: role}

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return view
	}

	user, err := h.users.GetByID(c.Request().Context(), principal.ID)
	if err != nil {
		h.logger.Error("failed to load user for dashboard", slog.String("error", err.Error()))
		return view
	}
	view.Name = user.Name
	return view
}
