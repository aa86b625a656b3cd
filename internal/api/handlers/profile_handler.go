package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dwellist/dwellist-backend/internal/api/middleware"
	"github.com/dwellist/dwellist-backend/internal/repository"
	"github.com/dwellist/dwellist-backend/internal/validator"
	"github.com/dwellist/dwellist-backend/internal/web"
	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the profile page for both roles. A role change moves
// the account between dashboards on the next request.
type ProfileHandler struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(users repository.UserRepository, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{users: users, logger: logger}
}

// Show handles GET <dashboard>/profile
func (h *ProfileHandler) Show(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	}

	user, err := h.users.GetByID(c.Request().Context(), principal.ID)
	if err != nil {
		h.logger.Error("failed to load user for profile", slog.String("error", err.Error()))
		return c.Render(http.StatusInternalServerError, "error.html", web.ErrorView{})
	}

	view := web.ProfileView{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	switch c.QueryParam("profile") {
	case "saved":
		view.Success = "Profile saved."
	case "invalid":
		view.Error = "Please provide a name and a valid role."
	}

	return c.Render(http.StatusOK, "profile.html", view)
}

// Update handles POST <dashboard>/profile
func (h *ProfileHandler) Update(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	}

	name := validator.SanitizeString(strings.TrimSpace(c.FormValue("name")), 255)
	role := strings.TrimSpace(c.FormValue("role"))

	profilePath := dashboardPath(principal.Role) + "/profile"
	if name == "" {
		return c.Redirect(http.StatusFound, profilePath+"?profile=invalid")
	}
	if err := validator.ValidateRole(role); err != nil {
		return c.Redirect(http.StatusFound, profilePath+"?profile=invalid")
	}

	if err := h.users.UpdateProfile(c.Request().Context(), principal.ID, name, role); err != nil {
		h.logger.Error("failed to update profile",
			slog.Uint64("user_id", uint64(principal.ID)),
			slog.String("error", err.Error()))
		return c.Redirect(http.StatusFound, profilePath+"?profile=invalid")
	}

	// The profile lives under the dashboard matching the saved role.
	return c.Redirect(http.StatusFound, dashboardPath(role)+"/profile?profile=saved")
}
