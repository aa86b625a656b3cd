package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dwellist/dwellist-backend/internal/api/middleware"
	"github.com/dwellist/dwellist-backend/internal/auth"
	"github.com/dwellist/dwellist-backend/internal/logger"
	"github.com/dwellist/dwellist-backend/internal/models"
	"github.com/dwellist/dwellist-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// stateCookieName carries the OAuth state token between the redirect to the
// provider and the callback.
const stateCookieName = "dwellist_oauth_state"

// AuthHandler drives the OAuth login flow and session lifecycle
type AuthHandler struct {
	provider auth.IdentityProvider
	sessions *auth.SessionManager
	users    repository.UserRepository
	security *logger.SecurityLogger
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(
	provider auth.IdentityProvider,
	sessions *auth.SessionManager,
	users repository.UserRepository,
	security *logger.SecurityLogger,
	log *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		provider: provider,
		sessions: sessions,
		users:    users,
		security: security,
		logger:   log,
	}
}

// GoogleLogin handles GET /auth/google
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	state := uuid.New().String()
	c.SetCookie(&http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state))
}

// GoogleCallback handles GET /auth/google/callback. Any failure along the
// handshake sends the visitor back to the login page.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	stateCookie, err := c.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != c.QueryParam("state") {
		h.security.AuthFailure(c.RealIP(), c.Path(), "oauth_state_mismatch")
		return h.loginFailed(c)
	}

	code := c.QueryParam("code")
	if code == "" {
		h.security.AuthFailure(c.RealIP(), c.Path(), "oauth_code_missing")
		return h.loginFailed(c)
	}

	profile, err := h.provider.Exchange(c.Request().Context(), code)
	if err != nil {
		h.security.AuthFailure(c.RealIP(), c.Path(), "oauth_exchange_failed")
		h.logger.Error("oauth exchange failed", slog.String("error", err.Error()))
		return h.loginFailed(c)
	}

	user, created, err := h.users.FindOrCreate(c.Request().Context(), profile)
	if err != nil {
		h.logger.Error("failed to find or create user", slog.String("error", err.Error()))
		return h.loginFailed(c)
	}
	if created {
		h.logger.Info("new account created",
			slog.Uint64("user_id", uint64(user.ID)),
			slog.String("role", user.Role))
	}

	token, err := h.sessions.Issue(user.ID, user.Role)
	if err != nil {
		h.logger.Error("failed to issue session", slog.String("error", err.Error()))
		return h.loginFailed(c)
	}
	c.SetCookie(h.sessions.Cookie(token))

	return c.Redirect(http.StatusFound, dashboardPath(user.Role))
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessions.ClearCookie())
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) loginFailed(c echo.Context) error {
	return c.Redirect(http.StatusFound, middleware.LoginPath+"?error=auth")
}

// dashboardPath returns the dashboard root for a role
func dashboardPath(role string) string {
	if role == models.RoleLandlord {
		return "/landlord-dashboard"
	}
	return "/tenant-dashboard"
}
