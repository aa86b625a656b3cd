// Package middleware provides HTTP middleware for the Dwellist web app.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/dwellist/dwellist-backend/internal/auth"
	"github.com/labstack/echo/v4"
)

// principalKey is the echo context key holding the resolved Principal
const principalKey = "principal"

// LoginPath is where unauthenticated or unauthorized requests are sent.
// Failures redirect to the login page rather than returning 401/403: the
// consumer is a browser, not an API client.
const LoginPath = "/resident-login"

// LoadPrincipal resolves the session cookie once per request and stores the
// resulting Principal in the context. An absent or dead session leaves the
// request anonymous; this middleware never fails a request on its own.
func LoadPrincipal(sessions *auth.SessionManager, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(auth.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			principal, err := sessions.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				// Dead session: drop the cookie and continue anonymous.
				c.SetCookie(sessions.ClearCookie())
				if logger != nil {
					logger.Debug("session resolution failed",
						slog.String("path", c.Path()),
						slog.String("remote_ip", c.RealIP()))
				}
				return next(c)
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// RequireRole gates a route group on an authenticated principal with the
// given role. Both failure modes redirect to the login page.
func RequireRole(role string, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				return c.Redirect(http.StatusFound, LoginPath)
			}
			if principal.Role != role {
				if logger != nil {
					logger.Warn("role denied",
						slog.Uint64("user_id", uint64(principal.ID)),
						slog.String("have_role", principal.Role),
						slog.String("want_role", role),
						slog.String("path", c.Path()))
				}
				return c.Redirect(http.StatusFound, LoginPath)
			}
			return next(c)
		}
	}
}

// RequireAuthenticated gates a route on any authenticated principal,
// regardless of role. It guards script-facing endpoints, so anonymous
// requests get 401 instead of a login redirect.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := PrincipalFrom(c); !ok {
				return c.NoContent(http.StatusUnauthorized)
			}
			return next(c)
		}
	}
}

// PrincipalFrom returns the Principal resolved for this request, if any
func PrincipalFrom(c echo.Context) (*auth.Principal, bool) {
	principal, ok := c.Get(principalKey).(*auth.Principal)
	return principal, ok && principal != nil
}

// SetPrincipal stores a Principal in the context. Exposed for tests.
func SetPrincipal(c echo.Context, principal *auth.Principal) {
	c.Set(principalKey, principal)
}
