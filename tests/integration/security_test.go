package integration

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/dwellist/dwellist-backend/internal/api/middleware"
	"github.com/dwellist/dwellist-backend/internal/auth"
	"github.com/dwellist/dwellist-backend/internal/models"
	"github.com/dwellist/dwellist-backend/tests/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSecurityMiddlewareIntegration(t *testing.T) {
	logger := testLogger()

	newApp := func(sessions *auth.SessionManager) *echo.Echo {
		e := echo.New()
		e.Use(middleware.Recover())
		e.Use(middleware.SecureHeaders())
		e.Use(middleware.SecureCORS("https://dwellist.example.com", "production"))
		e.Use(middleware.RateLimiter(100, 200, logger))
		e.Use(middleware.LoadPrincipal(sessions, logger))

		e.GET("/", func(c echo.Context) error {
			return c.String(http.StatusOK, "home")
		})

		tenant := e.Group("/tenant-dashboard", middleware.RequireRole(models.RoleTenant, logger))
		tenant.GET("", func(c echo.Context) error {
			return c.String(http.StatusOK, "tenant dashboard")
		})

		landlord := e.Group("/landlord-dashboard", middleware.RequireRole(models.RoleLandlord, logger))
		landlord.GET("", func(c echo.Context) error {
			return c.String(http.StatusOK, "landlord dashboard")
		})

		return e
	}

	newSessions := func(users *mocks.MockUserRepository) *auth.SessionManager {
		return auth.NewSessionManager("0123456789abcdef0123456789abcdef", time.Hour, users, false)
	}

	t.Run("public page carries security headers", func(t *testing.T) {
		e := newApp(newSessions(new(mocks.MockUserRepository)))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
		if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
			t.Error("X-Content-Type-Options header missing")
		}
		if rec.Header().Get("X-Frame-Options") != "DENY" {
			t.Error("X-Frame-Options header missing")
		}
	})

	t.Run("anonymous dashboard request redirects to login", func(t *testing.T) {
		e := newApp(newSessions(new(mocks.MockUserRepository)))

		req := httptest.NewRequest(http.MethodGet, "/tenant-dashboard", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusFound {
			t.Errorf("expected status 302, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != middleware.LoginPath {
			t.Errorf("expected redirect to %s, got %s", middleware.LoginPath, loc)
		}
	})

	t.Run("valid session reaches the matching dashboard", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("GetByID", mock.Anything, uint(7)).
			Return(&models.User{ID: 7, Name: "Casey", Role: models.RoleTenant}, nil)
		sessions := newSessions(users)
		e := newApp(sessions)

		token, err := sessions.Issue(7, models.RoleTenant)
		if err != nil {
			t.Fatalf("failed to issue session: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/tenant-dashboard", nil)
		req.AddCookie(sessions.Cookie(token))
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
	})

	t.Run("tenant session on landlord dashboard redirects to login", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("GetByID", mock.Anything, uint(7)).
			Return(&models.User{ID: 7, Name: "Casey", Role: models.RoleTenant}, nil)
		sessions := newSessions(users)
		e := newApp(sessions)

		token, err := sessions.Issue(7, models.RoleTenant)
		if err != nil {
			t.Fatalf("failed to issue session: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/landlord-dashboard", nil)
		req.AddCookie(sessions.Cookie(token))
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusFound {
			t.Errorf("expected status 302, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != middleware.LoginPath {
			t.Errorf("expected redirect to %s, got %s", middleware.LoginPath, loc)
		}
	})

	t.Run("session for a deleted account is treated as anonymous", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("GetByID", mock.Anything, uint(7)).
			Return(nil, context.DeadlineExceeded)
		sessions := newSessions(users)
		e := newApp(sessions)

		token, err := sessions.Issue(7, models.RoleTenant)
		if err != nil {
			t.Fatalf("failed to issue session: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/tenant-dashboard", nil)
		req.AddCookie(sessions.Cookie(token))
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusFound {
			t.Errorf("expected status 302, got %d", rec.Code)
		}
	})

	t.Run("cross origin request gets no allow header", func(t *testing.T) {
		e := newApp(newSessions(new(mocks.MockUserRepository)))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "" {
			t.Errorf("expected no allow-origin header for foreign origin, got %q", got)
		}
	})

	t.Run("configured origin gets the allow header", func(t *testing.T) {
		e := newApp(newSessions(new(mocks.MockUserRepository)))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://dwellist.example.com")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "https://dwellist.example.com" {
			t.Errorf("expected allow-origin for configured origin, got %q", got)
		}
	})
}

func TestRateLimiterIntegration(t *testing.T) {
	logger := testLogger()

	e := echo.New()
	e.Use(middleware.RateLimiter(1, 3, logger))
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	limited := false
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "203.0.113.9")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Error("expected the burst to exhaust and a 429 response")
	}
}
