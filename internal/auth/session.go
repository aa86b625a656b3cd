package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dwellist/dwellist-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "dwellist_session"

// ErrInvalidSession indicates the session token is missing, malformed,
// expired, or references a user that no longer exists. Callers treat the
// request as anonymous.
var ErrInvalidSession = errors.New("invalid session")

// Principal is the authenticated user for the current request
type Principal struct {
	ID   uint
	Role string
}

// SessionClaims is the JWT payload for a session token. The user id is the
// serialized session state; the role claim is a hint only, the directory row
// is authoritative on resolve.
type SessionClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionManager issues and resolves signed session cookies
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	users  repository.UserRepository
	secure bool
}

// NewSessionManager creates a SessionManager. secure controls the cookie
// Secure attribute and should be true whenever the app is served over HTTPS.
func NewSessionManager(secret string, ttl time.Duration, users repository.UserRepository, secure bool) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		ttl:    ttl,
		users:  users,
		secure: secure,
	}
}

// Issue creates a signed session token for the user
func (m *SessionManager) Issue(userID uint, role string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Cookie wraps a session token in the session cookie
func (m *SessionManager) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie returns an expired session cookie
func (m *SessionManager) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Resolve parses a session token and looks the user up in the directory.
// A token referencing a removed user yields ErrInvalidSession: the session
// is dead and the request proceeds as anonymous.
func (m *SessionManager) Resolve(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	parsed, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || claims.UserID == 0 {
		return nil, ErrInvalidSession
	}

	user, err := m.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	return &Principal{ID: user.ID, Role: user.Role}, nil
}
