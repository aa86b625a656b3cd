// Package validator provides input validation and sanitization functions
// for the Dwellist backend.
package validator

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dwellist/dwellist-backend/internal/models"
)

// Validation errors
var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidRole  = errors.New("invalid role")
	ErrInvalidPrice = errors.New("price must be positive")
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInputTooLong = errors.New("input exceeds maximum length")
	ErrEmptyInput   = errors.New("input cannot be empty")
)

// ValidateEmail validates email address format according to RFC 5322.
// Returns nil if valid, or an appropriate error.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	if email == "" {
		return ErrEmptyInput
	}

	// RFC 5321 specifies max email length of 254 characters
	if utf8.RuneCountInString(email) > 254 {
		return ErrInputTooLong
	}

	// Use Go's mail package for RFC 5322 validation
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}

	return nil
}

// ValidateRole checks that a role is one of the two known account roles
func ValidateRole(role string) error {
	switch role {
	case models.RoleTenant, models.RoleLandlord:
		return nil
	default:
		return ErrInvalidRole
	}
}

// ValidatePrice checks a listing's monthly rent
func ValidatePrice(price float64) error {
	if price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

// ValidateMoveInDate checks the application form's move-in date.
// An empty date is accepted; a present one must be YYYY-MM-DD.
func ValidateMoveInDate(date string) error {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// SanitizeFilename removes dangerous characters from filename.
// Prevents path traversal and removes control characters.
func SanitizeFilename(filename string) string {
	// Remove path separators to prevent path traversal
	filename = strings.ReplaceAll(filename, "/", "_")
	filename = strings.ReplaceAll(filename, "\\", "_")
	filename = strings.ReplaceAll(filename, "..", "_")

	// Remove null bytes
	filename = strings.ReplaceAll(filename, "\x00", "")

	// Remove control characters (ASCII 0-31 and 127)
	filename = strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, filename)

	// Trim whitespace
	filename = strings.TrimSpace(filename)

	// Limit length to 255 characters (common filesystem limit)
	if utf8.RuneCountInString(filename) > 255 {
		runes := []rune(filename)
		filename = string(runes[:255])
	}

	// Fallback for empty filename
	if filename == "" {
		return "unnamed"
	}

	return filename
}

// SanitizeString removes potentially dangerous characters and enforces length limits.
// Removes control characters and trims whitespace.
func SanitizeString(input string, maxLength int) string {
	// Remove control characters (ASCII 0-31 and 127)
	input = strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, input)

	// Trim whitespace
	input = strings.TrimSpace(input)

	// Enforce maximum length if specified
	if maxLength > 0 && utf8.RuneCountInString(input) > maxLength {
		runes := []rune(input)
		input = string(runes[:maxLength])
	}

	return input
}
