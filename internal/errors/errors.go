package errors

import (
	"errors"
	"fmt"
)

// Domain-specific error types
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateEntry indicates a unique constraint violation
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrInvalidInput indicates invalid input data
	ErrInvalidInput = errors.New("invalid input")

	// ErrPropertyNotFound indicates the property listing was not found
	ErrPropertyNotFound = errors.New("property not found")

	// ErrApplicationNotFound indicates the rental application was not found
	ErrApplicationNotFound = errors.New("application not found")

	// ErrRecipientNotFound indicates a mailbox recipient does not exist
	ErrRecipientNotFound = errors.New("recipient not found")

	// ErrUnauthorized indicates unauthorized access
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates forbidden access
	ErrForbidden = errors.New("forbidden")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal server error")

	// Payment-specific errors
	// ErrPaymentDeclined indicates the payment provider declined the charge
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrPaymentUnavailable indicates the payment provider could not be reached
	ErrPaymentUnavailable = errors.New("payment provider unavailable")
)

// Error codes for API responses
const (
	CodeNotFound           = "NOT_FOUND"
	CodeDuplicateEntry     = "DUPLICATE_ENTRY"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInternalError      = "INTERNAL_ERROR"
	CodePaymentDeclined    = "PAYMENT_DECLINED"
	CodePaymentUnavailable = "PAYMENT_UNAVAILABLE"
)

// AppError represents an application error with context
type AppError struct {
	Err     error
	Message string
	Code    string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(err error, message string, code string) *AppError {
	return &AppError{
		Err:     err,
		Message: message,
		Code:    code,
	}
}

// PaymentError carries the provider's decline context so the dashboard can
// show the tenant something actionable. Card data is never stored on it.
type PaymentError struct {
	Err       error  `json:"-"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Reference string `json:"reference,omitempty"`
	Declined  bool   `json:"declined"`
}

// Error implements the error interface
func (e *PaymentError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentDeclinedError creates a PaymentError for a declined charge
func NewPaymentDeclinedError(reference, reason string) *PaymentError {
	message := "payment was declined"
	if reason != "" {
		message = fmt.Sprintf("payment was declined: %s", reason)
	}
	return &PaymentError{
		Err:       ErrPaymentDeclined,
		Code:      CodePaymentDeclined,
		Message:   message,
		Reference: reference,
		Declined:  true,
	}
}

// NewPaymentUnavailableError creates a PaymentError for provider outages
func NewPaymentUnavailableError(err error) *PaymentError {
	return &PaymentError{
		Err:     ErrPaymentUnavailable,
		Code:    CodePaymentUnavailable,
		Message: fmt.Sprintf("payment provider unavailable: %v", err),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrPropertyNotFound) ||
		errors.Is(err, ErrApplicationNotFound) ||
		errors.Is(err, ErrRecipientNotFound)
}

// IsDuplicateEntry checks if the error is a duplicate entry error
func IsDuplicateEntry(err error) bool {
	return errors.Is(err, ErrDuplicateEntry)
}

// IsInvalidInput checks if the error is an invalid input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// GetErrorCode returns the appropriate error code for an error
func GetErrorCode(err error) string {
	switch {
	case IsNotFound(err):
		return CodeNotFound
	case IsDuplicateEntry(err):
		return CodeDuplicateEntry
	case IsInvalidInput(err):
		return CodeInvalidInput
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrPaymentDeclined):
		return CodePaymentDeclined
	case errors.Is(err, ErrPaymentUnavailable):
		return CodePaymentUnavailable
	default:
		return CodeInternalError
	}
}

// IsPaymentError checks if the error is a payment-related error
func IsPaymentError(err error) bool {
	var paymentErr *PaymentError
	return errors.As(err, &paymentErr)
}

// GetPaymentError extracts a PaymentError from an error if it exists
func GetPaymentError(err error) *PaymentError {
	var paymentErr *PaymentError
	if errors.As(err, &paymentErr) {
		return paymentErr
	}
	return nil
}
