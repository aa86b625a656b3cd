package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppError_CreatesErrorWithCorrectFields(t *testing.T) {
	baseErr := errors.New("base error")
	appErr := NewAppError(baseErr, "custom message", CodeNotFound)

	assert.Equal(t, baseErr, appErr.Err)
	assert.Equal(t, "custom message", appErr.Message)
	assert.Equal(t, CodeNotFound, appErr.Code)
}

func TestAppError_Error_ReturnsMessage(t *testing.T) {
	baseErr := errors.New("base error")
	appErr := NewAppError(baseErr, "custom message", CodeNotFound)

	assert.Equal(t, "custom message", appErr.Error())
}

func TestAppError_Error_ReturnsBaseErrorWhenNoMessage(t *testing.T) {
	baseErr := errors.New("base error")
	appErr := NewAppError(baseErr, "", CodeNotFound)

	assert.Equal(t, "base error", appErr.Error())
}

func TestAppError_Unwrap_ReturnsWrappedError(t *testing.T) {
	baseErr := errors.New("base error")
	appErr := NewAppError(baseErr, "custom message", CodeNotFound)

	unwrapped := appErr.Unwrap()
	assert.Equal(t, baseErr, unwrapped)
}

func TestWrap_WrapsErrorWithContext(t *testing.T) {
	baseErr := errors.New("base error")
	wrapped := Wrap(baseErr, "context")

	assert.Contains(t, wrapped.Error(), "context")
	assert.Contains(t, wrapped.Error(), "base error")
}

func TestWrap_ReturnsNilForNilError(t *testing.T) {
	wrapped := Wrap(nil, "context")
	assert.Nil(t, wrapped)
}

func TestIsNotFound_ReturnsTrueForNotFoundErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"ErrNotFound", ErrNotFound, true},
		{"ErrPropertyNotFound", ErrPropertyNotFound, true},
		{"ErrApplicationNotFound", ErrApplicationNotFound, true},
		{"ErrRecipientNotFound", ErrRecipientNotFound, true},
		{"wrapped ErrNotFound", Wrap(ErrNotFound, "context"), true},
		{"other error", errors.New("other"), false},
		{"ErrDuplicateEntry", ErrDuplicateEntry, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsNotFound(tt.err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestIsDuplicateEntry_ReturnsTrueForDuplicateErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"ErrDuplicateEntry", ErrDuplicateEntry, true},
		{"wrapped ErrDuplicateEntry", Wrap(ErrDuplicateEntry, "context"), true},
		{"other error", errors.New("other"), false},
		{"ErrNotFound", ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsDuplicateEntry(tt.err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestIsInvalidInput_ReturnsTrueForInvalidInputErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"ErrInvalidInput", ErrInvalidInput, true},
		{"wrapped ErrInvalidInput", Wrap(ErrInvalidInput, "context"), true},
		{"other error", errors.New("other"), false},
		{"ErrNotFound", ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsInvalidInput(tt.err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestGetErrorCode_ReturnsCorrectCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNotFound", ErrNotFound, CodeNotFound},
		{"ErrPropertyNotFound", ErrPropertyNotFound, CodeNotFound},
		{"ErrApplicationNotFound", ErrApplicationNotFound, CodeNotFound},
		{"ErrRecipientNotFound", ErrRecipientNotFound, CodeNotFound},
		{"ErrDuplicateEntry", ErrDuplicateEntry, CodeDuplicateEntry},
		{"ErrInvalidInput", ErrInvalidInput, CodeInvalidInput},
		{"ErrUnauthorized", ErrUnauthorized, CodeUnauthorized},
		{"ErrForbidden", ErrForbidden, CodeForbidden},
		{"ErrPaymentDeclined", ErrPaymentDeclined, CodePaymentDeclined},
		{"ErrPaymentUnavailable", ErrPaymentUnavailable, CodePaymentUnavailable},
		{"unknown error", errors.New("unknown"), CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetErrorCode(tt.err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestErrorCodes_AreCorrectValues(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", CodeNotFound)
	assert.Equal(t, "DUPLICATE_ENTRY", CodeDuplicateEntry)
	assert.Equal(t, "INVALID_INPUT", CodeInvalidInput)
	assert.Equal(t, "UNAUTHORIZED", CodeUnauthorized)
	assert.Equal(t, "FORBIDDEN", CodeForbidden)
	assert.Equal(t, "INTERNAL_ERROR", CodeInternalError)
	assert.Equal(t, "PAYMENT_DECLINED", CodePaymentDeclined)
	assert.Equal(t, "PAYMENT_UNAVAILABLE", CodePaymentUnavailable)
}

func TestAppError_ImplementsErrorInterface(t *testing.T) {
	var err error = NewAppError(ErrNotFound, "test", CodeNotFound)
	assert.NotNil(t, err)
	assert.Equal(t, "test", err.Error())
}

func TestAppError_CanBeUnwrappedWithErrorsIs(t *testing.T) {
	appErr := NewAppError(ErrNotFound, "test", CodeNotFound)

	// errors.Is should work through Unwrap
	assert.True(t, errors.Is(appErr, ErrNotFound))
}

func TestNewPaymentDeclinedError_CarriesReference(t *testing.T) {
	paymentErr := NewPaymentDeclinedError("ch_123", "insufficient funds")

	assert.True(t, paymentErr.Declined)
	assert.Equal(t, "ch_123", paymentErr.Reference)
	assert.Equal(t, CodePaymentDeclined, paymentErr.Code)
	assert.Contains(t, paymentErr.Error(), "insufficient funds")
	assert.True(t, errors.Is(paymentErr, ErrPaymentDeclined))
}

func TestNewPaymentUnavailableError_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	paymentErr := NewPaymentUnavailableError(cause)

	assert.False(t, paymentErr.Declined)
	assert.Equal(t, CodePaymentUnavailable, paymentErr.Code)
	assert.True(t, errors.Is(paymentErr, ErrPaymentUnavailable))
}

func TestGetPaymentError_ExtractsThroughWrapping(t *testing.T) {
	paymentErr := NewPaymentDeclinedError("ch_456", "")
	wrapped := Wrap(paymentErr, "charging rent")

	assert.True(t, IsPaymentError(wrapped))
	extracted := GetPaymentError(wrapped)
	assert.NotNil(t, extracted)
	assert.Equal(t, "ch_456", extracted.Reference)

	assert.Nil(t, GetPaymentError(errors.New("plain")))
}
