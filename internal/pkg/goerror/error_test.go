package goerror

import (
	"errors"
	"net/http"
	"testing"
)

func TestError_StatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "server", err: NewServer(errors.New("db down")), want: http.StatusInternalServerError},
		{name: "invalid format", err: NewInvalidFormat(), want: http.StatusBadRequest},
		{name: "invalid input", err: NewInvalidInput(errors.New("bad")), want: http.StatusUnprocessableEntity},
		{name: "not found", err: NewBusiness("Setting not found", CodeNotFound), want: http.StatusNotFound},
		{name: "conflict", err: NewBusiness("dup", CodeConflict), want: http.StatusConflict},
		{name: "gone", err: NewBusiness("OTP expired or invalid", CodeGone), want: http.StatusGone},
		{name: "unavailable", err: NewUnavailable("Unable to send OTP email at this time", errors.New("dial")), want: http.StatusServiceUnavailable},
		{name: "too many", err: NewBusiness("slow down", CodeTooManyRequest), want: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var gerr *Error

			// Act
			ok := errors.As(tt.err, &gerr)

			// Assert
			if !ok {
				t.Fatalf("expected *Error, got %T", tt.err)
			}
			if got := gerr.StatusCode(); got != tt.want {
				t.Fatalf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewInvalidInput_Fields(t *testing.T) {
	// Arrange & Act
	err := NewInvalidInput(nil, "email", "already taken", "code", "too short")

	// Assert
	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.Fields()["email"] != "already taken" || gerr.Fields()["code"] != "too short" {
		t.Fatalf("unexpected fields: %v", gerr.Fields())
	}
	if gerr.Code() != CodeInvalidInput {
		t.Fatalf("Code() = %s, want %s", gerr.Code(), CodeInvalidInput)
	}
}

func TestNewInvalidInput_OddPairs(t *testing.T) {
	// Act
	err := NewInvalidInput(nil, "email")

	// Assert
	if CodeOf(err) != CodeInvalidFormat {
		t.Fatalf("CodeOf() = %s, want %s", CodeOf(err), CodeInvalidFormat)
	}
}

func TestNewUnavailable_Unwrap(t *testing.T) {
	// Arrange
	cause := errors.New("smtp: connection refused")

	// Act
	err := NewUnavailable("Unable to send OTP email at this time", cause)

	// Assert
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause")
	}
	var gerr *Error
	if !errors.As(err, &gerr) || gerr.Msg() != "Unable to send OTP email at this time" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestCodeOf_PlainError(t *testing.T) {
	if got := CodeOf(errors.New("plain")); got != CodeInternal {
		t.Fatalf("CodeOf() = %s, want %s", got, CodeInternal)
	}
}
