package otp

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pquerna/otp"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestNumeric_Generate(t *testing.T) {
	tests := []struct {
		name    string
		digits  otp.Digits
		wantLen int
	}{
		{name: "six", digits: otp.DigitsSix, wantLen: 6},
		{name: "eight", digits: otp.DigitsEight, wantLen: 8},
		{name: "unsupported falls back to six", digits: otp.Digits(4), wantLen: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			gen := NewNumeric(tt.digits)

			// Act
			code, err := gen.Generate()

			// Assert
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(code) != tt.wantLen {
				t.Fatalf("len(%q) = %d, want %d", code, len(code), tt.wantLen)
			}
			for _, r := range code {
				if r < '0' || r > '9' {
					t.Fatalf("non digit in %q", code)
				}
			}
		})
	}
}

func TestNumeric_ZeroPadded(t *testing.T) {
	// Arrange: an all-zero source always draws 0
	gen := &Numeric{digits: otp.DigitsSix, random: bytes.NewReader(make([]byte, 64))}

	// Act
	code, err := gen.Generate()

	// Assert
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if code != "000000" {
		t.Fatalf("Generate() = %q, want 000000", code)
	}
}

func TestNumeric_RandomFailure(t *testing.T) {
	gen := &Numeric{digits: otp.DigitsSix, random: failingReader{}}

	if _, err := gen.Generate(); err == nil {
		t.Fatal("expected error from failing random source")
	}
}
