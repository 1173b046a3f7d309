package secret

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func newCipher(t *testing.T) *AESGCM {
	t.Helper()

	c, err := NewAESGCM(bytes.Repeat([]byte{7}, 32))
	if err != nil {
		t.Fatalf("NewAESGCM() error = %v", err)
	}
	return c
}

func TestNewAESGCM_KeyLength(t *testing.T) {
	if _, err := NewAESGCM([]byte("short")); !errors.Is(err, ErrInvalidKeyLength) {
		t.Fatalf("NewAESGCM() error = %v, want %v", err, ErrInvalidKeyLength)
	}
}

func TestAESGCM_RoundTrip(t *testing.T) {
	// Arrange
	c := newCipher(t)

	// Act
	enc, err := c.Encrypt("s3cr3t-pass", "smtp.password")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	dec, err := c.Decrypt(enc, "smtp.password")

	// Assert
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if !strings.HasPrefix(enc, Prefix) || strings.Contains(enc, "s3cr3t-pass") {
		t.Fatalf("unexpected stored form %q", enc)
	}
	if dec != "s3cr3t-pass" {
		t.Fatalf("Decrypt() = %q", dec)
	}
}

func TestAESGCM_EncryptPassThrough(t *testing.T) {
	c := newCipher(t)

	for _, in := range []string{"", "enc:already"} {
		out, err := c.Encrypt(in, "smtp.password")
		if err != nil || out != in {
			t.Fatalf("Encrypt(%q) = %q, %v", in, out, err)
		}
	}
}

func TestAESGCM_DecryptFailures(t *testing.T) {
	c := newCipher(t)
	enc, err := c.Encrypt("value", "smtp.username")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	tests := []struct {
		name    string
		stored  string
		scope   string
		wantErr error
	}{
		{name: "plaintext", stored: "value", scope: "smtp.username", wantErr: ErrNotEncrypted},
		{name: "wrong scope", stored: enc, scope: "smtp.password", wantErr: ErrDecryptFailed},
		{name: "bad base64", stored: Prefix + "%%%", scope: "smtp.username", wantErr: ErrDecryptFailed},
		{name: "too short", stored: Prefix + "AAAA", scope: "smtp.username", wantErr: ErrCiphertextTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Decrypt(tt.stored, tt.scope); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decrypt() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
