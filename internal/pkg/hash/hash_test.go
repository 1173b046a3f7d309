package hash

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashers_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		hasher Hash
		prefix string
	}{
		{name: "bcrypt", hasher: NewBcrypt(bcrypt.MinCost, "pepper"), prefix: "$2a$"},
		{name: "bcrypt without pepper", hasher: NewBcrypt(bcrypt.MinCost, ""), prefix: "$2a$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			hashed, err := tt.hasher.Hash("004271")

			// Assert
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			if !strings.HasPrefix(string(hashed), tt.prefix) {
				t.Fatalf("Hash() = %s, want prefix %s", hashed, tt.prefix)
			}
			if strings.Contains(string(hashed), "004271") {
				t.Fatal("hash must not contain the plaintext")
			}
			if !tt.hasher.Verify(string(hashed), "004271") {
				t.Fatal("Verify() = false for the right plaintext")
			}
			if tt.hasher.Verify(string(hashed), "004272") {
				t.Fatal("Verify() = true for a wrong plaintext")
			}
		})
	}
}

func TestBcrypt_PepperMatters(t *testing.T) {
	// Arrange
	a := NewBcrypt(bcrypt.MinCost, "one")
	b := NewBcrypt(bcrypt.MinCost, "two")

	// Act
	hashed, err := a.Hash("Secret123!")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	// Assert
	if b.Verify(string(hashed), "Secret123!") {
		t.Fatal("a different pepper must not verify")
	}
}

func TestBcrypt_LegacyPrefixAndCost(t *testing.T) {
	// Arrange
	h := NewBcrypt(99, "")
	hashed, err := NewBcrypt(bcrypt.MinCost, "").Hash("Secret123!")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	legacy := "$2y$" + strings.TrimPrefix(string(hashed), "$2a$")

	// Act
	ok := h.Verify(legacy, "Secret123!")

	// Assert
	if !ok {
		t.Fatal("a $2y$ hash must verify")
	}
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want default", h.cost)
	}
	if _, err := h.Hash(strings.Repeat("x", 73)); err == nil {
		t.Fatal("expected an error for input over 72 bytes")
	}
}
