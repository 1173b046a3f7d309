package jwt

import (
	"errors"
	"testing"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeUUID struct{}

func (fakeUUID) Generate() string { return "0194a8f2-7b3c-7def-8a10-1234567890ab" }

func newTestHMAC(t *testing.T, clk *fakeClock) *HMAC {
	t.Helper()

	h, err := New(Config{
		Secret: []byte("a-test-secret-that-is-long-enough"),
		Issuer: "https://academia.test",
		TTL:    time.Hour,
		Clock:  clk,
		UUID:   fakeUUID{},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return h
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
		wantAlg string
	}{
		{name: "missing secret", cfg: Config{}, wantErr: ErrMissingSecret},
		{name: "unsupported algorithm", cfg: Config{Secret: []byte("s"), Algorithm: "RS256"}, wantErr: ErrInvalidSigningMethod},
		{name: "default algorithm", cfg: Config{Secret: []byte("s")}, wantAlg: "HS256"},
		{name: "lowercase algorithm", cfg: Config{Secret: []byte("s"), Algorithm: "hs512"}, wantAlg: "HS512"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			h, err := New(tt.cfg)

			// Assert
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if h.method.Alg() != tt.wantAlg {
					t.Fatalf("alg = %s, want %s", h.method.Alg(), tt.wantAlg)
				}
				if h.TTL() != DefaultTTL {
					t.Fatalf("TTL() = %s, want %s", h.TTL(), DefaultTTL)
				}
			}
		})
	}
}

func TestHMAC_IssueVerify(t *testing.T) {
	// Arrange
	clk := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	h := newTestHMAC(t, clk)

	// Act
	token, err := h.Issue(Subject{ID: 42, Role: "super_admin"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	claims, err := h.Verify(token)

	// Assert
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.AdminID() != 42 || claims.Role != "super_admin" {
		t.Fatalf("unexpected claims: sub=%s role=%s", claims.Subject, claims.Role)
	}
	if claims.Issuer != "https://academia.test" {
		t.Fatalf("issuer = %s", claims.Issuer)
	}
	if !claims.ExpiresAt.Time.Equal(clk.now.Add(time.Hour)) {
		t.Fatalf("exp = %s, want %s", claims.ExpiresAt.Time, clk.now.Add(time.Hour))
	}
}

func TestHMAC_IssueRejectsEmptySubject(t *testing.T) {
	h := newTestHMAC(t, &fakeClock{now: time.Now()})

	if _, err := h.Issue(Subject{ID: 1}); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("Issue() error = %v, want %v", err, ErrInvalidPayload)
	}
}

func TestHMAC_VerifyRejections(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		token   func(t *testing.T, h *HMAC, clk *fakeClock) string
		wantErr error
	}{
		{
			name:    "malformed",
			token:   func(*testing.T, *HMAC, *fakeClock) string { return "not-a-jwt" },
			wantErr: ErrTokenMalformed,
		},
		{
			name: "bad signature",
			token: func(t *testing.T, _ *HMAC, clk *fakeClock) string {
				other, err := New(Config{Secret: []byte("another-secret"), Issuer: "https://academia.test", Clock: clk, UUID: fakeUUID{}})
				if err != nil {
					t.Fatalf("New() error = %v", err)
				}
				tok, err := other.Issue(Subject{ID: 1, Role: "admin"})
				if err != nil {
					t.Fatalf("Issue() error = %v", err)
				}
				return tok
			},
			wantErr: ErrTokenSignature,
		},
		{
			name: "expired",
			token: func(t *testing.T, h *HMAC, clk *fakeClock) string {
				tok, err := h.Issue(Subject{ID: 1, Role: "admin"})
				if err != nil {
					t.Fatalf("Issue() error = %v", err)
				}
				clk.now = clk.now.Add(2 * time.Hour)
				return tok
			},
			wantErr: ErrTokenExpired,
		},
		{
			name: "missing role",
			token: func(t *testing.T, h *HMAC, clk *fakeClock) string {
				tok, err := libJWT.NewWithClaims(libJWT.SigningMethodHS256, libJWT.RegisteredClaims{
					Subject:   "7",
					Issuer:    "https://academia.test",
					IssuedAt:  libJWT.NewNumericDate(clk.now),
					ExpiresAt: libJWT.NewNumericDate(clk.now.Add(time.Minute)),
				}).SignedString(h.secret)
				if err != nil {
					t.Fatalf("SignedString() error = %v", err)
				}
				return tok
			},
			wantErr: ErrInvalidPayload,
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T, h *HMAC, clk *fakeClock) string {
				tok, err := libJWT.NewWithClaims(libJWT.SigningMethodHS256, Claims{
					RegisteredClaims: libJWT.RegisteredClaims{
						Subject:   "7",
						Issuer:    "https://elsewhere.test",
						IssuedAt:  libJWT.NewNumericDate(clk.now),
						ExpiresAt: libJWT.NewNumericDate(clk.now.Add(time.Minute)),
					},
					Role: "admin",
				}).SignedString(h.secret)
				if err != nil {
					t.Fatalf("SignedString() error = %v", err)
				}
				return tok
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			clk := &fakeClock{now: base}
			h := newTestHMAC(t, clk)
			token := tt.token(t, h, clk)

			// Act
			_, err := h.Verify(token)

			// Assert
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
