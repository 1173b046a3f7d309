package jwt

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingSecret is returned when no signing secret is configured.
	ErrMissingSecret = errors.New("jwt: signing secret is not configured")

	// ErrInvalidSigningMethod is returned when the configured or presented algorithm is not supported.
	ErrInvalidSigningMethod = errors.New("jwt: invalid signing method")

	// ErrTokenMalformed is returned when the token cannot be parsed.
	ErrTokenMalformed = errors.New("jwt: token is malformed")

	// ErrTokenSignature is returned when the signature does not match.
	ErrTokenSignature = errors.New("jwt: token signature is invalid")

	// ErrTokenExpired is returned when the token has expired.
	ErrTokenExpired = errors.New("jwt: token has expired")

	// ErrInvalidToken is returned when the token fails any other validation.
	ErrInvalidToken = errors.New("jwt: invalid token")

	// ErrInvalidPayload is returned when a structurally valid token lacks subject or role.
	ErrInvalidPayload = errors.New("jwt: invalid token payload")
)

const (
	// DefaultTTL is used when Config.TTL is not positive.
	DefaultTTL = 24 * time.Hour
	// DefaultAlgorithm is used when Config.Algorithm is empty.
	DefaultAlgorithm = "HS256"
)

// JWT issues and verifies access tokens.
type JWT interface {
	// Issue creates a signed token for the subject.
	Issue(sub Subject) (string, error)
	// Verify parses and validates the token and returns its claims.
	Verify(tokenStr string) (Claims, error)
	// TTL reports the lifetime applied to issued tokens.
	TTL() time.Duration
}

type clocker interface {
	Now() time.Time
}

type generator interface {
	Generate() string
}

type jwtContextKey struct{}

// Config defines the inputs for building a JWT implementation.
type Config struct {
	// Secret is the HMAC signing key.
	Secret []byte
	// Algorithm is one of HS256, HS384, HS512.
	Algorithm string
	// Issuer is the token issuer value.
	Issuer string
	// TTL is the token time-to-live.
	TTL time.Duration
	// Clock provides the current time source.
	Clock clocker
	// UUID generates token IDs.
	UUID generator
}

// Subject is the identity a token is issued for.
type Subject struct {
	ID   int64
	Role string
}

// Claims wraps the registered claims with the admin role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// AdminID parses the subject claim as an admin id.
func (c Claims) AdminID() int64 {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// GetAuth returns the claims stored in the context, if any.
func GetAuth(ctx context.Context) *Claims {
	clm, ok := ctx.Value(jwtContextKey{}).(Claims)
	if !ok {
		return nil
	}

	return &clm
}

// SetAuth stores claims in the context.
func SetAuth(ctx context.Context, clm Claims) context.Context {
	return context.WithValue(ctx, jwtContextKey{}, clm)
}
