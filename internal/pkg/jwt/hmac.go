package jwt

import (
	"errors"
	"strconv"
	"strings"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
)

// HMAC implements JWT signing and verification using a shared secret.
type HMAC struct {
	secret []byte
	method *libJWT.SigningMethodHMAC
	issuer string
	ttl    time.Duration
	clock  clocker
	uuid   generator
}

// New constructs an HMAC implementation. It fails when the secret is empty or the
// algorithm is not an HMAC variant.
func New(cfg Config) (*HMAC, error) {
	if len(cfg.Secret) == 0 {
		return nil, ErrMissingSecret
	}

	alg := strings.ToUpper(strings.TrimSpace(cfg.Algorithm))
	if alg == "" {
		alg = DefaultAlgorithm
	}

	var method *libJWT.SigningMethodHMAC
	switch alg {
	case libJWT.SigningMethodHS256.Alg():
		method = libJWT.SigningMethodHS256
	case libJWT.SigningMethodHS384.Alg():
		method = libJWT.SigningMethodHS384
	case libJWT.SigningMethodHS512.Alg():
		method = libJWT.SigningMethodHS512
	default:
		return nil, ErrInvalidSigningMethod
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &HMAC{
		secret: cfg.Secret,
		method: method,
		issuer: cfg.Issuer,
		ttl:    ttl,
		clock:  cfg.Clock,
		uuid:   cfg.UUID,
	}, nil
}

// TTL reports the lifetime applied to issued tokens.
func (h *HMAC) TTL() time.Duration {
	return h.ttl
}

// Issue creates a signed JWT for the subject.
func (h *HMAC) Issue(sub Subject) (string, error) {
	if sub.ID <= 0 || sub.Role == "" {
		return "", ErrInvalidPayload
	}

	now := h.clock.Now()

	return libJWT.
		NewWithClaims(h.method, Claims{
			RegisteredClaims: libJWT.RegisteredClaims{
				ID:        h.uuid.Generate(),
				Subject:   strconv.FormatInt(sub.ID, 10),
				Issuer:    h.issuer,
				IssuedAt:  libJWT.NewNumericDate(now),
				NotBefore: libJWT.NewNumericDate(now),
				ExpiresAt: libJWT.NewNumericDate(now.Add(h.ttl)),
			},
			Role: sub.Role,
		}).
		SignedString(h.secret)
}

// Verify parses and validates a JWT string.
func (h *HMAC) Verify(tokenStr string) (Claims, error) {
	var claims Claims

	opts := []libJWT.ParserOption{
		libJWT.WithValidMethods([]string{h.method.Alg()}),
		libJWT.WithIssuedAt(),
		libJWT.WithExpirationRequired(),
		libJWT.WithTimeFunc(h.clock.Now),
	}
	if h.issuer != "" {
		opts = append(opts, libJWT.WithIssuer(h.issuer))
	}

	token, err := libJWT.ParseWithClaims(tokenStr, &claims, func(t *libJWT.Token) (any, error) {
		if _, ok := t.Method.(*libJWT.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSigningMethod
		}
		return h.secret, nil
	}, opts...)

	switch {
	case err == nil:
	case errors.Is(err, libJWT.ErrTokenMalformed):
		return Claims{}, ErrTokenMalformed
	case errors.Is(err, libJWT.ErrTokenSignatureInvalid):
		return Claims{}, ErrTokenSignature
	case errors.Is(err, libJWT.ErrTokenExpired):
		return Claims{}, ErrTokenExpired
	default:
		return Claims{}, ErrInvalidToken
	}

	if !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	if claims.AdminID() <= 0 || claims.Role == "" {
		return Claims{}, ErrInvalidPayload
	}

	return claims, nil
}
