package entity

import (
	"time"

	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

const (
	// OtpMaxAttempts bounds verification attempts per token.
	OtpMaxAttempts = 5
	// OtpDefaultTTL applies when an issuer passes a non-positive ttl.
	OtpDefaultTTL = 300 * time.Second
	// OtpCleanupGrace is how long an expired token is kept before the sweep removes it.
	OtpCleanupGrace = 10 * time.Minute
)

type OtpContext string

const (
	OtpContextLogin          OtpContext = "login"
	OtpContextPasswordReset  OtpContext = "password_reset"
	OtpContextPasswordChange OtpContext = "password_change"
	OtpContextEmailChange    OtpContext = "email_change"
)

func (c OtpContext) String() string {
	return string(c)
}

// Purpose is the human label used in mail subjects.
func (c OtpContext) Purpose() string {
	switch c {
	case OtpContextLogin:
		return "Login"
	case OtpContextPasswordReset:
		return "Password Reset"
	case OtpContextPasswordChange:
		return "Password Change"
	case OtpContextEmailChange:
		return "Email Change"
	default:
		return "Verification"
	}
}

type OtpToken struct {
	ID         string
	Email      string
	AdminID    *int64
	Context    OtpContext
	CodeHash   string
	Attempts   int
	ExpiresAt  time.Time
	VerifiedAt *time.Time
	Metadata   valueobject.JSONMap
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Owner resolves the account an OTP was issued for: the admin id when known,
// otherwise the subject email.
func (t OtpToken) Owner() Owner {
	if t.AdminID != nil {
		return KnownOwner(*t.AdminID)
	}
	return UnknownOwner(t.Email)
}

// BelongsTo reports whether the token was issued for the given admin.
func (t OtpToken) BelongsTo(adminID int64) bool {
	return t.AdminID != nil && *t.AdminID == adminID
}

// Owner is either Known(admin id) or Unknown(email).
type Owner struct {
	adminID int64
	email   string
}

func KnownOwner(adminID int64) Owner {
	return Owner{adminID: adminID}
}

func UnknownOwner(email string) Owner {
	return Owner{email: email}
}

// AdminID returns the admin id and true for a Known owner.
func (o Owner) AdminID() (int64, bool) {
	return o.adminID, o.adminID > 0
}

// Email returns the fallback email of an Unknown owner.
func (o Owner) Email() string {
	return o.email
}

// OtpVerdict is the outcome of one verification.
type OtpVerdict int

const (
	OtpVerdictNotFound OtpVerdict = iota
	OtpVerdictVerified
	OtpVerdictMismatch
	OtpVerdictAlreadyVerified
	OtpVerdictExpired
	OtpVerdictExhausted
)

func (v OtpVerdict) OK() bool {
	return v == OtpVerdictVerified
}

func (v OtpVerdict) String() string {
	switch v {
	case OtpVerdictVerified:
		return "verified"
	case OtpVerdictMismatch:
		return "mismatch"
	case OtpVerdictAlreadyVerified:
		return "already_verified"
	case OtpVerdictExpired:
		return "expired"
	case OtpVerdictExhausted:
		return "exhausted"
	default:
		return "not_found"
	}
}
