package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shandysiswandi/academia/internal/admin/entity"
	"github.com/shandysiswandi/academia/internal/pkg/clock"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/hash"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/otp"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type otpStore interface {
	CreateOtpToken(ctx context.Context, t entity.OtpToken) error
	GetOtpToken(ctx context.Context, id string) (*entity.OtpToken, error)
	// ChargeOtpAttempt increments attempts of a usable token and returns its
	// code hash. It returns goerror.ErrNotFound when no usable token matches.
	ChargeOtpAttempt(ctx context.Context, id string, now time.Time, maxAttempts int) (string, error)
	MarkOtpTokenVerified(ctx context.Context, id string, at time.Time) error
	DeleteOtpTokensExpiredBefore(ctx context.Context, before time.Time) (int64, error)
}

type IssueOTPInput struct {
	Email    string
	Context  entity.OtpContext
	Owner    entity.Owner
	TTL      time.Duration
	Metadata map[string]any
}

type IssueOTPOutput struct {
	TokenID   string
	Code      string
	ExpiresAt time.Time
	TTL       time.Duration
}

// OTP issues and verifies short-lived numeric codes. All state lives in the store.
type OTP struct {
	store otpStore
	code  otp.Generator
	hash  hash.Hash
	ulid  uid.StringID
	clock clock.Clocker
	ins   instrument.Instrumentation
}

type OTPDependency struct {
	Store      otpStore
	Code       otp.Generator
	Hash       hash.Hash
	ULID       uid.StringID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func NewOTP(dep OTPDependency) *OTP {
	return &OTP{
		store: dep.Store,
		code:  dep.Code,
		hash:  dep.Hash,
		ulid:  dep.ULID,
		clock: dep.Clock,
		ins:   dep.Instrument,
	}
}

// Issue persists a new token and returns its id together with the plaintext code.
func (o *OTP) Issue(ctx context.Context, in IssueOTPInput) (*IssueOTPOutput, error) {
	ctx, span := o.ins.Tracer("admin.usecase.otp").Start(ctx, "Issue")
	defer span.End()

	ttl := in.TTL
	if ttl <= 0 {
		ttl = entity.OtpDefaultTTL
	}

	code, err := o.code.Generate()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	codeHash, err := o.hash.Hash(code)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	now := o.clock.Now()
	token := entity.OtpToken{
		ID:        o.ulid.Generate(),
		Email:     in.Email,
		Context:   in.Context,
		CodeHash:  string(codeHash),
		ExpiresAt: now.Add(ttl),
		Metadata:  valueobject.JSONMap(in.Metadata),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if id, ok := in.Owner.AdminID(); ok {
		token.AdminID = &id
	}

	if err := o.store.CreateOtpToken(ctx, token); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("otp.context", in.Context.String()))

	return &IssueOTPOutput{
		TokenID:   token.ID,
		Code:      code,
		ExpiresAt: token.ExpiresAt,
		TTL:       ttl,
	}, nil
}

// Verify charges one attempt against a usable token, then compares the code.
// Only infrastructure failures are returned as errors.
func (o *OTP) Verify(ctx context.Context, tokenID, code string) (entity.OtpVerdict, error) {
	ctx, span := o.ins.Tracer("admin.usecase.otp").Start(ctx, "Verify")
	defer span.End()

	now := o.clock.Now()

	codeHash, err := o.store.ChargeOtpAttempt(ctx, tokenID, now, entity.OtpMaxAttempts)
	if errors.Is(err, goerror.ErrNotFound) {
		verdict, cErr := o.classify(ctx, tokenID, now)
		if cErr != nil {
			span.RecordError(cErr)
			span.SetStatus(codes.Error, cErr.Error())
			return entity.OtpVerdictNotFound, cErr
		}
		span.SetAttributes(attribute.String("otp.verdict", verdict.String()))
		return verdict, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return entity.OtpVerdictNotFound, err
	}

	if !o.hash.Verify(codeHash, code) {
		span.SetAttributes(attribute.String("otp.verdict", entity.OtpVerdictMismatch.String()))
		return entity.OtpVerdictMismatch, nil
	}

	err = o.store.MarkOtpTokenVerified(ctx, tokenID, now)
	if errors.Is(err, goerror.ErrNotFound) {
		// a concurrent request with the same code won
		span.SetAttributes(attribute.String("otp.verdict", entity.OtpVerdictAlreadyVerified.String()))
		return entity.OtpVerdictAlreadyVerified, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return entity.OtpVerdictNotFound, err
	}

	span.SetAttributes(attribute.String("otp.verdict", entity.OtpVerdictVerified.String()))
	return entity.OtpVerdictVerified, nil
}

// classify explains why a token was not usable without touching its attempts.
func (o *OTP) classify(ctx context.Context, tokenID string, now time.Time) (entity.OtpVerdict, error) {
	token, err := o.store.GetOtpToken(ctx, tokenID)
	if errors.Is(err, goerror.ErrNotFound) {
		return entity.OtpVerdictNotFound, nil
	}
	if err != nil {
		return entity.OtpVerdictNotFound, err
	}

	switch {
	case token.VerifiedAt != nil:
		return entity.OtpVerdictAlreadyVerified, nil
	case !token.ExpiresAt.After(now):
		return entity.OtpVerdictExpired, nil
	case token.Attempts >= entity.OtpMaxAttempts:
		return entity.OtpVerdictExhausted, nil
	default:
		// deleted and re-created between the two statements
		return entity.OtpVerdictNotFound, nil
	}
}

// CleanupExpired removes tokens whose expiry is older than the grace period.
func (o *OTP) CleanupExpired(ctx context.Context) (int64, error) {
	ctx, span := o.ins.Tracer("admin.usecase.otp").Start(ctx, "CleanupExpired")
	defer span.End()

	n, err := o.store.DeleteOtpTokensExpiredBefore(ctx, o.clock.Now().Add(-entity.OtpCleanupGrace))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("otp.deleted", n))
	return n, nil
}
