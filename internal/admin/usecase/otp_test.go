package usecase

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	libotp "github.com/pquerna/otp"
	"github.com/shandysiswandi/academia/internal/admin/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/otp"
)

func TestOTP_Issue(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()

	// Act
	out, err := e.otp.Issue(ctx, IssueOTPInput{
		Email:    "a@x.com",
		Context:  entity.OtpContextPasswordReset,
		Owner:    entity.KnownOwner(7),
		TTL:      2 * time.Minute,
		Metadata: map[string]any{"intent": "forgot_password"},
	})

	// Assert
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	stored, ok := e.store.tokens[out.TokenID]
	if !ok {
		t.Fatal("token not persisted")
	}
	if stored.CodeHash == out.Code || !e.bcrypt.Verify(stored.CodeHash, out.Code) {
		t.Fatal("stored hash does not match the issued code")
	}
	if !stored.ExpiresAt.Equal(testNow.Add(2*time.Minute)) || !out.ExpiresAt.Equal(stored.ExpiresAt) {
		t.Fatalf("expires_at = %s", stored.ExpiresAt)
	}
	if stored.Attempts != 0 || stored.VerifiedAt != nil {
		t.Fatalf("fresh token has attempts=%d verified_at=%v", stored.Attempts, stored.VerifiedAt)
	}
	if stored.AdminID == nil || *stored.AdminID != 7 || stored.Context != entity.OtpContextPasswordReset {
		t.Fatalf("owner/context not stored: %+v", stored)
	}
	if stored.Metadata["intent"] != "forgot_password" {
		t.Fatalf("metadata = %v", stored.Metadata)
	}
}

func TestOTP_IssueDefaults(t *testing.T) {
	// Arrange
	e := newEnv(t)
	e.otp.code = otp.NewNumeric(libotp.DigitsSix)
	digits := regexp.MustCompile(`^[0-9]{6}$`)

	// Act
	out, err := e.otp.Issue(context.Background(), IssueOTPInput{Email: "a@x.com", Context: entity.OtpContextLogin, Owner: entity.UnknownOwner("a@x.com")})

	// Assert
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if !digits.MatchString(out.Code) {
		t.Fatalf("code = %q, want six digits", out.Code)
	}
	if out.TTL != entity.OtpDefaultTTL {
		t.Fatalf("ttl = %s, want %s", out.TTL, entity.OtpDefaultTTL)
	}
	if e.store.tokens[out.TokenID].AdminID != nil {
		t.Fatal("unknown owner must not set admin_id")
	}
}

func TestOTP_IssueStoreFailure(t *testing.T) {
	// Arrange
	e := newEnv(t)
	cause := errors.New("db down")
	e.store.failCreate = cause

	// Act
	out, err := e.otp.Issue(context.Background(), IssueOTPInput{Email: "a@x.com", Context: entity.OtpContextLogin})

	// Assert
	if !errors.Is(err, cause) || out != nil {
		t.Fatalf("Issue() = %v, %v", out, err)
	}
}

func TestOTP_Verify(t *testing.T) {
	tests := []struct {
		name         string
		arrange      func(e *env, id string)
		code         string
		want         entity.OtpVerdict
		wantAttempts int
	}{
		{
			name:         "correct code",
			code:         "123456",
			want:         entity.OtpVerdictVerified,
			wantAttempts: 1,
		},
		{
			name:         "wrong code",
			code:         "654321",
			want:         entity.OtpVerdictMismatch,
			wantAttempts: 1,
		},
		{
			name: "expired",
			arrange: func(e *env, _ string) {
				e.clock.Advance(5*time.Minute + time.Second)
			},
			code:         "123456",
			want:         entity.OtpVerdictExpired,
			wantAttempts: 0,
		},
		{
			name: "exactly at expiry",
			arrange: func(e *env, _ string) {
				e.clock.Advance(5 * time.Minute)
			},
			code:         "123456",
			want:         entity.OtpVerdictExpired,
			wantAttempts: 0,
		},
		{
			name: "exhausted",
			arrange: func(e *env, id string) {
				tok := e.store.tokens[id]
				tok.Attempts = entity.OtpMaxAttempts
				e.store.tokens[id] = tok
			},
			code:         "123456",
			want:         entity.OtpVerdictExhausted,
			wantAttempts: entity.OtpMaxAttempts,
		},
		{
			name: "already verified",
			arrange: func(e *env, id string) {
				at := testNow
				tok := e.store.tokens[id]
				tok.VerifiedAt = &at
				e.store.tokens[id] = tok
			},
			code:         "123456",
			want:         entity.OtpVerdictAlreadyVerified,
			wantAttempts: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			e := newEnv(t)
			ctx := context.Background()
			out, err := e.otp.Issue(ctx, IssueOTPInput{Email: "a@x.com", Context: entity.OtpContextLogin, TTL: 5 * time.Minute})
			if err != nil {
				t.Fatalf("Issue() error = %v", err)
			}
			if tt.arrange != nil {
				tt.arrange(e, out.TokenID)
			}

			// Act
			got, err := e.otp.Verify(ctx, out.TokenID, tt.code)

			// Assert
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("Verify() = %s, want %s", got, tt.want)
			}
			if got.OK() != (tt.want == entity.OtpVerdictVerified) {
				t.Fatalf("OK() = %v", got.OK())
			}
			if a := e.store.tokens[out.TokenID].Attempts; a != tt.wantAttempts {
				t.Fatalf("attempts = %d, want %d", a, tt.wantAttempts)
			}
		})
	}
}

func TestOTP_VerifyUnknownToken(t *testing.T) {
	// Arrange
	e := newEnv(t)

	// Act
	got, err := e.otp.Verify(context.Background(), "01HZZZZZZZZZZZZZZZZZZZZZZZ", "123456")

	// Assert
	if err != nil || got != entity.OtpVerdictNotFound {
		t.Fatalf("Verify() = %s, %v", got, err)
	}
}

func TestOTP_VerifyInfrastructureError(t *testing.T) {
	// Arrange
	e := newEnv(t)
	out, _ := e.otp.Issue(context.Background(), IssueOTPInput{Email: "a@x.com", Context: entity.OtpContextLogin})
	cause := errors.New("connection reset")
	e.store.failCharge = cause

	// Act
	got, err := e.otp.Verify(context.Background(), out.TokenID, "123456")

	// Assert
	if !errors.Is(err, cause) || got.OK() {
		t.Fatalf("Verify() = %s, %v", got, err)
	}
}

func TestOTP_SingleSuccess(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	out, _ := e.otp.Issue(ctx, IssueOTPInput{Email: "a@x.com", Context: entity.OtpContextLogin})

	// Act
	first, _ := e.otp.Verify(ctx, out.TokenID, "123456")
	second, _ := e.otp.Verify(ctx, out.TokenID, "123456")

	// Assert
	if first != entity.OtpVerdictVerified || second != entity.OtpVerdictAlreadyVerified {
		t.Fatalf("verdicts = %s, %s", first, second)
	}
	if a := e.store.tokens[out.TokenID].Attempts; a != 1 {
		t.Fatalf("attempts = %d, want 1", a)
	}
}

func TestOTP_AttemptsBound(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	out, _ := e.otp.Issue(ctx, IssueOTPInput{Email: "a@x.com", Context: entity.OtpContextLogin})

	// Act
	for i := 0; i < entity.OtpMaxAttempts; i++ {
		v, err := e.otp.Verify(ctx, out.TokenID, "000000")
		if err != nil || v != entity.OtpVerdictMismatch {
			t.Fatalf("attempt %d: %s, %v", i+1, v, err)
		}
	}
	last, err := e.otp.Verify(ctx, out.TokenID, "123456")

	// Assert
	if err != nil || last != entity.OtpVerdictExhausted {
		t.Fatalf("sixth attempt = %s, %v", last, err)
	}
	if a := e.store.tokens[out.TokenID].Attempts; a != entity.OtpMaxAttempts {
		t.Fatalf("attempts = %d, want %d", a, entity.OtpMaxAttempts)
	}
}

func TestOTP_ConcurrentGuesses(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	out, _ := e.otp.Issue(ctx, IssueOTPInput{Email: "a@x.com", Context: entity.OtpContextLogin})

	const callers = 20
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		verdicts = map[entity.OtpVerdict]int{}
	)

	// Act
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := e.otp.Verify(ctx, out.TokenID, "999999")
			if err != nil {
				t.Errorf("Verify() error = %v", err)
				return
			}
			mu.Lock()
			verdicts[v]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Assert
	if verdicts[entity.OtpVerdictMismatch] != entity.OtpMaxAttempts {
		t.Fatalf("mismatch verdicts = %d, want %d (%v)", verdicts[entity.OtpVerdictMismatch], entity.OtpMaxAttempts, verdicts)
	}
	if verdicts[entity.OtpVerdictExhausted] != callers-entity.OtpMaxAttempts {
		t.Fatalf("exhausted verdicts = %d (%v)", verdicts[entity.OtpVerdictExhausted], verdicts)
	}
}

func TestOTP_ConcurrentCorrectCode(t *testing.T) {
	const (
		rounds  = 25
		callers = entity.OtpMaxAttempts - 1
	)

	for round := 0; round < rounds; round++ {
		// Arrange
		e := newEnv(t)
		ctx := context.Background()
		out, err := e.otp.Issue(ctx, IssueOTPInput{Email: "a@x.com", Context: entity.OtpContextLogin})
		if err != nil {
			t.Fatalf("Issue() error = %v", err)
		}

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			verdicts = map[entity.OtpVerdict]int{}
		)

		// Act
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := e.otp.Verify(ctx, out.TokenID, out.Code)
				if err != nil {
					t.Errorf("Verify() error = %v", err)
					return
				}
				mu.Lock()
				verdicts[v]++
				mu.Unlock()
			}()
		}
		wg.Wait()

		// Assert
		if verdicts[entity.OtpVerdictVerified] != 1 {
			t.Fatalf("round %d: verified verdicts = %d, want 1 (%v)", round, verdicts[entity.OtpVerdictVerified], verdicts)
		}
		if verdicts[entity.OtpVerdictAlreadyVerified] != callers-1 {
			t.Fatalf("round %d: already verified verdicts = %d (%v)", round, verdicts[entity.OtpVerdictAlreadyVerified], verdicts)
		}
	}
}

func TestOTP_VerifyLosesMarkRace(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	out, _ := e.otp.Issue(ctx, IssueOTPInput{Email: "a@x.com", Context: entity.OtpContextLogin})
	e.store.markErr = goerror.ErrNotFound

	// Act
	v, err := e.otp.Verify(ctx, out.TokenID, out.Code)

	// Assert
	if err != nil || v != entity.OtpVerdictAlreadyVerified {
		t.Fatalf("Verify() = %v, %v, want AlreadyVerified", v, err)
	}
}

func TestOTP_CleanupExpired(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	old, _ := e.otp.Issue(ctx, IssueOTPInput{Email: "a@x.com", Context: entity.OtpContextLogin, TTL: time.Minute})
	e.clock.Advance(5 * time.Minute)
	recent, _ := e.otp.Issue(ctx, IssueOTPInput{Email: "a@x.com", Context: entity.OtpContextLogin, TTL: time.Minute})
	live, _ := e.otp.Issue(ctx, IssueOTPInput{Email: "a@x.com", Context: entity.OtpContextLogin, TTL: time.Hour})
	e.clock.Advance(7 * time.Minute)

	// Act
	n, err := e.otp.CleanupExpired(ctx)

	// Assert
	if err != nil || n != 1 {
		t.Fatalf("CleanupExpired() = %d, %v", n, err)
	}
	if _, ok := e.store.tokens[old.TokenID]; ok {
		t.Fatal("token expired past the grace period was kept")
	}
	for _, id := range []string{recent.TokenID, live.TokenID} {
		if _, ok := e.store.tokens[id]; !ok {
			t.Fatalf("token %s removed too early", id)
		}
	}
}
