package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/academia/internal/admin/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/jwt"
)

const (
	msgOtpGone        = "OTP expired or invalid"
	msgOtpInvalid     = "Invalid or expired OTP"
	msgOtpUnavailable = "Unable to send OTP email at this time"
	msgOtpRateLimited = "Too many OTP requests, please try again later"
)

// OTPChallenge is handed to the client instead of the code.
type OTPChallenge struct {
	OtpToken  string
	ExpiresIn int64
}

// AuthToken is the bearer credential returned by every successful auth flow.
type AuthToken struct {
	Token     string
	TokenType string
	ExpiresIn int64
	Admin     entity.Admin
}

type issueParams struct {
	To       string
	Context  entity.OtpContext
	Owner    entity.Owner
	Metadata map[string]any
}

// issueAndDeliver issues a token and mails its code. A failed delivery deletes
// the token so no orphaned code stays valid.
func (s *Usecase) issueAndDeliver(ctx context.Context, p issueParams) (*OTPChallenge, error) {
	allowed, err := s.repoCache.AllowOTP(ctx, p.To, p.Context)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check otp rate limit", "context", p.Context.String(), "error", err)
		return nil, goerror.NewServer(err)
	}
	if !allowed {
		slog.WarnContext(ctx, "otp request rate limited", "email", p.To, "context", p.Context.String())
		return nil, goerror.NewBusiness(msgOtpRateLimited, goerror.CodeTooManyRequest)
	}

	issued, err := s.otp.Issue(ctx, IssueOTPInput{
		Email:    p.To,
		Context:  p.Context,
		Owner:    p.Owner,
		TTL:      s.otpTTL(),
		Metadata: p.Metadata,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue otp", "context", p.Context.String(), "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMail.SendOTP(ctx, OTPMail{
		To:       p.To,
		Code:     issued.Code,
		Context:  p.Context,
		TTL:      issued.TTL,
		Metadata: p.Metadata,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send otp email", "email", p.To, "otp_token", issued.TokenID, "context", p.Context.String(), "error", err)

		if dErr := s.repoDB.DeleteOtpToken(ctx, issued.TokenID); dErr != nil {
			slog.ErrorContext(ctx, "failed to delete undelivered otp token", "otp_token", issued.TokenID, "error", dErr)
		}

		return nil, goerror.NewUnavailable(msgOtpUnavailable, err)
	}

	return &OTPChallenge{
		OtpToken:  issued.TokenID,
		ExpiresIn: int64(issued.TTL.Seconds()),
	}, nil
}

// loadOtpToken returns the token issued under oc, or a 410 business error.
func (s *Usecase) loadOtpToken(ctx context.Context, id string, oc entity.OtpContext) (*entity.OtpToken, error) {
	token, err := s.repoDB.GetOtpTokenByContext(ctx, id, oc)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "otp token not found for context", "otp_token", id, "context", oc.String())
		return nil, goerror.NewBusiness(msgOtpGone, goerror.CodeGone)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get otp token", "otp_token", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return token, nil
}

// verifyOtp maps a verdict to the flow error: a vanished or expired token is
// 410, a wrong code or exhausted token is 422.
func (s *Usecase) verifyOtp(ctx context.Context, tokenID, code string) error {
	verdict, err := s.otp.Verify(ctx, tokenID, code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to verify otp", "otp_token", tokenID, "error", err)
		return goerror.NewServer(err)
	}

	switch verdict {
	case entity.OtpVerdictVerified:
		return nil
	case entity.OtpVerdictNotFound, entity.OtpVerdictExpired:
		slog.WarnContext(ctx, "otp token no longer usable", "otp_token", tokenID, "verdict", verdict.String())
		return goerror.NewBusiness(msgOtpGone, goerror.CodeGone)
	default:
		slog.WarnContext(ctx, "otp verification rejected", "otp_token", tokenID, "verdict", verdict.String())
		return goerror.NewBusiness(msgOtpInvalid, goerror.CodeInvalidInput)
	}
}

// resolveOwner finds the admin behind a verified token: by id when the owner
// is known, by email otherwise.
func (s *Usecase) resolveOwner(ctx context.Context, token *entity.OtpToken) (*entity.Admin, error) {
	var (
		admin *entity.Admin
		err   error
	)

	owner := token.Owner()
	if id, ok := owner.AdminID(); ok {
		admin, err = s.repoDB.GetAdminByID(ctx, id)
	} else {
		admin, err = s.repoDB.GetAdminByEmail(ctx, owner.Email())
	}
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "otp owner account not found", "otp_token", token.ID)
		return nil, goerror.NewBusiness("Account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo resolve otp owner", "otp_token", token.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return admin, nil
}

func (s *Usecase) deleteOtpToken(ctx context.Context, id string) {
	if err := s.repoDB.DeleteOtpToken(ctx, id); err != nil {
		slog.ErrorContext(ctx, "failed to delete consumed otp token", "otp_token", id, "error", err)
	}
}

func (s *Usecase) issueAuthToken(ctx context.Context, admin entity.Admin) (*AuthToken, error) {
	token, err := s.jwt.Issue(jwt.Subject{ID: admin.ID, Role: admin.Role.String()})
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue access token", "admin_id", admin.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &AuthToken{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.jwt.TTL().Seconds()),
		Admin:     admin,
	}, nil
}

func (s *Usecase) requireAuth(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Unauthorized", goerror.CodeUnauthorized)
	}

	return clm, nil
}

func (s *Usecase) currentAdmin(ctx context.Context) (*entity.Admin, error) {
	clm, err := s.requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	admin, err := s.repoDB.GetAdminByID(ctx, clm.AdminID())
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "authenticated admin not found", "admin_id", clm.AdminID())
		return nil, goerror.NewBusiness("Unauthorized", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get admin by id", "admin_id", clm.AdminID(), "error", err)
		return nil, goerror.NewServer(err)
	}

	return admin, nil
}

func (s *Usecase) publishCredentialChanged(ctx context.Context, admin entity.Admin, change string) {
	if err := s.repoMessaging.PublishCredentialChanged(ctx, CredentialChangedEvent{
		AdminID: admin.ID,
		Email:   admin.Email,
		Change:  change,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish admin credential changed", "admin_id", admin.ID, "error", err)
	}
}
