package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/academia/internal/admin/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
)

type PasswordForgotInput struct {
	Email string `json:"email" validate:"required,email"`
	IP    string `json:"-"`
}

// PasswordForgot returns a nil challenge for unknown emails so callers cannot
// probe which accounts exist.
func (s *Usecase) PasswordForgot(ctx context.Context, in PasswordForgotInput) (*OTPChallenge, error) {
	ctx, span := s.startSpan(ctx, "PasswordForgot")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	admin, err := s.repoDB.GetAdminByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "password reset requested for unknown admin", "email", in.Email)
		return nil, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get admin by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.issueAndDeliver(ctx, issueParams{
		To:       admin.Email,
		Context:  entity.OtpContextPasswordReset,
		Owner:    entity.KnownOwner(admin.ID),
		Metadata: map[string]any{"intent": "forgot_password", "ip": in.IP},
	})
}

type PasswordResetInput struct {
	OtpToken             string `json:"otp_token" validate:"required"`
	Code                 string `json:"code" validate:"required,otp_code"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,password"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

func (s *Usecase) PasswordReset(ctx context.Context, in PasswordResetInput) (*AuthToken, error) {
	ctx, span := s.startSpan(ctx, "PasswordReset")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	token, err := s.loadOtpToken(ctx, in.OtpToken, entity.OtpContextPasswordReset)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(token.Email, in.Email) {
		slog.WarnContext(ctx, "password reset email does not match otp token", "otp_token", token.ID)
		return nil, goerror.NewBusiness(msgOtpGone, goerror.CodeGone)
	}

	if err := s.verifyOtp(ctx, token.ID, in.Code); err != nil {
		return nil, err
	}

	admin, err := s.resolveOwner(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := s.applyPassword(ctx, admin, in.Password, token.ID); err != nil {
		return nil, err
	}

	s.publishCredentialChanged(ctx, *admin, "password_reset")

	return s.issueAuthToken(ctx, *admin)
}

type PasswordChangeRequestInput struct {
	IP string
}

func (s *Usecase) PasswordChangeRequest(ctx context.Context, in PasswordChangeRequestInput) (*OTPChallenge, error) {
	ctx, span := s.startSpan(ctx, "PasswordChangeRequest")
	defer span.End()

	admin, err := s.currentAdmin(ctx)
	if err != nil {
		return nil, err
	}

	return s.issueAndDeliver(ctx, issueParams{
		To:       admin.Email,
		Context:  entity.OtpContextPasswordChange,
		Owner:    entity.KnownOwner(admin.ID),
		Metadata: map[string]any{"intent": "password_change", "ip": in.IP},
	})
}

type PasswordChangeInput struct {
	OtpToken             string `json:"otp_token" validate:"required"`
	Code                 string `json:"code" validate:"required,otp_code"`
	Password             string `json:"password" validate:"required,password"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

func (s *Usecase) PasswordChange(ctx context.Context, in PasswordChangeInput) (*AuthToken, error) {
	ctx, span := s.startSpan(ctx, "PasswordChange")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	admin, err := s.currentAdmin(ctx)
	if err != nil {
		return nil, err
	}

	token, err := s.loadOtpToken(ctx, in.OtpToken, entity.OtpContextPasswordChange)
	if err != nil {
		return nil, err
	}

	if !token.BelongsTo(admin.ID) {
		slog.WarnContext(ctx, "password change otp token owned by another admin", "admin_id", admin.ID, "otp_token", token.ID)
		return nil, goerror.NewBusiness(msgOtpGone, goerror.CodeGone)
	}

	if err := s.verifyOtp(ctx, token.ID, in.Code); err != nil {
		return nil, err
	}

	if err := s.applyPassword(ctx, admin, in.Password, token.ID); err != nil {
		return nil, err
	}

	s.publishCredentialChanged(ctx, *admin, "password_change")

	return s.issueAuthToken(ctx, *admin)
}

func (s *Usecase) applyPassword(ctx context.Context, admin *entity.Admin, password, tokenID string) error {
	hashed, err := s.bcrypt.Hash(password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "admin_id", admin.ID, "error", err)
		return goerror.NewServer(err)
	}

	h := string(hashed)
	if err := s.repoDB.ApplyOtpCredential(ctx, entity.PatchAdmin{ID: admin.ID, Password: &h}, tokenID); err != nil {
		slog.ErrorContext(ctx, "failed to repo update admin password", "admin_id", admin.ID, "error", err)
		return goerror.NewServer(err)
	}

	admin.Password = h
	return nil
}
