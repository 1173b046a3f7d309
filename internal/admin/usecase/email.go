package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/academia/internal/admin/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
)

type EmailChangeRequestInput struct {
	NewEmail string `json:"new_email" validate:"required,email,max=255"`
	IP       string `json:"-"`
}

func (s *Usecase) EmailChangeRequest(ctx context.Context, in EmailChangeRequestInput) (*OTPChallenge, error) {
	ctx, span := s.startSpan(ctx, "EmailChangeRequest")
	defer span.End()

	in.NewEmail = strings.TrimSpace(strings.ToLower(in.NewEmail))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	admin, err := s.currentAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.ensureEmailAvailable(ctx, in.NewEmail, admin.ID); err != nil {
		return nil, err
	}

	if strings.EqualFold(in.NewEmail, admin.Email) {
		return nil, goerror.NewBusiness("New email must be different from current email", goerror.CodeInvalidInput)
	}

	return s.issueAndDeliver(ctx, issueParams{
		To:      in.NewEmail,
		Context: entity.OtpContextEmailChange,
		Owner:   entity.KnownOwner(admin.ID),
		Metadata: map[string]any{
			"intent":    "email_change",
			"ip":        in.IP,
			"new_email": in.NewEmail,
			"old_email": admin.Email,
		},
	})
}

type EmailChangeInput struct {
	OtpToken string `json:"otp_token" validate:"required"`
	Code     string `json:"code" validate:"required,otp_code"`
	NewEmail string `json:"new_email" validate:"required,email,max=255"`
}

func (s *Usecase) EmailChange(ctx context.Context, in EmailChangeInput) (*AuthToken, error) {
	ctx, span := s.startSpan(ctx, "EmailChange")
	defer span.End()

	in.NewEmail = strings.TrimSpace(strings.ToLower(in.NewEmail))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	admin, err := s.currentAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.ensureEmailAvailable(ctx, in.NewEmail, admin.ID); err != nil {
		return nil, err
	}

	token, err := s.loadOtpToken(ctx, in.OtpToken, entity.OtpContextEmailChange)
	if err != nil {
		return nil, err
	}

	if !token.BelongsTo(admin.ID) {
		slog.WarnContext(ctx, "email change otp token owned by another admin", "admin_id", admin.ID, "otp_token", token.ID)
		return nil, goerror.NewBusiness(msgOtpGone, goerror.CodeGone)
	}

	if !strings.EqualFold(token.Email, in.NewEmail) {
		slog.WarnContext(ctx, "email change confirmed for a different address", "admin_id", admin.ID, "otp_token", token.ID)
		return nil, goerror.NewBusiness("OTP was issued for a different email address", goerror.CodeInvalidInput)
	}

	if err := s.verifyOtp(ctx, token.ID, in.Code); err != nil {
		return nil, err
	}

	oldEmail := admin.Email
	err = s.repoDB.ApplyOtpCredential(ctx, entity.PatchAdmin{ID: admin.ID, Email: &in.NewEmail}, token.ID)
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "new email taken before confirmation", "admin_id", admin.ID)
		return nil, goerror.NewBusiness("The new email has already been taken", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update admin email", "admin_id", admin.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	admin.Email = in.NewEmail
	s.publishCredentialChanged(ctx, entity.Admin{ID: admin.ID, Email: oldEmail}, "email_change")

	return s.issueAuthToken(ctx, *admin)
}

// ensureEmailAvailable fails with a field error when another admin owns email.
func (s *Usecase) ensureEmailAvailable(ctx context.Context, email string, exceptID int64) error {
	taken, err := s.repoDB.IsEmailTaken(ctx, email, exceptID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo check admin email", "error", err)
		return goerror.NewServer(err)
	}
	if taken {
		return goerror.NewInvalidInput(nil, "new_email", "The new email has already been taken.")
	}

	return nil
}
