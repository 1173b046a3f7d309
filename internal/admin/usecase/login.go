package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/academia/internal/admin/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
)

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	IP       string `json:"-"`
}

type LoginOutput struct {
	OtpRequired bool
	Challenge   *OTPChallenge
	Auth        *AuthToken
}

func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	admin, err := s.repoDB.GetAdminByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "admin account not found", "email", in.Email)
		return nil, goerror.NewBusiness("Invalid credentials", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get admin by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(admin.Password, in.Password) {
		slog.WarnContext(ctx, "admin password not match", "admin_id", admin.ID)
		return nil, goerror.NewBusiness("Invalid credentials", goerror.CodeUnauthorized)
	}

	if !admin.IsActive {
		slog.WarnContext(ctx, "deactivated admin tried to login", "admin_id", admin.ID)
		return nil, goerror.NewBusiness("Account is deactivated", goerror.CodeUnauthorized)
	}

	if s.cfg.GetBool("modules.admin.login_otp") {
		challenge, err := s.issueAndDeliver(ctx, issueParams{
			To:       admin.Email,
			Context:  entity.OtpContextLogin,
			Owner:    entity.KnownOwner(admin.ID),
			Metadata: map[string]any{"intent": "login", "ip": in.IP},
		})
		if err != nil {
			return nil, err
		}

		return &LoginOutput{OtpRequired: true, Challenge: challenge}, nil
	}

	auth, err := s.issueAuthToken(ctx, *admin)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Auth: auth}, nil
}

type LoginVerifyInput struct {
	OtpToken string `json:"otp_token" validate:"required"`
	Code     string `json:"code" validate:"required,otp_code"`
}

func (s *Usecase) LoginVerify(ctx context.Context, in LoginVerifyInput) (*AuthToken, error) {
	ctx, span := s.startSpan(ctx, "LoginVerify")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	token, err := s.loadOtpToken(ctx, in.OtpToken, entity.OtpContextLogin)
	if err != nil {
		return nil, err
	}

	if err := s.verifyOtp(ctx, token.ID, in.Code); err != nil {
		return nil, err
	}

	admin, err := s.resolveOwner(ctx, token)
	if err != nil {
		return nil, err
	}

	if !admin.IsActive {
		slog.WarnContext(ctx, "deactivated admin verified login otp", "admin_id", admin.ID)
		return nil, goerror.NewBusiness("Account is deactivated", goerror.CodeUnauthorized)
	}

	s.deleteOtpToken(ctx, token.ID)

	return s.issueAuthToken(ctx, *admin)
}
