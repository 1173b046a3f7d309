package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/router"
)

// ResolveAccount is the router account guard: it returns the current role of
// an active admin, or router.ErrAccountUnavailable.
func (s *Usecase) ResolveAccount(ctx context.Context, adminID int64) (string, error) {
	ctx, span := s.startSpan(ctx, "ResolveAccount")
	defer span.End()

	admin, err := s.repoDB.GetAdminByID(ctx, adminID)
	if errors.Is(err, goerror.ErrNotFound) {
		return "", router.ErrAccountUnavailable
	}
	if err != nil {
		return "", err
	}

	if !admin.IsActive {
		return "", router.ErrAccountUnavailable
	}

	return admin.Role.String(), nil
}

// CleanupOTP runs one sweep of expired tokens.
func (s *Usecase) CleanupOTP(ctx context.Context) error {
	n, err := s.otp.CleanupExpired(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to cleanup expired otp tokens", "error", err)
		return nil
	}

	if n > 0 {
		slog.InfoContext(ctx, "expired otp tokens removed", "count", n)
	}

	return nil
}
