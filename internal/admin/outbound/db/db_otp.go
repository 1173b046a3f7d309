package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/academia/internal/admin/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/pgsql"
	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

type otpRow struct {
	ID         string              `db:"id"`
	Email      string              `db:"email"`
	AdminID    *int64              `db:"admin_id"`
	Context    string              `db:"context"`
	CodeHash   string              `db:"code_hash"`
	Attempts   int                 `db:"attempts"`
	ExpiresAt  time.Time           `db:"expires_at"`
	VerifiedAt *time.Time          `db:"verified_at"`
	Metadata   valueobject.JSONMap `db:"metadata"`
	CreatedAt  time.Time           `db:"created_at"`
	UpdatedAt  time.Time           `db:"updated_at"`
}

func (r otpRow) toEntity() *entity.OtpToken {
	return &entity.OtpToken{
		ID:         r.ID,
		Email:      r.Email,
		AdminID:    r.AdminID,
		Context:    entity.OtpContext(r.Context),
		CodeHash:   r.CodeHash,
		Attempts:   r.Attempts,
		ExpiresAt:  r.ExpiresAt,
		VerifiedAt: r.VerifiedAt,
		Metadata:   r.Metadata,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (s *DB) CreateOtpToken(ctx context.Context, t entity.OtpToken) (err error) {
	ctx, span := s.tracer.Start(ctx, "CreateOtpToken")
	defer func() { pgsql.End(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateOtpToken,
		t.ID, t.Email, t.AdminID, t.Context.String(), t.CodeHash, t.ExpiresAt, t.Metadata, t.CreatedAt)
	return pgsql.MapError(err)
}

func (s *DB) getOtpToken(ctx context.Context, query string, args ...any) (*entity.OtpToken, error) {
	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[otpRow])
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	return row.toEntity(), nil
}

func (s *DB) GetOtpToken(ctx context.Context, id string) (_ *entity.OtpToken, err error) {
	ctx, span := s.tracer.Start(ctx, "GetOtpToken")
	defer func() { pgsql.End(span, err) }()

	return s.getOtpToken(ctx, queryGetOtpToken, id)
}

func (s *DB) GetOtpTokenByContext(ctx context.Context, id string, oc entity.OtpContext) (_ *entity.OtpToken, err error) {
	ctx, span := s.tracer.Start(ctx, "GetOtpTokenByContext")
	defer func() { pgsql.End(span, err) }()

	return s.getOtpToken(ctx, queryGetOtpTokenByContext, id, oc.String())
}

func (s *DB) ChargeOtpAttempt(ctx context.Context, id string, now time.Time, maxAttempts int) (_ string, err error) {
	ctx, span := s.tracer.Start(ctx, "ChargeOtpAttempt")
	defer func() { pgsql.End(span, err) }()

	var codeHash string
	if err = s.conn.QueryRow(ctx, queryChargeOtpAttempt, id, now, maxAttempts).Scan(&codeHash); err != nil {
		return "", pgsql.MapError(err)
	}

	return codeHash, nil
}

func (s *DB) MarkOtpTokenVerified(ctx context.Context, id string, at time.Time) (err error) {
	ctx, span := s.tracer.Start(ctx, "MarkOtpTokenVerified")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryMarkOtpTokenVerified, id, at)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) DeleteOtpToken(ctx context.Context, id string) (err error) {
	ctx, span := s.tracer.Start(ctx, "DeleteOtpToken")
	defer func() { pgsql.End(span, err) }()

	_, err = s.conn.Exec(ctx, queryDeleteOtpToken, id)
	return pgsql.MapError(err)
}

func (s *DB) DeleteOtpTokensExpiredBefore(ctx context.Context, before time.Time) (_ int64, err error) {
	ctx, span := s.tracer.Start(ctx, "DeleteOtpTokensExpiredBefore")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryDeleteOtpTokensExpiredBefore, before)
	if err != nil {
		return 0, pgsql.MapError(err)
	}

	return tag.RowsAffected(), nil
}
