// Package pgsql holds the pieces every PostgreSQL repository shares: driver
// error translation, repository spans and transactions.
package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

// MapError translates driver errors into goerror sentinels:
// no rows to ErrNotFound, unique violations to ErrConflict and foreign key
// violations to ErrReferenced. Other errors are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return goerror.ErrConflict
		case foreignKeyViolation:
			return goerror.ErrReferenced
		}
	}

	return err
}

// Expected reports whether err is an outcome callers branch on rather than
// a failure of the database.
func Expected(err error) bool {
	return errors.Is(err, goerror.ErrNotFound) ||
		errors.Is(err, goerror.ErrConflict) ||
		errors.Is(err, goerror.ErrReferenced)
}

// Tracer starts spans for one repository.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer returns a Tracer named after the repository, e.g. "career.outbound.db".
func NewTracer(ins instrument.Instrumentation, name string) Tracer {
	return Tracer{tracer: ins.Tracer(name)}
}

// Start opens a span for operation op.
func (t Tracer) Start(ctx context.Context, op string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, op)
}

// End closes span, marking it failed unless err is nil or Expected.
func End(span trace.Span, err error) {
	if err != nil && !Expected(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// InTx runs fn inside a transaction on db. The transaction commits when fn
// returns nil and rolls back otherwise; the returned error is mapped.
func InTx(ctx context.Context, db interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}, fn func(tx pgx.Tx) error,
) error {
	return MapError(pgx.BeginFunc(ctx, db, fn))
}
