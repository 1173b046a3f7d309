package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/academia/internal/application/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/pgsql"
	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

type submissionRow struct {
	ID            int64               `db:"id"`
	FormType      string              `db:"form_type"`
	FullName      string              `db:"full_name"`
	Email         string              `db:"email"`
	Phone         *string             `db:"phone"`
	Title         *string             `db:"title"`
	Status        string              `db:"status"`
	Payload       valueobject.JSONMap `db:"payload"`
	AdminNotes    *string             `db:"admin_notes"`
	AdminViewedAt *time.Time          `db:"admin_viewed_at"`
	IP            *string             `db:"ip"`
	UserAgent     *string             `db:"user_agent"`
	CreatedAt     time.Time           `db:"created_at"`
	UpdatedAt     time.Time           `db:"updated_at"`
}

func (r submissionRow) toEntity() entity.Submission {
	return entity.Submission{
		ID:            r.ID,
		FormType:      r.FormType,
		FullName:      r.FullName,
		Email:         r.Email,
		Phone:         r.Phone,
		Title:         r.Title,
		Status:        entity.Status(r.Status),
		Payload:       r.Payload,
		AdminNotes:    r.AdminNotes,
		AdminViewedAt: r.AdminViewedAt,
		IP:            r.IP,
		UserAgent:     r.UserAgent,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (s *DB) ListSubmissions(ctx context.Context, f entity.Filter) (_ []entity.Submission, _ int64, err error) {
	ctx, span := s.tracer.Start(ctx, "ListSubmissions")
	defer func() { pgsql.End(span, err) }()

	var status *string
	if f.Status != nil {
		v := f.Status.String()
		status = &v
	}

	var total int64
	if err = s.conn.QueryRow(ctx, queryCountSubmissions, f.FormType, status, f.Search).Scan(&total); err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	rows, err := s.conn.Query(ctx, queryListSubmissions, f.FormType, status, f.Search, f.Size, f.Offset)
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[submissionRow])
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	subs := make([]entity.Submission, 0, len(items))
	for _, item := range items {
		subs = append(subs, item.toEntity())
	}

	return subs, total, nil
}

func (s *DB) GetSubmissionByID(ctx context.Context, id int64) (_ *entity.Submission, err error) {
	ctx, span := s.tracer.Start(ctx, "GetSubmissionByID")
	defer func() { pgsql.End(span, err) }()

	rows, err := s.conn.Query(ctx, queryGetSubmissionByID, id)
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[submissionRow])
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	sub := row.toEntity()
	return &sub, nil
}

func (s *DB) CreateSubmission(ctx context.Context, sub entity.Submission) (err error) {
	ctx, span := s.tracer.Start(ctx, "CreateSubmission")
	defer func() { pgsql.End(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateSubmission,
		sub.ID, sub.FormType, sub.FullName, sub.Email, sub.Phone, sub.Title, sub.Status.String(), sub.Payload,
		sub.IP, sub.UserAgent)
	return pgsql.MapError(err)
}

func (s *DB) UpdateSubmission(ctx context.Context, sub entity.Submission) (err error) {
	ctx, span := s.tracer.Start(ctx, "UpdateSubmission")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateSubmission, sub.ID, sub.Status.String(), sub.AdminNotes)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

// MarkSubmissionViewed stamps the first admin view. Later views keep the
// original time.
func (s *DB) MarkSubmissionViewed(ctx context.Context, id int64, at time.Time) (err error) {
	ctx, span := s.tracer.Start(ctx, "MarkSubmissionViewed")
	defer func() { pgsql.End(span, err) }()

	_, err = s.conn.Exec(ctx, queryMarkSubmissionViewed, id, at)
	return pgsql.MapError(err)
}

func (s *DB) DeleteSubmission(ctx context.Context, id int64) (err error) {
	ctx, span := s.tracer.Start(ctx, "DeleteSubmission")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryDeleteSubmission, id)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
