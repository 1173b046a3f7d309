package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/academia/internal/academic/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/pgsql"
	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

type enrollmentRow struct {
	ID               int64      `db:"id"`
	StudentID        int64      `db:"student_id"`
	CourseID         int64      `db:"course_id"`
	EnrollmentDate   time.Time  `db:"enrollment_date"`
	AmountPaidCents  int64      `db:"amount_paid_cents"`
	PaymentStatus    string     `db:"payment_status"`
	EnrollmentStatus string     `db:"enrollment_status"`
	CompletionDate   *time.Time `db:"completion_date"`
	Remarks          *string    `db:"remarks"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
	StudentFirstName string     `db:"student_first_name"`
	StudentLastName  string     `db:"student_last_name"`
	StudentEmail     string     `db:"student_email"`
	CourseTitle      string     `db:"course_title"`
	CourseCode       string     `db:"course_code"`
}

func (r enrollmentRow) toEntity() entity.Enrollment {
	return entity.Enrollment{
		ID:               r.ID,
		StudentID:        r.StudentID,
		CourseID:         r.CourseID,
		EnrollmentDate:   r.EnrollmentDate,
		AmountPaid:       valueobject.Money(r.AmountPaidCents),
		PaymentStatus:    entity.PaymentStatus(r.PaymentStatus),
		EnrollmentStatus: entity.EnrollmentStatus(r.EnrollmentStatus),
		CompletionDate:   r.CompletionDate,
		Remarks:          r.Remarks,
		Student: entity.StudentRef{
			ID:        r.StudentID,
			FirstName: r.StudentFirstName,
			LastName:  r.StudentLastName,
			Email:     r.StudentEmail,
		},
		Course: entity.CourseRef{
			ID:    r.CourseID,
			Title: r.CourseTitle,
			Code:  r.CourseCode,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (s *DB) ListEnrollments(ctx context.Context, f entity.EnrollmentFilter) (_ []entity.Enrollment, _ int64, err error) {
	ctx, span := s.tracer.Start(ctx, "ListEnrollments")
	defer func() { pgsql.End(span, err) }()

	payment, status := enumArg(f.PaymentStatus), enumArg(f.EnrollmentStatus)

	var total int64
	if err = s.conn.QueryRow(ctx, queryCountEnrollments, f.StudentID, f.CourseID, payment, status).Scan(&total); err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	rows, err := s.conn.Query(ctx, queryListEnrollments, f.StudentID, f.CourseID, payment, status, f.Size, f.Offset)
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[enrollmentRow])
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	out := make([]entity.Enrollment, 0, len(items))
	for _, item := range items {
		out = append(out, item.toEntity())
	}

	return out, total, nil
}

func (s *DB) GetEnrollmentByID(ctx context.Context, id int64) (_ *entity.Enrollment, err error) {
	ctx, span := s.tracer.Start(ctx, "GetEnrollmentByID")
	defer func() { pgsql.End(span, err) }()

	rows, err := s.conn.Query(ctx, queryGetEnrollmentByID, id)
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[enrollmentRow])
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	e := row.toEntity()
	return &e, nil
}

func (s *DB) CreateEnrollment(ctx context.Context, e entity.Enrollment) (err error) {
	ctx, span := s.tracer.Start(ctx, "CreateEnrollment")
	defer func() { pgsql.End(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateEnrollment,
		e.ID, e.StudentID, e.CourseID, e.EnrollmentDate, e.AmountPaid.Cents(),
		e.PaymentStatus.String(), e.EnrollmentStatus.String(), e.CompletionDate, e.Remarks)
	return pgsql.MapError(err)
}

func (s *DB) UpdateEnrollment(ctx context.Context, e entity.Enrollment) (err error) {
	ctx, span := s.tracer.Start(ctx, "UpdateEnrollment")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateEnrollment,
		e.ID, e.EnrollmentDate, e.AmountPaid.Cents(), e.PaymentStatus.String(),
		e.EnrollmentStatus.String(), e.CompletionDate, e.Remarks)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) DeleteEnrollment(ctx context.Context, id int64) (err error) {
	ctx, span := s.tracer.Start(ctx, "DeleteEnrollment")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryDeleteEnrollment, id)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
