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

type courseRow struct {
	ID               int64     `db:"id"`
	Title            string    `db:"title"`
	Description      *string   `db:"description"`
	Code             string    `db:"code"`
	DurationHours    int32     `db:"duration_hours"`
	PriceCents       int64     `db:"price_cents"`
	Level            string    `db:"level"`
	Instructor       *string   `db:"instructor"`
	IsActive         bool      `db:"is_active"`
	EnrollmentsCount int64     `db:"enrollments_count"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r courseRow) toEntity() entity.Course {
	return entity.Course{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		Code:             r.Code,
		DurationHours:    r.DurationHours,
		Price:            valueobject.Money(r.PriceCents),
		Level:            entity.Level(r.Level),
		Instructor:       r.Instructor,
		IsActive:         r.IsActive,
		EnrollmentsCount: r.EnrollmentsCount,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (s *DB) ListCourses(ctx context.Context, f entity.CourseFilter) (_ []entity.Course, _ int64, err error) {
	ctx, span := s.tracer.Start(ctx, "ListCourses")
	defer func() { pgsql.End(span, err) }()

	level := enumArg(f.Level)

	var total int64
	if err = s.conn.QueryRow(ctx, queryCountCourses, f.Search, level, f.IsActive).Scan(&total); err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	rows, err := s.conn.Query(ctx, queryListCourses, f.Search, level, f.IsActive, f.Size, f.Offset)
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[courseRow])
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	courses := make([]entity.Course, 0, len(items))
	for _, item := range items {
		courses = append(courses, item.toEntity())
	}

	return courses, total, nil
}

func (s *DB) GetCourseByID(ctx context.Context, id int64) (_ *entity.Course, err error) {
	ctx, span := s.tracer.Start(ctx, "GetCourseByID")
	defer func() { pgsql.End(span, err) }()

	rows, err := s.conn.Query(ctx, queryGetCourseByID, id)
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[courseRow])
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	c := row.toEntity()
	return &c, nil
}

func (s *DB) CreateCourse(ctx context.Context, c entity.Course) (err error) {
	ctx, span := s.tracer.Start(ctx, "CreateCourse")
	defer func() { pgsql.End(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateCourse,
		c.ID, c.Title, c.Description, c.Code, c.DurationHours, c.Price.Cents(), c.Level.String(), c.Instructor, c.IsActive)
	return pgsql.MapError(err)
}

func (s *DB) UpdateCourse(ctx context.Context, c entity.Course) (err error) {
	ctx, span := s.tracer.Start(ctx, "UpdateCourse")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateCourse,
		c.ID, c.Title, c.Description, c.Code, c.DurationHours, c.Price.Cents(), c.Level.String(), c.Instructor, c.IsActive)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) DeleteCourse(ctx context.Context, id int64) (err error) {
	ctx, span := s.tracer.Start(ctx, "DeleteCourse")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryDeleteCourse, id)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
