package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/academia/internal/career/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/pgsql"
)

type careerRow struct {
	ID             int64     `db:"id"`
	Title          string    `db:"title"`
	Description    *string   `db:"description"`
	Requirements   *string   `db:"requirements"`
	Location       *string   `db:"location"`
	EmploymentType *string   `db:"employment_type"`
	Department     *string   `db:"department"`
	ApplyURL       *string   `db:"apply_url"`
	IsActive       bool      `db:"is_active"`
	SortOrder      int32     `db:"sort_order"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r careerRow) toEntity() entity.Career {
	return entity.Career{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Requirements:   r.Requirements,
		Location:       r.Location,
		EmploymentType: employmentOf(r.EmploymentType),
		Department:     r.Department,
		ApplyURL:       r.ApplyURL,
		IsActive:       r.IsActive,
		Order:          r.SortOrder,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (s *DB) ListCareers(ctx context.Context, f entity.Filter) (_ []entity.Career, _ int64, err error) {
	ctx, span := s.tracer.Start(ctx, "ListCareers")
	defer func() { pgsql.End(span, err) }()

	var total int64
	if err = s.conn.QueryRow(ctx, queryCountCareers, f.IsActive).Scan(&total); err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	rows, err := s.conn.Query(ctx, queryListCareers, f.IsActive, f.Size, f.Offset)
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[careerRow])
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	careers := make([]entity.Career, 0, len(items))
	for _, item := range items {
		careers = append(careers, item.toEntity())
	}

	return careers, total, nil
}

func (s *DB) GetCareerByID(ctx context.Context, id int64) (_ *entity.Career, err error) {
	ctx, span := s.tracer.Start(ctx, "GetCareerByID")
	defer func() { pgsql.End(span, err) }()

	rows, err := s.conn.Query(ctx, queryGetCareerByID, id)
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[careerRow])
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	c := row.toEntity()
	return &c, nil
}

func (s *DB) CreateCareer(ctx context.Context, c entity.Career) (err error) {
	ctx, span := s.tracer.Start(ctx, "CreateCareer")
	defer func() { pgsql.End(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateCareer,
		c.ID, c.Title, c.Description, c.Requirements, c.Location, employmentArg(c.EmploymentType),
		c.Department, c.ApplyURL, c.IsActive, c.Order)
	return pgsql.MapError(err)
}

func (s *DB) UpdateCareer(ctx context.Context, c entity.Career) (err error) {
	ctx, span := s.tracer.Start(ctx, "UpdateCareer")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateCareer,
		c.ID, c.Title, c.Description, c.Requirements, c.Location, employmentArg(c.EmploymentType),
		c.Department, c.ApplyURL, c.IsActive, c.Order)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) DeleteCareer(ctx context.Context, id int64) (err error) {
	ctx, span := s.tracer.Start(ctx, "DeleteCareer")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryDeleteCareer, id)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
