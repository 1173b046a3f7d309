package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/academia/internal/career/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/pgsql"
)

type jobPostingRow struct {
	ID             int64      `db:"id"`
	Title          string     `db:"title"`
	Department     *string    `db:"department"`
	Description    *string    `db:"description"`
	Requirements   *string    `db:"requirements"`
	Location       *string    `db:"location"`
	EmploymentType *string    `db:"employment_type"`
	SalaryMinCents *int64     `db:"salary_min_cents"`
	SalaryMaxCents *int64     `db:"salary_max_cents"`
	Deadline       *time.Time `db:"deadline"`
	IsActive       bool       `db:"is_active"`
	SortOrder      int32      `db:"sort_order"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (r jobPostingRow) toEntity() entity.JobPosting {
	return entity.JobPosting{
		ID:             r.ID,
		Title:          r.Title,
		Department:     r.Department,
		Description:    r.Description,
		Requirements:   r.Requirements,
		Location:       r.Location,
		EmploymentType: employmentOf(r.EmploymentType),
		SalaryMin:      moneyOf(r.SalaryMinCents),
		SalaryMax:      moneyOf(r.SalaryMaxCents),
		Deadline:       r.Deadline,
		IsActive:       r.IsActive,
		Order:          r.SortOrder,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (s *DB) ListJobPostings(ctx context.Context, f entity.Filter) (_ []entity.JobPosting, _ int64, err error) {
	ctx, span := s.tracer.Start(ctx, "ListJobPostings")
	defer func() { pgsql.End(span, err) }()

	var total int64
	if err = s.conn.QueryRow(ctx, queryCountJobPostings, f.IsActive).Scan(&total); err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	rows, err := s.conn.Query(ctx, queryListJobPostings, f.IsActive, f.Size, f.Offset)
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[jobPostingRow])
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	jobs := make([]entity.JobPosting, 0, len(items))
	for _, item := range items {
		jobs = append(jobs, item.toEntity())
	}

	return jobs, total, nil
}

func (s *DB) GetJobPostingByID(ctx context.Context, id int64) (_ *entity.JobPosting, err error) {
	ctx, span := s.tracer.Start(ctx, "GetJobPostingByID")
	defer func() { pgsql.End(span, err) }()

	rows, err := s.conn.Query(ctx, queryGetJobPostingByID, id)
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[jobPostingRow])
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	j := row.toEntity()
	return &j, nil
}

func (s *DB) CreateJobPosting(ctx context.Context, j entity.JobPosting) (err error) {
	ctx, span := s.tracer.Start(ctx, "CreateJobPosting")
	defer func() { pgsql.End(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateJobPosting,
		j.ID, j.Title, j.Department, j.Description, j.Requirements, j.Location, employmentArg(j.EmploymentType),
		centsArg(j.SalaryMin), centsArg(j.SalaryMax), j.Deadline, j.IsActive, j.Order)
	return pgsql.MapError(err)
}

func (s *DB) UpdateJobPosting(ctx context.Context, j entity.JobPosting) (err error) {
	ctx, span := s.tracer.Start(ctx, "UpdateJobPosting")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateJobPosting,
		j.ID, j.Title, j.Department, j.Description, j.Requirements, j.Location, employmentArg(j.EmploymentType),
		centsArg(j.SalaryMin), centsArg(j.SalaryMax), j.Deadline, j.IsActive, j.Order)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) DeleteJobPosting(ctx context.Context, id int64) (err error) {
	ctx, span := s.tracer.Start(ctx, "DeleteJobPosting")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryDeleteJobPosting, id)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
