package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/academia/internal/academic/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/pgsql"
)

type studentRow struct {
	ID               int64      `db:"id"`
	FirstName        string     `db:"first_name"`
	LastName         string     `db:"last_name"`
	Email            string     `db:"email"`
	Phone            *string    `db:"phone"`
	DateOfBirth      *time.Time `db:"date_of_birth"`
	Address          *string    `db:"address"`
	City             *string    `db:"city"`
	Country          *string    `db:"country"`
	EducationLevel   *string    `db:"education_level"`
	ResumePath       *string    `db:"resume_path"`
	IsActive         bool       `db:"is_active"`
	EnrollmentsCount int64      `db:"enrollments_count"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

func (r studentRow) toEntity() entity.Student {
	return entity.Student{
		ID:               r.ID,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phone:            r.Phone,
		DateOfBirth:      r.DateOfBirth,
		Address:          r.Address,
		City:             r.City,
		Country:          r.Country,
		EducationLevel:   r.EducationLevel,
		ResumePath:       r.ResumePath,
		IsActive:         r.IsActive,
		EnrollmentsCount: r.EnrollmentsCount,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (s *DB) ListStudents(ctx context.Context, f entity.StudentFilter) (_ []entity.Student, _ int64, err error) {
	ctx, span := s.tracer.Start(ctx, "ListStudents")
	defer func() { pgsql.End(span, err) }()

	var total int64
	if err = s.conn.QueryRow(ctx, queryCountStudents, f.Search, f.IsActive).Scan(&total); err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	rows, err := s.conn.Query(ctx, queryListStudents, f.Search, f.IsActive, f.Size, f.Offset)
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[studentRow])
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	students := make([]entity.Student, 0, len(items))
	for _, item := range items {
		students = append(students, item.toEntity())
	}

	return students, total, nil
}

func (s *DB) GetStudentByID(ctx context.Context, id int64) (_ *entity.Student, err error) {
	ctx, span := s.tracer.Start(ctx, "GetStudentByID")
	defer func() { pgsql.End(span, err) }()

	rows, err := s.conn.Query(ctx, queryGetStudentByID, id)
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[studentRow])
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	st := row.toEntity()
	return &st, nil
}

func (s *DB) CreateStudent(ctx context.Context, st entity.Student) (err error) {
	ctx, span := s.tracer.Start(ctx, "CreateStudent")
	defer func() { pgsql.End(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateStudent,
		st.ID, st.FirstName, st.LastName, st.Email, st.Phone, st.DateOfBirth,
		st.Address, st.City, st.Country, st.EducationLevel, st.IsActive)
	return pgsql.MapError(err)
}

func (s *DB) UpdateStudent(ctx context.Context, st entity.Student) (err error) {
	ctx, span := s.tracer.Start(ctx, "UpdateStudent")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateStudent,
		st.ID, st.FirstName, st.LastName, st.Email, st.Phone, st.DateOfBirth,
		st.Address, st.City, st.Country, st.EducationLevel, st.IsActive)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

// SetStudentResume stores path, or clears it when path is nil.
func (s *DB) SetStudentResume(ctx context.Context, id int64, path *string) (err error) {
	ctx, span := s.tracer.Start(ctx, "SetStudentResume")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, querySetStudentResume, id, path)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

// DeleteStudent returns the resume path the deleted row held.
func (s *DB) DeleteStudent(ctx context.Context, id int64) (_ *string, err error) {
	ctx, span := s.tracer.Start(ctx, "DeleteStudent")
	defer func() { pgsql.End(span, err) }()

	var resume *string
	if err = s.conn.QueryRow(ctx, queryDeleteStudent, id).Scan(&resume); err != nil {
		return nil, pgsql.MapError(err)
	}

	return resume, nil
}
