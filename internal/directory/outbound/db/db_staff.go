package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/academia/internal/directory/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/imaging"
	"github.com/shandysiswandi/academia/internal/pkg/pgsql"
)

type staffRow struct {
	ID             int64     `db:"id"`
	Kind           string    `db:"kind"`
	Name           string    `db:"name"`
	Position       *string   `db:"position"`
	Designation    *string   `db:"designation"`
	Bio            *string   `db:"bio"`
	Qualifications *string   `db:"qualifications"`
	Email          *string   `db:"email"`
	Phone          *string   `db:"phone"`
	Department     *string   `db:"department"`
	Image          *string   `db:"image"`
	ImageMime      *string   `db:"image_mime"`
	ImageSize      string    `db:"image_size"`
	ImageWidth     *int32    `db:"image_width"`
	ImageHeight    *int32    `db:"image_height"`
	SortOrder      int32     `db:"sort_order"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	i := int32(*v)
	return &i
}

func (r staffRow) toEntity() entity.StaffProfile {
	return entity.StaffProfile{
		ID:             r.ID,
		Kind:           entity.Kind(r.Kind),
		Name:           r.Name,
		Position:       r.Position,
		Designation:    r.Designation,
		Bio:            r.Bio,
		Qualifications: r.Qualifications,
		Email:          r.Email,
		Phone:          r.Phone,
		Department:     r.Department,
		Image:          r.Image,
		ImageMime:      r.ImageMime,
		ImageSize:      imaging.Size(r.ImageSize),
		ImageWidth:     intPtr(r.ImageWidth),
		ImageHeight:    intPtr(r.ImageHeight),
		Order:          r.SortOrder,
		IsActive:       r.IsActive,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (s *DB) ListStaff(ctx context.Context, f entity.StaffFilter) (_ []entity.StaffProfile, _ int64, err error) {
	ctx, span := s.tracer.Start(ctx, "ListStaff")
	defer func() { pgsql.End(span, err) }()

	var total int64
	if err = s.conn.QueryRow(ctx, queryCountStaff, f.Kind.String(), f.IsActive).Scan(&total); err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	rows, err := s.conn.Query(ctx, queryListStaff, f.Kind.String(), f.IsActive, f.Size, f.Offset)
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[staffRow])
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	out := make([]entity.StaffProfile, 0, len(items))
	for _, item := range items {
		out = append(out, item.toEntity())
	}

	return out, total, nil
}

func (s *DB) GetStaffByID(ctx context.Context, kind entity.Kind, id int64) (_ *entity.StaffProfile, err error) {
	ctx, span := s.tracer.Start(ctx, "GetStaffByID")
	defer func() { pgsql.End(span, err) }()

	rows, err := s.conn.Query(ctx, queryGetStaffByID, kind.String(), id)
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[staffRow])
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	p := row.toEntity()
	return &p, nil
}

func (s *DB) CreateStaff(ctx context.Context, p entity.StaffProfile) (err error) {
	ctx, span := s.tracer.Start(ctx, "CreateStaff")
	defer func() { pgsql.End(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateStaff,
		p.ID, p.Kind.String(), p.Name, p.Position, p.Designation, p.Bio, p.Qualifications, p.Email, p.Phone,
		p.Department, p.Image, p.ImageMime, string(p.ImageSize), int32Ptr(p.ImageWidth), int32Ptr(p.ImageHeight),
		p.Order, p.IsActive)
	return pgsql.MapError(err)
}

func (s *DB) UpdateStaff(ctx context.Context, p entity.StaffProfile) (err error) {
	ctx, span := s.tracer.Start(ctx, "UpdateStaff")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateStaff,
		p.Kind.String(), p.ID, p.Name, p.Position, p.Designation, p.Bio, p.Qualifications, p.Email, p.Phone,
		p.Department, p.Image, p.ImageMime, string(p.ImageSize), int32Ptr(p.ImageWidth), int32Ptr(p.ImageHeight),
		p.Order, p.IsActive)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

// DeleteStaff returns the image column of the removed row.
func (s *DB) DeleteStaff(ctx context.Context, kind entity.Kind, id int64) (_ *string, err error) {
	ctx, span := s.tracer.Start(ctx, "DeleteStaff")
	defer func() { pgsql.End(span, err) }()

	var image *string
	if err = s.conn.QueryRow(ctx, queryDeleteStaff, kind.String(), id).Scan(&image); err != nil {
		return nil, pgsql.MapError(err)
	}

	return image, nil
}
