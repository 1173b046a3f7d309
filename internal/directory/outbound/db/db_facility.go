package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/academia/internal/directory/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/pgsql"
)

type facilityRow struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Description *string   `db:"description"`
	Image       *string   `db:"image"`
	ImageData   *string   `db:"image_data"`
	ImageMime   *string   `db:"image_mime"`
	Icon        *string   `db:"icon"`
	Category    *string   `db:"category"`
	Capacity    *int32    `db:"capacity"`
	Location    *string   `db:"location"`
	Features    []string  `db:"features"`
	IsFeatured  bool      `db:"is_featured"`
	SortOrder   int32     `db:"sort_order"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r facilityRow) toEntity() entity.Facility {
	return entity.Facility{
		ID:          r.ID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Image:       r.Image,
		ImageData:   r.ImageData,
		ImageMime:   r.ImageMime,
		Icon:        r.Icon,
		Category:    r.Category,
		Capacity:    r.Capacity,
		Location:    r.Location,
		Features:    r.Features,
		IsFeatured:  r.IsFeatured,
		Order:       r.SortOrder,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func features(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func (s *DB) ListFacilities(ctx context.Context, f entity.FacilityFilter) (_ []entity.Facility, _ int64, err error) {
	ctx, span := s.tracer.Start(ctx, "ListFacilities")
	defer func() { pgsql.End(span, err) }()

	var total int64
	if err = s.conn.QueryRow(ctx, queryCountFacilities, f.IsActive, f.IsFeatured, f.Category).Scan(&total); err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	rows, err := s.conn.Query(ctx, queryListFacilities, f.IsActive, f.IsFeatured, f.Category, f.Size, f.Offset)
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[facilityRow])
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	out := make([]entity.Facility, 0, len(items))
	for _, item := range items {
		out = append(out, item.toEntity())
	}

	return out, total, nil
}

func (s *DB) GetFacilityByID(ctx context.Context, id int64) (_ *entity.Facility, err error) {
	ctx, span := s.tracer.Start(ctx, "GetFacilityByID")
	defer func() { pgsql.End(span, err) }()

	rows, err := s.conn.Query(ctx, queryGetFacilityByID, id)
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[facilityRow])
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	f := row.toEntity()
	return &f, nil
}

func (s *DB) CreateFacility(ctx context.Context, f entity.Facility) (err error) {
	ctx, span := s.tracer.Start(ctx, "CreateFacility")
	defer func() { pgsql.End(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateFacility,
		f.ID, f.Name, f.Slug, f.Description, f.Image, f.ImageData, f.ImageMime, f.Icon, f.Category,
		f.Capacity, f.Location, features(f.Features), f.IsFeatured, f.Order, f.IsActive)
	return pgsql.MapError(err)
}

func (s *DB) UpdateFacility(ctx context.Context, f entity.Facility) (err error) {
	ctx, span := s.tracer.Start(ctx, "UpdateFacility")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateFacility,
		f.ID, f.Name, f.Slug, f.Description, f.Image, f.ImageData, f.ImageMime, f.Icon, f.Category,
		f.Capacity, f.Location, features(f.Features), f.IsFeatured, f.Order, f.IsActive)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) DeleteFacility(ctx context.Context, id int64) (err error) {
	ctx, span := s.tracer.Start(ctx, "DeleteFacility")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryDeleteFacility, id)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
