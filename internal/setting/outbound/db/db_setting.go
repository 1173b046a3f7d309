package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/pgsql"
	"github.com/shandysiswandi/academia/internal/setting/entity"
)

type settingRow struct {
	ID          int64     `db:"id"`
	Key         string    `db:"key"`
	Value       *string   `db:"value"`
	Type        string    `db:"type"`
	GroupName   string    `db:"group_name"`
	Description *string   `db:"description"`
	IsPublic    bool      `db:"is_public"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r settingRow) toEntity() entity.Setting {
	return entity.Setting{
		ID:          r.ID,
		Key:         r.Key,
		Value:       r.Value,
		Type:        entity.Type(r.Type),
		Group:       r.GroupName,
		Description: r.Description,
		IsPublic:    r.IsPublic,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (s *DB) collect(rows pgx.Rows) ([]entity.Setting, error) {
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[settingRow])
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	out := make([]entity.Setting, 0, len(items))
	for _, item := range items {
		out = append(out, item.toEntity())
	}

	return out, nil
}

func (s *DB) ListSettings(ctx context.Context, filter entity.SettingFilter) (_ []entity.Setting, _ int64, err error) {
	ctx, span := s.tracer.Start(ctx, "ListSettings")
	defer func() { pgsql.End(span, err) }()

	var total int64
	if err = s.conn.QueryRow(ctx, queryCountSettings, filter.Group, filter.IsPublic).Scan(&total); err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	rows, err := s.conn.Query(ctx, queryListSettings, filter.Group, filter.IsPublic, filter.Size, filter.Offset)
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	items, err := s.collect(rows)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *DB) ListSettingsByGroup(ctx context.Context, group string, publicOnly bool) (_ []entity.Setting, err error) {
	ctx, span := s.tracer.Start(ctx, "ListSettingsByGroup")
	defer func() { pgsql.End(span, err) }()

	rows, err := s.conn.Query(ctx, queryListSettingsByGroup, group, publicOnly)
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	return s.collect(rows)
}

func (s *DB) getSetting(ctx context.Context, query string, arg any) (*entity.Setting, error) {
	rows, err := s.conn.Query(ctx, query, arg)
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[settingRow])
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	st := row.toEntity()
	return &st, nil
}

func (s *DB) GetSettingByID(ctx context.Context, id int64) (_ *entity.Setting, err error) {
	ctx, span := s.tracer.Start(ctx, "GetSettingByID")
	defer func() { pgsql.End(span, err) }()

	return s.getSetting(ctx, queryGetSettingByID, id)
}

func (s *DB) GetSettingByKey(ctx context.Context, key string) (_ *entity.Setting, err error) {
	ctx, span := s.tracer.Start(ctx, "GetSettingByKey")
	defer func() { pgsql.End(span, err) }()

	return s.getSetting(ctx, queryGetSettingByKey, key)
}

func (s *DB) CreateSetting(ctx context.Context, st entity.Setting) (err error) {
	ctx, span := s.tracer.Start(ctx, "CreateSetting")
	defer func() { pgsql.End(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateSetting,
		st.ID, st.Key, st.Value, st.Type.String(), st.Group, st.Description, st.IsPublic)
	return pgsql.MapError(err)
}

func (s *DB) UpdateSetting(ctx context.Context, st entity.Setting) (err error) {
	ctx, span := s.tracer.Start(ctx, "UpdateSetting")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateSetting,
		st.ID, st.Key, st.Value, st.Type.String(), st.Group, st.Description, st.IsPublic)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) DeleteSetting(ctx context.Context, id int64) (err error) {
	ctx, span := s.tracer.Start(ctx, "DeleteSetting")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryDeleteSetting, id)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
