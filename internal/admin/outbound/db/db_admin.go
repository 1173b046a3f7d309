package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/academia/internal/admin/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/pgsql"
)

type adminRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Role      string    `db:"role"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r adminRow) toEntity() entity.Admin {
	return entity.Admin{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Password:  r.Password,
		Role:      entity.Role(r.Role),
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (s *DB) getAdmin(ctx context.Context, query string, arg any) (*entity.Admin, error) {
	rows, err := s.conn.Query(ctx, query, arg)
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[adminRow])
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	admin := row.toEntity()
	return &admin, nil
}

func (s *DB) GetAdminByID(ctx context.Context, id int64) (_ *entity.Admin, err error) {
	ctx, span := s.tracer.Start(ctx, "GetAdminByID")
	defer func() { pgsql.End(span, err) }()

	return s.getAdmin(ctx, queryGetAdminByID, id)
}

func (s *DB) GetAdminByEmail(ctx context.Context, email string) (_ *entity.Admin, err error) {
	ctx, span := s.tracer.Start(ctx, "GetAdminByEmail")
	defer func() { pgsql.End(span, err) }()

	return s.getAdmin(ctx, queryGetAdminByEmail, email)
}

func (s *DB) ListAdmins(ctx context.Context, filter entity.AdminListFilter) (_ []entity.Admin, _ int64, err error) {
	ctx, span := s.tracer.Start(ctx, "ListAdmins")
	defer func() { pgsql.End(span, err) }()

	var total int64
	if err = s.conn.QueryRow(ctx, queryCountAdmins).Scan(&total); err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	rows, err := s.conn.Query(ctx, queryListAdmins, filter.Size, filter.Offset)
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[adminRow])
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	admins := make([]entity.Admin, 0, len(items))
	for _, item := range items {
		admins = append(admins, item.toEntity())
	}

	return admins, total, nil
}

func (s *DB) IsEmailTaken(ctx context.Context, email string, exceptID int64) (_ bool, err error) {
	ctx, span := s.tracer.Start(ctx, "IsEmailTaken")
	defer func() { pgsql.End(span, err) }()

	var taken bool
	if err = s.conn.QueryRow(ctx, queryIsEmailTaken, email, exceptID).Scan(&taken); err != nil {
		return false, pgsql.MapError(err)
	}

	return taken, nil
}

func (s *DB) CreateAdmin(ctx context.Context, in entity.NewAdmin) (err error) {
	ctx, span := s.tracer.Start(ctx, "CreateAdmin")
	defer func() { pgsql.End(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateAdmin, in.ID, in.Name, in.Email, in.Password, in.Role.String())
	return pgsql.MapError(err)
}

func patchArgs(in entity.PatchAdmin) []any {
	var role *string
	if in.Role != nil {
		r := in.Role.String()
		role = &r
	}

	return []any{in.ID, in.Name, in.Email, in.Password, role, in.IsActive}
}

func (s *DB) PatchAdmin(ctx context.Context, in entity.PatchAdmin) (err error) {
	ctx, span := s.tracer.Start(ctx, "PatchAdmin")
	defer func() { pgsql.End(span, err) }()

	if in.IsEmpty() {
		// nothing to patch
		return nil
	}

	tag, err := s.conn.Exec(ctx, queryPatchAdmin, patchArgs(in)...)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) DeleteAdmin(ctx context.Context, id int64) (err error) {
	ctx, span := s.tracer.Start(ctx, "DeleteAdmin")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryDeleteAdmin, id)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) ApplyOtpCredential(ctx context.Context, patch entity.PatchAdmin, tokenID string) (err error) {
	ctx, span := s.tracer.Start(ctx, "ApplyOtpCredential")
	defer func() { pgsql.End(span, err) }()

	return pgsql.InTx(ctx, s.conn, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, queryPatchAdmin, patchArgs(patch)...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return goerror.ErrNotFound
		}

		_, err = tx.Exec(ctx, queryDeleteOtpToken, tokenID)
		return err
	})
}
