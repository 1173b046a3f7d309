package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/academia/internal/notification/entity"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/pgsql"
	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

type notificationRow struct {
	ID          int64               `db:"id"`
	RecipientID int64               `db:"recipient_id"`
	Title       string              `db:"title"`
	Message     string              `db:"message"`
	Type        string              `db:"type"`
	Data        valueobject.JSONMap `db:"data"`
	ReadAt      *time.Time          `db:"read_at"`
	CreatedAt   time.Time           `db:"created_at"`
}

func (r notificationRow) toEntity() entity.Notification {
	return entity.Notification{
		ID:          r.ID,
		RecipientID: r.RecipientID,
		Title:       r.Title,
		Message:     r.Message,
		Type:        entity.Type(r.Type),
		Data:        r.Data,
		ReadAt:      r.ReadAt,
		CreatedAt:   r.CreatedAt,
	}
}

func (s *DB) ListNotifications(ctx context.Context, f entity.Filter) (_ []entity.Notification, _ int64, err error) {
	ctx, span := s.tracer.Start(ctx, "ListNotifications")
	defer func() { pgsql.End(span, err) }()

	var total int64
	if err = s.conn.QueryRow(ctx, queryCountNotifications, f.RecipientID, f.UnreadOnly).Scan(&total); err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	rows, err := s.conn.Query(ctx, queryListNotifications, f.RecipientID, f.UnreadOnly, f.Size, f.Offset)
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[notificationRow])
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	out := make([]entity.Notification, 0, len(items))
	for _, item := range items {
		out = append(out, item.toEntity())
	}

	return out, total, nil
}

func (s *DB) CountUnread(ctx context.Context, recipientID int64) (_ int64, err error) {
	ctx, span := s.tracer.Start(ctx, "CountUnread")
	defer func() { pgsql.End(span, err) }()

	var n int64
	if err = s.conn.QueryRow(ctx, queryCountUnread, recipientID).Scan(&n); err != nil {
		return 0, pgsql.MapError(err)
	}

	return n, nil
}

// CreateNotifications inserts all rows in one transaction.
func (s *DB) CreateNotifications(ctx context.Context, ns []entity.Notification) (err error) {
	ctx, span := s.tracer.Start(ctx, "CreateNotifications")
	defer func() { pgsql.End(span, err) }()

	if len(ns) == 0 {
		return nil
	}

	return pgsql.InTx(ctx, s.conn, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, n := range ns {
			data := n.Data
			if data == nil {
				data = valueobject.JSONMap{}
			}
			batch.Queue(queryInsertNotification, n.ID, n.RecipientID, n.Title, n.Message, n.Type.String(), data, n.CreatedAt)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
}

func (s *DB) MarkRead(ctx context.Context, recipientID, id int64, at time.Time) (err error) {
	ctx, span := s.tracer.Start(ctx, "MarkRead")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryMarkRead, id, recipientID, at)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) MarkAllRead(ctx context.Context, recipientID int64, at time.Time) (_ int64, err error) {
	ctx, span := s.tracer.Start(ctx, "MarkAllRead")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryMarkAllRead, recipientID, at)
	if err != nil {
		return 0, pgsql.MapError(err)
	}

	return tag.RowsAffected(), nil
}

func (s *DB) DeleteNotification(ctx context.Context, recipientID, id int64) (err error) {
	ctx, span := s.tracer.Start(ctx, "DeleteNotification")
	defer func() { pgsql.End(span, err) }()

	tag, err := s.conn.Exec(ctx, queryDeleteNotification, id, recipientID)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) ListActiveAdminIDs(ctx context.Context) (_ []int64, err error) {
	ctx, span := s.tracer.Start(ctx, "ListActiveAdminIDs")
	defer func() { pgsql.End(span, err) }()

	rows, err := s.conn.Query(ctx, queryListActiveAdminIDs)
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	return ids, nil
}

func (s *DB) AdminExists(ctx context.Context, id int64) (_ bool, err error) {
	ctx, span := s.tracer.Start(ctx, "AdminExists")
	defer func() { pgsql.End(span, err) }()

	var ok bool
	if err = s.conn.QueryRow(ctx, queryAdminExists, id).Scan(&ok); err != nil {
		return false, pgsql.MapError(err)
	}

	return ok, nil
}
