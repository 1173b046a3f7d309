package inbound

import (
	"context"

	"github.com/shandysiswandi/academia/internal/notification/entity"
	"github.com/shandysiswandi/academia/internal/notification/usecase"
)

type ucConsumer interface {
	ConsumeApplicationSubmitted(ctx context.Context, in usecase.ConsumeApplicationSubmittedInput) error
	ConsumeCredentialChanged(ctx context.Context, in usecase.ConsumeCredentialChangedInput) error
}

type ucStream interface {
	Stream(ctx context.Context) (<-chan usecase.StreamEvent, error)
}

type uc interface {
	ucConsumer
	ucStream

	List(ctx context.Context, in usecase.ListInput) (*usecase.ListOutput, error)
	Create(ctx context.Context, in usecase.CreateInput) (*entity.Notification, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) (int64, error)
	UnreadCount(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}
