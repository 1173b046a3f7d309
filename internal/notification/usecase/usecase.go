package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/shandysiswandi/academia/internal/notification/entity"
	"github.com/shandysiswandi/academia/internal/notification/outbound/email"
	"github.com/shandysiswandi/academia/internal/pkg/clock"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	ListNotifications(ctx context.Context, f entity.Filter) ([]entity.Notification, int64, error)
	CountUnread(ctx context.Context, recipientID int64) (int64, error)
	CreateNotifications(ctx context.Context, ns []entity.Notification) error
	MarkRead(ctx context.Context, recipientID, id int64, at time.Time) error
	MarkAllRead(ctx context.Context, recipientID int64, at time.Time) (int64, error)
	DeleteNotification(ctx context.Context, recipientID, id int64) error
	ListActiveAdminIDs(ctx context.Context) ([]int64, error)
	AdminExists(ctx context.Context, id int64) (bool, error)
}

type repoMail interface {
	SendApplicationNotice(ctx context.Context, recipient string, n email.ApplicationNotice) error
}

type Usecase struct {
	repoDB    repoDB
	repoMail  repoMail
	recipient string
	uid       uid.NumberID
	clock     clock.Clocker
	validator validator.Validator
	ins       instrument.Instrumentation
	streamMu  sync.RWMutex
	streams   map[int64]map[*subscriber]struct{}
}

type Dependency struct {
	RepoDB   repoDB
	RepoMail repoMail
	// Recipient receives application notices; empty disables them.
	Recipient  string
	UID        uid.NumberID
	Clock      clock.Clocker
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		repoMail:  dep.RepoMail,
		recipient: dep.Recipient,
		uid:       dep.UID,
		clock:     dep.Clock,
		validator: dep.Validator,
		ins:       dep.Instrument,
		streams:   make(map[int64]map[*subscriber]struct{}),
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}
