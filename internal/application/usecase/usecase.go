package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/academia/internal/application/entity"
	"github.com/shandysiswandi/academia/internal/pkg/clock"
	"github.com/shandysiswandi/academia/internal/pkg/idempotency"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	ListSubmissions(ctx context.Context, f entity.Filter) ([]entity.Submission, int64, error)
	GetSubmissionByID(ctx context.Context, id int64) (*entity.Submission, error)
	CreateSubmission(ctx context.Context, sub entity.Submission) error
	UpdateSubmission(ctx context.Context, sub entity.Submission) error
	MarkSubmissionViewed(ctx context.Context, id int64, at time.Time) error
	DeleteSubmission(ctx context.Context, id int64) error
}

type repoMessaging interface {
	PublishSubmitted(ctx context.Context, sub entity.Submission) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	idempotency   idempotency.Idempotency
	validator     validator.Validator
	uid           uid.NumberID
	clock         clock.Clocker
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	UID           uid.NumberID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		idempotency:   dep.Idempotency,
		validator:     dep.Validator,
		uid:           dep.UID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("application.usecase").Start(ctx, name)
}
