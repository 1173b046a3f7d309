package application

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/academia/internal/application/inbound"
	"github.com/shandysiswandi/academia/internal/application/outbound/db"
	"github.com/shandysiswandi/academia/internal/application/outbound/mq"
	"github.com/shandysiswandi/academia/internal/application/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/clock"
	"github.com/shandysiswandi/academia/internal/pkg/idempotency"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/messaging"
	"github.com/shandysiswandi/academia/internal/pkg/router"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Messaging   messaging.Publisher        `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:        db.NewDB(dep.DBConn, dep.Instrument),
		RepoMessaging: mq.NewMessaging(dep.Messaging, dep.Instrument),
		Idempotency:   dep.Idempotency,
		Validator:     dep.Validator,
		UID:           dep.UID,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
