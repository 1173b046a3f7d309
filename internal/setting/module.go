package setting

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/academia/internal/pkg/config"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/router"
	"github.com/shandysiswandi/academia/internal/pkg/secret"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
	"github.com/shandysiswandi/academia/internal/setting/inbound"
	"github.com/shandysiswandi/academia/internal/setting/outbound/db"
	"github.com/shandysiswandi/academia/internal/setting/usecase"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Cipher     secret.Cipher              `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:     db.NewDB(dep.DBConn, dep.Instrument),
		Cipher:     dep.Cipher,
		Validator:  dep.Validator,
		Config:     dep.Config,
		UID:        dep.UID,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}

// ResolveSMTP reads the smtp settings group over the mail.* config values.
// It runs once at startup, before the mailer is built.
func ResolveSMTP(ctx context.Context, conn *pgxpool.Pool, cipher secret.Cipher, cfg config.Config, ins instrument.Instrumentation) (*usecase.SMTP, error) {
	uc := usecase.New(usecase.Dependency{
		RepoDB:     db.NewDB(conn, ins),
		Cipher:     cipher,
		Config:     cfg,
		Instrument: ins,
	})

	return uc.ResolveSMTP(ctx)
}
