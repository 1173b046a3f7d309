package academic

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/academia/internal/academic/inbound"
	"github.com/shandysiswandi/academia/internal/academic/outbound/db"
	"github.com/shandysiswandi/academia/internal/academic/outbound/file"
	"github.com/shandysiswandi/academia/internal/academic/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/router"
	"github.com/shandysiswandi/academia/internal/pkg/storage"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Storage    storage.Storage            `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	ObjectID   uid.StringID               `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:     db.NewDB(dep.DBConn, dep.Instrument),
		RepoFile:   file.NewFile(dep.Storage, dep.Instrument),
		Validator:  dep.Validator,
		UID:        dep.UID,
		ObjectID:   dep.ObjectID,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
