package usecase

import (
	"context"

	"github.com/shandysiswandi/academia/internal/directory/entity"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

const (
	// ImageMaxBytes bounds an uploaded staff or facility picture.
	ImageMaxBytes = 4 << 20

	publicLimit = 500
)

var imageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

type repoDB interface {
	ListStaff(ctx context.Context, f entity.StaffFilter) ([]entity.StaffProfile, int64, error)
	GetStaffByID(ctx context.Context, kind entity.Kind, id int64) (*entity.StaffProfile, error)
	CreateStaff(ctx context.Context, p entity.StaffProfile) error
	UpdateStaff(ctx context.Context, p entity.StaffProfile) error
	DeleteStaff(ctx context.Context, kind entity.Kind, id int64) (*string, error)

	ListFacilities(ctx context.Context, f entity.FacilityFilter) ([]entity.Facility, int64, error)
	GetFacilityByID(ctx context.Context, id int64) (*entity.Facility, error)
	CreateFacility(ctx context.Context, f entity.Facility) error
	UpdateFacility(ctx context.Context, f entity.Facility) error
	DeleteFacility(ctx context.Context, id int64) error
}

type repoFile interface {
	PutImage(ctx context.Context, key string, data []byte, contentType string) error
	DeleteImage(ctx context.Context, key string) error
}

type Usecase struct {
	repoDB    repoDB
	repoFile  repoFile
	validator validator.Validator
	uid       uid.NumberID
	objectID  uid.StringID
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	RepoFile   repoFile
	Validator  validator.Validator
	UID        uid.NumberID
	ObjectID   uid.StringID
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		repoFile:  dep.RepoFile,
		validator: dep.Validator,
		uid:       dep.UID,
		objectID:  dep.ObjectID,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("directory.usecase").Start(ctx, name)
}
