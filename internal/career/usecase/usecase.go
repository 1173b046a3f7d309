package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/academia/internal/career/entity"
	"github.com/shandysiswandi/academia/internal/pkg/clock"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

const dateLayout = "2006-01-02"

type repoDB interface {
	ListJobPostings(ctx context.Context, f entity.Filter) ([]entity.JobPosting, int64, error)
	GetJobPostingByID(ctx context.Context, id int64) (*entity.JobPosting, error)
	CreateJobPosting(ctx context.Context, j entity.JobPosting) error
	UpdateJobPosting(ctx context.Context, j entity.JobPosting) error
	DeleteJobPosting(ctx context.Context, id int64) error

	ListCareers(ctx context.Context, f entity.Filter) ([]entity.Career, int64, error)
	GetCareerByID(ctx context.Context, id int64) (*entity.Career, error)
	CreateCareer(ctx context.Context, c entity.Career) error
	UpdateCareer(ctx context.Context, c entity.Career) error
	DeleteCareer(ctx context.Context, id int64) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	uid       uid.NumberID
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	UID        uid.NumberID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		uid:       dep.UID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("career.usecase").Start(ctx, name)
}

func filterOf(isActive *bool, page, size int32) (entity.Filter, int32, int32) {
	if size <= 0 || size > 100 {
		size = 10 // default limit
	}
	page = max(page, 1)
	return entity.Filter{IsActive: isActive, Size: size, Offset: (page - 1) * size}, page, size
}

func employmentOf(v *string) *entity.EmploymentType {
	if v == nil {
		return nil
	}
	t := entity.EmploymentType(*v)
	return &t
}

// futureDate parses a validated yyyy-mm-dd value and requires it to fall
// after the current day.
func (s *Usecase) futureDate(v string) (*time.Time, bool) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, false
	}

	today := s.clock.Now().UTC().Truncate(24 * time.Hour)
	return &t, t.After(today)
}
