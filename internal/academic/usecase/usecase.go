package usecase

import (
	"context"
	"io"
	"time"

	"github.com/shandysiswandi/academia/internal/academic/entity"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/storage"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

const dateLayout = "2006-01-02"

type repoDB interface {
	ListCourses(ctx context.Context, f entity.CourseFilter) ([]entity.Course, int64, error)
	GetCourseByID(ctx context.Context, id int64) (*entity.Course, error)
	CreateCourse(ctx context.Context, c entity.Course) error
	UpdateCourse(ctx context.Context, c entity.Course) error
	DeleteCourse(ctx context.Context, id int64) error

	ListStudents(ctx context.Context, f entity.StudentFilter) ([]entity.Student, int64, error)
	GetStudentByID(ctx context.Context, id int64) (*entity.Student, error)
	CreateStudent(ctx context.Context, st entity.Student) error
	UpdateStudent(ctx context.Context, st entity.Student) error
	SetStudentResume(ctx context.Context, id int64, path *string) error
	DeleteStudent(ctx context.Context, id int64) (*string, error)

	ListEnrollments(ctx context.Context, f entity.EnrollmentFilter) ([]entity.Enrollment, int64, error)
	GetEnrollmentByID(ctx context.Context, id int64) (*entity.Enrollment, error)
	CreateEnrollment(ctx context.Context, e entity.Enrollment) error
	UpdateEnrollment(ctx context.Context, e entity.Enrollment) error
	DeleteEnrollment(ctx context.Context, id int64) error
}

type repoFile interface {
	PutResume(ctx context.Context, key string, data []byte, contentType string) error
	OpenResume(ctx context.Context, key string) (io.ReadCloser, storage.Object, error)
	DeleteResume(ctx context.Context, key string) error
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
	return s.ins.Tracer("academic.usecase").Start(ctx, name)
}

// pageOf normalizes paging input. A size outside 1..100 falls back to def.
func pageOf(page, size, def int32) (int32, int32) {
	if size <= 0 || size > 100 {
		size = def
	}
	return max(page, 1), size
}

// parseDate reads an already validated YYYY-MM-DD value.
func parseDate(v *string) *time.Time {
	if v == nil || *v == "" {
		return nil
	}

	t, err := time.Parse(dateLayout, *v)
	if err != nil {
		return nil
	}

	return &t
}
