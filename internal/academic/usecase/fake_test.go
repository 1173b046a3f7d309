package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/shandysiswandi/academia/internal/academic/entity"
	"github.com/shandysiswandi/academia/internal/academic/outbound/file"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/storage"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
)

// memRepo mirrors the unique and foreign key constraints of the schema.
type memRepo struct {
	mu          sync.Mutex
	courses     map[int64]entity.Course
	students    map[int64]entity.Student
	enrollments map[int64]entity.Enrollment
	fail        error
}

func newMemRepo() *memRepo {
	return &memRepo{
		courses:     map[int64]entity.Course{},
		students:    map[int64]entity.Student{},
		enrollments: map[int64]entity.Enrollment{},
	}
}

func paginate[T any](all []T, size, offset int32) []T {
	if int(offset) >= len(all) {
		return []T{}
	}
	return all[offset:min(int(offset+size), len(all))]
}

func (m *memRepo) countEnrollments(match func(entity.Enrollment) bool) int64 {
	var n int64
	for _, e := range m.enrollments {
		if match(e) {
			n++
		}
	}
	return n
}

func (m *memRepo) ListCourses(_ context.Context, f entity.CourseFilter) ([]entity.Course, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, 0, m.fail
	}
	out := []entity.Course{}
	for _, c := range m.courses {
		if (f.Level == nil || c.Level == *f.Level) && (f.IsActive == nil || c.IsActive == *f.IsActive) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return paginate(out, f.Size, f.Offset), int64(len(out)), nil
}

func (m *memRepo) GetCourseByID(_ context.Context, id int64) (*entity.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	c, ok := m.courses[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	c.EnrollmentsCount = m.countEnrollments(func(e entity.Enrollment) bool { return e.CourseID == id })
	return &c, nil
}

func (m *memRepo) codeTaken(code string, except int64) bool {
	for id, c := range m.courses {
		if c.Code == code && id != except {
			return true
		}
	}
	return false
}

func (m *memRepo) CreateCourse(_ context.Context, c entity.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.codeTaken(c.Code, 0) {
		return goerror.ErrConflict
	}
	m.courses[c.ID] = c
	return nil
}

func (m *memRepo) UpdateCourse(_ context.Context, c entity.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.courses[c.ID]; !ok {
		return goerror.ErrNotFound
	}
	if m.codeTaken(c.Code, c.ID) {
		return goerror.ErrConflict
	}
	m.courses[c.ID] = c
	return nil
}

func (m *memRepo) DeleteCourse(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.courses[id]; !ok {
		return goerror.ErrNotFound
	}
	if m.countEnrollments(func(e entity.Enrollment) bool { return e.CourseID == id }) > 0 {
		return goerror.ErrReferenced
	}
	delete(m.courses, id)
	return nil
}

func (m *memRepo) ListStudents(_ context.Context, f entity.StudentFilter) ([]entity.Student, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []entity.Student{}
	for _, s := range m.students {
		if f.IsActive == nil || s.IsActive == *f.IsActive {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return paginate(out, f.Size, f.Offset), int64(len(out)), nil
}

func (m *memRepo) GetStudentByID(_ context.Context, id int64) (*entity.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.students[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &s, nil
}

func (m *memRepo) emailTaken(email string, except int64) bool {
	for id, s := range m.students {
		if s.Email == email && id != except {
			return true
		}
	}
	return false
}

func (m *memRepo) CreateStudent(_ context.Context, st entity.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.emailTaken(st.Email, 0) {
		return goerror.ErrConflict
	}
	m.students[st.ID] = st
	return nil
}

func (m *memRepo) UpdateStudent(_ context.Context, st entity.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.students[st.ID]; !ok {
		return goerror.ErrNotFound
	}
	if m.emailTaken(st.Email, st.ID) {
		return goerror.ErrConflict
	}
	m.students[st.ID] = st
	return nil
}

func (m *memRepo) SetStudentResume(_ context.Context, id int64, path *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.students[id]
	if !ok {
		return goerror.ErrNotFound
	}
	s.ResumePath = path
	m.students[id] = s
	return nil
}

func (m *memRepo) DeleteStudent(_ context.Context, id int64) (*string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.students[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	if m.countEnrollments(func(e entity.Enrollment) bool { return e.StudentID == id }) > 0 {
		return nil, goerror.ErrReferenced
	}
	delete(m.students, id)
	return s.ResumePath, nil
}

func (m *memRepo) ListEnrollments(_ context.Context, f entity.EnrollmentFilter) ([]entity.Enrollment, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []entity.Enrollment{}
	for _, e := range m.enrollments {
		if (f.StudentID == 0 || e.StudentID == f.StudentID) && (f.CourseID == 0 || e.CourseID == f.CourseID) &&
			(f.PaymentStatus == nil || e.PaymentStatus == *f.PaymentStatus) &&
			(f.EnrollmentStatus == nil || e.EnrollmentStatus == *f.EnrollmentStatus) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return paginate(out, f.Size, f.Offset), int64(len(out)), nil
}

func (m *memRepo) GetEnrollmentByID(_ context.Context, id int64) (*entity.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.enrollments[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &e, nil
}

func (m *memRepo) CreateEnrollment(_ context.Context, e entity.Enrollment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.students[e.StudentID]; !ok {
		return goerror.ErrReferenced
	}
	if _, ok := m.courses[e.CourseID]; !ok {
		return goerror.ErrReferenced
	}
	for _, x := range m.enrollments {
		if x.StudentID == e.StudentID && x.CourseID == e.CourseID {
			return goerror.ErrConflict
		}
	}
	m.enrollments[e.ID] = e
	return nil
}

func (m *memRepo) UpdateEnrollment(_ context.Context, e entity.Enrollment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.enrollments[e.ID]; !ok {
		return goerror.ErrNotFound
	}
	m.enrollments[e.ID] = e
	return nil
}

func (m *memRepo) DeleteEnrollment(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.enrollments[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(m.enrollments, id)
	return nil
}

type env struct {
	uc    *Usecase
	repo  *memRepo
	store *storage.Memory
}

func newEnv(t *testing.T) *env {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("validator: %v", err)
	}
	sf, err := uid.NewSnowflakeWithNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}

	repo := newMemRepo()
	store := storage.NewMemory()
	ins := instrument.NewNoop()

	return &env{
		uc: New(Dependency{
			RepoDB:     repo,
			RepoFile:   file.NewFile(store, ins),
			Validator:  v,
			UID:        sf,
			ObjectID:   uid.NewULID(),
			Instrument: ins,
		}),
		repo:  repo,
		store: store,
	}
}

func str(s string) *string { return &s }

func assertCode(t *testing.T, err error, want goerror.Code) {
	t.Helper()
	if goerror.CodeOf(err) != want {
		t.Fatalf("error = %v (code %v), want code %v", err, goerror.CodeOf(err), want)
	}
}
