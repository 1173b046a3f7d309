package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/academia/internal/career/entity"
	"github.com/shandysiswandi/academia/internal/pkg/clock"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
)

type memRepo struct {
	mu      sync.Mutex
	jobs    map[int64]entity.JobPosting
	careers map[int64]entity.Career
	fail    error
}

func newMemRepo() *memRepo {
	return &memRepo{jobs: map[int64]entity.JobPosting{}, careers: map[int64]entity.Career{}}
}

func paginate[T any](all []T, size, offset int32) []T {
	if int(offset) >= len(all) {
		return []T{}
	}
	return all[offset:min(int(offset+size), len(all))]
}

func (m *memRepo) ListJobPostings(_ context.Context, f entity.Filter) ([]entity.JobPosting, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, 0, m.fail
	}
	out := []entity.JobPosting{}
	for _, j := range m.jobs {
		if f.IsActive == nil || j.IsActive == *f.IsActive {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, k int) bool {
		if out[i].Order != out[k].Order {
			return out[i].Order < out[k].Order
		}
		return out[i].ID > out[k].ID
	})
	return paginate(out, f.Size, f.Offset), int64(len(out)), nil
}

func (m *memRepo) GetJobPostingByID(_ context.Context, id int64) (*entity.JobPosting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	j, ok := m.jobs[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &j, nil
}

func (m *memRepo) CreateJobPosting(_ context.Context, j entity.JobPosting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.jobs[j.ID] = j
	return nil
}

func (m *memRepo) UpdateJobPosting(_ context.Context, j entity.JobPosting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.jobs[j.ID]; !ok {
		return goerror.ErrNotFound
	}
	m.jobs[j.ID] = j
	return nil
}

func (m *memRepo) DeleteJobPosting(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.jobs[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(m.jobs, id)
	return nil
}

func (m *memRepo) ListCareers(_ context.Context, f entity.Filter) ([]entity.Career, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, 0, m.fail
	}
	out := []entity.Career{}
	for _, c := range m.careers {
		if f.IsActive == nil || c.IsActive == *f.IsActive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, k int) bool {
		if out[i].Order != out[k].Order {
			return out[i].Order < out[k].Order
		}
		return out[i].ID > out[k].ID
	})
	return paginate(out, f.Size, f.Offset), int64(len(out)), nil
}

func (m *memRepo) GetCareerByID(_ context.Context, id int64) (*entity.Career, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	c, ok := m.careers[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &c, nil
}

func (m *memRepo) CreateCareer(_ context.Context, c entity.Career) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.careers[c.ID] = c
	return nil
}

func (m *memRepo) UpdateCareer(_ context.Context, c entity.Career) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.careers[c.ID]; !ok {
		return goerror.ErrNotFound
	}
	m.careers[c.ID] = c
	return nil
}

func (m *memRepo) DeleteCareer(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.careers[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(m.careers, id)
	return nil
}

var today = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func newUsecase(t *testing.T) (*Usecase, *memRepo) {
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
	return New(Dependency{
		RepoDB:     repo,
		Validator:  v,
		UID:        sf,
		Clock:      clock.NewFrozen(today),
		Instrument: instrument.NewNoop(),
	}), repo
}

func str(s string) *string { return &s }

func assertCode(t *testing.T, err error, want goerror.Code) {
	t.Helper()
	if goerror.CodeOf(err) != want {
		t.Fatalf("error = %v (code %v), want code %v", err, goerror.CodeOf(err), want)
	}
}
