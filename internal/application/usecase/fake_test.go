package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/academia/internal/application/entity"
	"github.com/shandysiswandi/academia/internal/pkg/clock"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/idempotency"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
)

type memRepo struct {
	mu    sync.Mutex
	subs  map[int64]entity.Submission
	views int
	fail  error
}

func (m *memRepo) ListSubmissions(_ context.Context, f entity.Filter) ([]entity.Submission, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, 0, m.fail
	}
	out := []entity.Submission{}
	for _, s := range m.subs {
		if f.FormType != nil && s.FormType != *f.FormType {
			continue
		}
		if f.Status != nil && s.Status != *f.Status {
			continue
		}
		if f.Search != "" && !strings.Contains(s.FullName+s.Email, f.Search) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	total := int64(len(out))
	if int(f.Offset) >= len(out) {
		return []entity.Submission{}, total, nil
	}
	return out[f.Offset:min(int(f.Offset+f.Size), len(out))], total, nil
}

func (m *memRepo) GetSubmissionByID(_ context.Context, id int64) (*entity.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	s, ok := m.subs[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &s, nil
}

func (m *memRepo) CreateSubmission(_ context.Context, sub entity.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.subs[sub.ID] = sub
	return nil
}

func (m *memRepo) UpdateSubmission(_ context.Context, sub entity.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	old, ok := m.subs[sub.ID]
	if !ok {
		return goerror.ErrNotFound
	}
	old.Status, old.AdminNotes = sub.Status, sub.AdminNotes
	m.subs[sub.ID] = old
	return nil
}

func (m *memRepo) MarkSubmissionViewed(_ context.Context, id int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	s, ok := m.subs[id]
	if ok && s.AdminViewedAt == nil {
		s.AdminViewedAt = &at
		m.subs[id] = s
		m.views++
	}
	return nil
}

func (m *memRepo) DeleteSubmission(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.subs[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(m.subs, id)
	return nil
}

type fakePublisher struct {
	mu   sync.Mutex
	sent []entity.Submission
	err  error
}

func (f *fakePublisher) PublishSubmitted(_ context.Context, sub entity.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sub)
	return f.err
}

type env struct {
	uc    *Usecase
	repo  *memRepo
	pub   *fakePublisher
	redis *miniredis.Miniredis
}

var viewedAt = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

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

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := &memRepo{subs: map[int64]entity.Submission{}}
	pub := &fakePublisher{}

	return &env{
		uc: New(Dependency{
			RepoDB:        repo,
			RepoMessaging: pub,
			Idempotency:   idempotency.New(client),
			Validator:     v,
			UID:           sf,
			Clock:         clock.NewFrozen(viewedAt),
			Instrument:    instrument.NewNoop(),
		}),
		repo:  repo,
		pub:   pub,
		redis: mr,
	}
}

func str(s string) *string { return &s }

func assertCode(t *testing.T, err error, want goerror.Code) {
	t.Helper()
	if goerror.CodeOf(err) != want {
		t.Fatalf("error = %v (code %v), want code %v", err, goerror.CodeOf(err), want)
	}
}
