package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
	"github.com/shandysiswandi/academia/internal/notification/entity"
	"github.com/shandysiswandi/academia/internal/notification/outbound/email"
	"github.com/shandysiswandi/academia/internal/pkg/clock"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/jwt"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
)

var testNow = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

type memRepo struct {
	mu     sync.Mutex
	items  map[int64]entity.Notification
	admins map[int64]bool
	fail   error
}

func (m *memRepo) ListNotifications(_ context.Context, f entity.Filter) ([]entity.Notification, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, 0, m.fail
	}
	out := []entity.Notification{}
	for _, n := range m.items {
		if n.RecipientID == f.RecipientID && (!f.UnreadOnly || !n.IsRead()) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	total := int64(len(out))
	if int(f.Offset) >= len(out) {
		return []entity.Notification{}, total, nil
	}
	return out[f.Offset:min(int(f.Offset+f.Size), len(out))], total, nil
}

func (m *memRepo) CountUnread(_ context.Context, recipientID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return 0, m.fail
	}
	var n int64
	for _, it := range m.items {
		if it.RecipientID == recipientID && !it.IsRead() {
			n++
		}
	}
	return n, nil
}

func (m *memRepo) CreateNotifications(_ context.Context, ns []entity.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	for _, n := range ns {
		m.items[n.ID] = n
	}
	return nil
}

func (m *memRepo) MarkRead(_ context.Context, recipientID, id int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.items[id]
	if !ok || n.RecipientID != recipientID {
		return goerror.ErrNotFound
	}
	if n.ReadAt == nil {
		n.ReadAt = &at
		m.items[id] = n
	}
	return nil
}

func (m *memRepo) MarkAllRead(_ context.Context, recipientID int64, at time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for id, n := range m.items {
		if n.RecipientID == recipientID && n.ReadAt == nil {
			n.ReadAt = &at
			m.items[id] = n
			count++
		}
	}
	return count, nil
}

func (m *memRepo) DeleteNotification(_ context.Context, recipientID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.items[id]
	if !ok || n.RecipientID != recipientID {
		return goerror.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memRepo) ListActiveAdminIDs(_ context.Context) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	ids := []int64{}
	for id, active := range m.admins {
		if active {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *memRepo) AdminExists(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.admins[id]
	return ok, nil
}

func (m *memRepo) byRecipient(id int64) []entity.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []entity.Notification{}
	for _, n := range m.items {
		if n.RecipientID == id {
			out = append(out, n)
		}
	}
	return out
}

type fakeMail struct {
	mu        sync.Mutex
	recipient string
	sent      []email.ApplicationNotice
	err       error
}

func (f *fakeMail) SendApplicationNotice(_ context.Context, recipient string, n email.ApplicationNotice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recipient = recipient
	f.sent = append(f.sent, n)
	return f.err
}

type env struct {
	uc   *Usecase
	repo *memRepo
	mail *fakeMail
}

func newEnv(t *testing.T, recipient string) *env {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("validator: %v", err)
	}
	sf, err := uid.NewSnowflakeWithNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}

	repo := &memRepo{
		items:  map[int64]entity.Notification{},
		admins: map[int64]bool{1: true, 2: true, 3: false},
	}
	mail := &fakeMail{}

	return &env{
		uc: New(Dependency{
			RepoDB:     repo,
			RepoMail:   mail,
			Recipient:  recipient,
			UID:        sf,
			Clock:      clock.NewFrozen(testNow),
			Validator:  v,
			Instrument: instrument.NewNoop(),
		}),
		repo: repo,
		mail: mail,
	}
}

func authCtx(id int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		RegisteredClaims: libJWT.RegisteredClaims{Subject: strconv.FormatInt(id, 10)},
		Role:             "admin",
	})
}

func assertCode(t *testing.T, err error, want goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) || gerr.Code() != want {
		t.Fatalf("error = %v, want code %v", err, want)
	}
}
