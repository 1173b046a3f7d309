package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
	"github.com/shandysiswandi/academia/internal/admin/entity"
	"github.com/shandysiswandi/academia/internal/pkg/clock"
	"github.com/shandysiswandi/academia/internal/pkg/config"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/hash"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/jwt"
	"github.com/shandysiswandi/academia/internal/pkg/otp"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// memStore keeps admins and tokens in memory. ChargeOtpAttempt holds the
// mutex across check-and-increment, like the row lock of the SQL update.
type memStore struct {
	mu     sync.Mutex
	admins map[int64]entity.Admin
	tokens map[string]entity.OtpToken

	failCreate error
	failCharge error
	markErr    error
}

func newMemStore() *memStore {
	return &memStore{admins: map[int64]entity.Admin{}, tokens: map[string]entity.OtpToken{}}
}

func (m *memStore) CreateOtpToken(_ context.Context, t entity.OtpToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreate != nil {
		return m.failCreate
	}
	m.tokens[t.ID] = t
	return nil
}

func (m *memStore) GetOtpToken(_ context.Context, id string) (*entity.OtpToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tokens[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &t, nil
}

func (m *memStore) GetOtpTokenByContext(ctx context.Context, id string, oc entity.OtpContext) (*entity.OtpToken, error) {
	t, err := m.GetOtpToken(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Context != oc {
		return nil, goerror.ErrNotFound
	}
	return t, nil
}

func (m *memStore) ChargeOtpAttempt(_ context.Context, id string, now time.Time, maxAttempts int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCharge != nil {
		return "", m.failCharge
	}
	t, ok := m.tokens[id]
	if !ok || t.VerifiedAt != nil || !t.ExpiresAt.After(now) || t.Attempts >= maxAttempts {
		return "", goerror.ErrNotFound
	}
	t.Attempts++
	t.UpdatedAt = now
	m.tokens[id] = t
	return t.CodeHash, nil
}

func (m *memStore) MarkOtpTokenVerified(_ context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.markErr != nil {
		return m.markErr
	}
	t, ok := m.tokens[id]
	if !ok || t.VerifiedAt != nil {
		return goerror.ErrNotFound
	}
	t.VerifiedAt = &at
	m.tokens[id] = t
	return nil
}

func (m *memStore) DeleteOtpTokensExpiredBefore(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, t := range m.tokens {
		if t.ExpiresAt.Before(before) {
			delete(m.tokens, id)
			n++
		}
	}
	return n, nil
}

func (m *memStore) DeleteOtpToken(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, id)
	return nil
}

func (m *memStore) GetAdminByID(_ context.Context, id int64) (*entity.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.admins[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &a, nil
}

func (m *memStore) GetAdminByEmail(_ context.Context, email string) (*entity.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if strings.EqualFold(a.Email, email) {
			return &a, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (m *memStore) ListAdmins(_ context.Context, f entity.AdminListFilter) ([]entity.Admin, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]entity.Admin, 0, len(m.admins))
	for _, a := range m.admins {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := int64(len(all))
	start := min(int(f.Offset), len(all))
	end := min(start+int(f.Size), len(all))
	return all[start:end], total, nil
}

func (m *memStore) IsEmailTaken(_ context.Context, email string, exceptID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if a.ID != exceptID && strings.EqualFold(a.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CreateAdmin(_ context.Context, in entity.NewAdmin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if strings.EqualFold(a.Email, in.Email) {
			return goerror.ErrConflict
		}
	}
	m.admins[in.ID] = entity.Admin{
		ID: in.ID, Name: in.Name, Email: in.Email, Password: in.Password,
		Role: in.Role, IsActive: true, CreatedAt: testNow, UpdatedAt: testNow,
	}
	return nil
}

func (m *memStore) PatchAdmin(_ context.Context, p entity.PatchAdmin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.patchLocked(p)
}

func (m *memStore) patchLocked(p entity.PatchAdmin) error {
	a, ok := m.admins[p.ID]
	if !ok {
		return goerror.ErrNotFound
	}
	if p.Email != nil {
		for _, o := range m.admins {
			if o.ID != p.ID && strings.EqualFold(o.Email, *p.Email) {
				return goerror.ErrConflict
			}
		}
		a.Email = *p.Email
	}
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Password != nil {
		a.Password = *p.Password
	}
	if p.Role != nil {
		a.Role = *p.Role
	}
	if p.IsActive != nil {
		a.IsActive = *p.IsActive
	}
	m.admins[p.ID] = a
	return nil
}

func (m *memStore) DeleteAdmin(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.admins[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(m.admins, id)
	return nil
}

func (m *memStore) ApplyOtpCredential(_ context.Context, p entity.PatchAdmin, tokenID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.patchLocked(p); err != nil {
		return err
	}
	delete(m.tokens, tokenID)
	return nil
}

type fakeLimiter struct {
	deny bool
	err  error
}

func (f *fakeLimiter) AllowOTP(context.Context, string, entity.OtpContext) (bool, error) {
	return !f.deny, f.err
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []OTPMail
	err  error
}

func (f *fakeMailer) SendOTP(_ context.Context, msg OTPMail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMailer) last(t *testing.T) OTPMail {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		t.Fatal("no otp mail sent")
	}
	return f.sent[len(f.sent)-1]
}

type fakePublisher struct {
	events []CredentialChangedEvent
	err    error
}

func (f *fakePublisher) PublishCredentialChanged(_ context.Context, msg CredentialChangedEvent) error {
	f.events = append(f.events, msg)
	return f.err
}

type fixedCode struct {
	codes []string
	err   error
}

func (f *fixedCode) Generate() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	c := f.codes[0]
	if len(f.codes) > 1 {
		f.codes = f.codes[1:]
	}
	return c, nil
}

type env struct {
	uc     *Usecase
	otp    *OTP
	store  *memStore
	cache  *fakeLimiter
	mail   *fakeMailer
	pub    *fakePublisher
	clock  *clock.Frozen
	bcrypt hash.Hash
	jwt    jwt.JWT
}

type envOption func(*envConfig)

type envConfig struct {
	yaml string
	code otp.Generator
}

func withConfig(yaml string) envOption {
	return func(c *envConfig) { c.yaml = yaml }
}

func withCodes(codes ...string) envOption {
	return func(c *envConfig) { c.code = &fixedCode{codes: codes} }
}

func newEnv(t *testing.T, opts ...envOption) *env {
	t.Helper()

	ec := envConfig{yaml: "modules:\n  admin:\n    login_otp: false\n", code: &fixedCode{codes: []string{"123456"}}}
	for _, o := range opts {
		o(&ec)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte(ec.yaml))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("validator: %v", err)
	}
	clk := clock.NewFrozen(testNow)
	bc := hash.NewBcrypt(bcrypt.MinCost, "pepper")
	tokens, err := jwt.New(jwt.Config{Secret: []byte("test-secret"), Issuer: "academia", TTL: time.Hour, Clock: clk, UUID: uid.NewUUID()})
	if err != nil {
		t.Fatalf("jwt: %v", err)
	}
	snow, err := uid.NewSnowflakeWithNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}

	e := &env{
		store:  newMemStore(),
		cache:  &fakeLimiter{},
		mail:   &fakeMailer{},
		pub:    &fakePublisher{},
		clock:  clk,
		bcrypt: bc,
		jwt:    tokens,
	}
	e.otp = NewOTP(OTPDependency{
		Store:      e.store,
		Code:       ec.code,
		Hash:       bc,
		ULID:       uid.NewULID(),
		Clock:      clk,
		Instrument: instrument.NewNoop(),
	})
	e.uc = New(Dependency{
		RepoDB:        e.store,
		RepoCache:     e.cache,
		RepoMail:      e.mail,
		RepoMessaging: e.pub,
		OTP:           e.otp,
		Validator:     v,
		Config:        cfg,
		Bcrypt:        bc,
		UID:           snow,
		Clock:         clk,
		JWT:           tokens,
		Instrument:    instrument.NewNoop(),
	})

	return e
}

func (e *env) seedAdmin(t *testing.T, id int64, email, password string, active bool) entity.Admin {
	t.Helper()

	hashed, err := e.bcrypt.Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	a := entity.Admin{
		ID: id, Name: "Admin " + email, Email: email, Password: string(hashed),
		Role: entity.RoleAdmin, IsActive: active, CreatedAt: testNow, UpdatedAt: testNow,
	}
	e.store.admins[id] = a
	return a
}

func authCtx(id int64, role entity.Role) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		RegisteredClaims: libJWT.RegisteredClaims{Subject: strconv.FormatInt(id, 10)},
		Role:             role.String(),
	})
}

func assertCode(t *testing.T, err error, want goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error = %v, want goerror with code %s", err, want)
	}
	if gerr.Code() != want {
		t.Fatalf("code = %s (%q), want %s", gerr.Code(), gerr.Msg(), want)
	}
}

func assertMsg(t *testing.T, err error, want string) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) || gerr.Msg() != want {
		t.Fatalf("error = %v, want message %q", err, want)
	}
}
