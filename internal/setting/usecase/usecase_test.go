package usecase

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/shandysiswandi/academia/internal/pkg/config"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/secret"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
	"github.com/shandysiswandi/academia/internal/setting/entity"
)

type memRepo struct {
	mu       sync.Mutex
	settings map[int64]entity.Setting
	failList error
}

func (m *memRepo) sorted(keep func(entity.Setting) bool) []entity.Setting {
	out := []entity.Setting{}
	for _, s := range m.settings {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func (m *memRepo) ListSettings(_ context.Context, f entity.SettingFilter) ([]entity.Setting, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failList != nil {
		return nil, 0, m.failList
	}
	all := m.sorted(func(s entity.Setting) bool {
		return (f.Group == nil || s.Group == *f.Group) && (f.IsPublic == nil || s.IsPublic == *f.IsPublic)
	})
	end := min(int(f.Offset+f.Size), len(all))
	if int(f.Offset) >= len(all) {
		return []entity.Setting{}, int64(len(all)), nil
	}
	return all[f.Offset:end], int64(len(all)), nil
}

func (m *memRepo) ListSettingsByGroup(_ context.Context, group string, publicOnly bool) ([]entity.Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failList != nil {
		return nil, m.failList
	}
	return m.sorted(func(s entity.Setting) bool {
		return s.Group == group && (!publicOnly || s.IsPublic)
	}), nil
}

func (m *memRepo) GetSettingByID(_ context.Context, id int64) (*entity.Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.settings[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &s, nil
}

func (m *memRepo) GetSettingByKey(_ context.Context, key string) (*entity.Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.settings {
		if s.Key == key {
			return &s, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (m *memRepo) keyTaken(key string, except int64) bool {
	for id, s := range m.settings {
		if s.Key == key && id != except {
			return true
		}
	}
	return false
}

func (m *memRepo) CreateSetting(_ context.Context, s entity.Setting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.keyTaken(s.Key, 0) {
		return goerror.ErrConflict
	}
	m.settings[s.ID] = s
	return nil
}

func (m *memRepo) UpdateSetting(_ context.Context, s entity.Setting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.settings[s.ID]; !ok {
		return goerror.ErrNotFound
	}
	if m.keyTaken(s.Key, s.ID) {
		return goerror.ErrConflict
	}
	m.settings[s.ID] = s
	return nil
}

func (m *memRepo) DeleteSetting(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.settings[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(m.settings, id)
	return nil
}

type env struct {
	uc     *Usecase
	repo   *memRepo
	cipher *secret.AESGCM
}

const testConfig = `
mail:
  host: config.smtp.local
  port: 2525
  from: config@example.com
  from_name: Config Sender
`

func newEnv(t *testing.T) *env {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfig))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("validator: %v", err)
	}
	sf, err := uid.NewSnowflakeWithNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	c, err := secret.NewAESGCM(bytes.Repeat([]byte{7}, 32))
	if err != nil {
		t.Fatalf("cipher: %v", err)
	}

	repo := &memRepo{settings: map[int64]entity.Setting{}}
	return &env{
		uc: New(Dependency{
			RepoDB:     repo,
			Cipher:     c,
			Validator:  v,
			Config:     cfg,
			UID:        sf,
			Instrument: instrument.NewNoop(),
		}),
		repo:   repo,
		cipher: c,
	}
}

func str(s string) *string { return &s }

func assertCode(t *testing.T, err error, want goerror.Code) {
	t.Helper()
	if goerror.CodeOf(err) != want {
		t.Fatalf("error = %v (code %v), want code %v", err, goerror.CodeOf(err), want)
	}
}

func TestSettingCreate_EncryptsSensitive(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()

	// Act
	created, err := e.uc.SettingCreate(ctx, SettingCreateInput{Key: "smtp.password", Value: str("hunter2"), Type: "text", Group: "smtp"})

	// Assert
	if err != nil {
		t.Fatalf("SettingCreate() error = %v", err)
	}
	if *created.Value != "hunter2" {
		t.Fatalf("returned value = %q, want plaintext", *created.Value)
	}
	stored := *e.repo.settings[created.ID].Value
	if !secret.IsEncrypted(stored) || strings.Contains(stored, "hunter2") {
		t.Fatalf("stored value = %q, want ciphertext", stored)
	}
	if plain, err := e.cipher.Decrypt(stored, "smtp.password"); err != nil || plain != "hunter2" {
		t.Fatalf("Decrypt() = %q, %v", plain, err)
	}
}

func TestSettingCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   SettingCreateInput
		want goerror.Code
	}{
		{name: "missing key", in: SettingCreateInput{Type: "text", Group: "g"}, want: goerror.CodeInvalidInput},
		{name: "bad type", in: SettingCreateInput{Key: "k", Type: "yaml", Group: "g"}, want: goerror.CodeInvalidInput},
		{name: "missing group", in: SettingCreateInput{Key: "k", Type: "text", Group: "  "}, want: goerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newEnv(t).uc.SettingCreate(context.Background(), tt.in)
			assertCode(t, err, tt.want)
		})
	}
}

func TestSettingCreate_DuplicateKey(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	_, _ = e.uc.SettingCreate(ctx, SettingCreateInput{Key: "site.name", Type: "text", Group: "general"})

	// Act
	_, err := e.uc.SettingCreate(ctx, SettingCreateInput{Key: "site.name", Type: "text", Group: "general"})

	// Assert
	assertCode(t, err, goerror.CodeConflict)
}

func TestSettingList_MasksSensitive(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	_, _ = e.uc.SettingCreate(ctx, SettingCreateInput{Key: "smtp.username", Value: str("mailer"), Type: "text", Group: "smtp"})
	_, _ = e.uc.SettingCreate(ctx, SettingCreateInput{Key: "smtp.host", Value: str("mail.local"), Type: "text", Group: "smtp"})

	// Act
	out, err := e.uc.SettingList(ctx, SettingListInput{})
	group, errGroup := e.uc.SettingsByGroup(ctx, "smtp")

	// Assert
	if err != nil || out.Size != 50 || out.Page != 1 || out.Total != 2 {
		t.Fatalf("SettingList() = %+v, %v", out, err)
	}
	for _, items := range [][]entity.Setting{out.Settings, group} {
		if *items[0].Value != "mail.local" || *items[1].Value != entity.MaskedValue {
			t.Fatalf("values = %q, %q", *items[0].Value, *items[1].Value)
		}
	}
	if errGroup != nil {
		t.Fatalf("SettingsByGroup() error = %v", errGroup)
	}
}

func TestSettingByKey(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	e.repo.settings[1] = entity.Setting{ID: 1, Key: "smtp.password", Value: str("legacy-plain"), Type: entity.TypeText, Group: "smtp"}
	e.repo.settings[2] = entity.Setting{ID: 2, Key: "smtp.username", Value: str("enc:garbage"), Type: entity.TypeText, Group: "smtp"}

	// Act
	legacy, errLegacy := e.uc.SettingByKey(ctx, "smtp.password")
	corrupt, errCorrupt := e.uc.SettingByKey(ctx, "smtp.username")
	_, errMissing := e.uc.SettingByKey(ctx, "nope")

	// Assert
	if errLegacy != nil || *legacy.Value != "legacy-plain" {
		t.Fatalf("legacy = %v, %v", legacy, errLegacy)
	}
	if errCorrupt != nil || *corrupt.Value != "enc:garbage" {
		t.Fatalf("corrupt = %v, %v", corrupt, errCorrupt)
	}
	assertCode(t, errMissing, goerror.CodeNotFound)
	var gerr *goerror.Error
	if !errors.As(errMissing, &gerr) || gerr.Msg() != "Setting not found" {
		t.Fatalf("error = %v", errMissing)
	}
}

func TestPublicSettingsByGroup(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	pub := true
	_, _ = e.uc.SettingCreate(ctx, SettingCreateInput{Key: "site.name", Value: str("Academia"), Type: "text", Group: "general", IsPublic: &pub})
	_, _ = e.uc.SettingCreate(ctx, SettingCreateInput{Key: "site.secret", Value: str("x"), Type: "text", Group: "general"})

	// Act
	got, err := e.uc.PublicSettingsByGroup(ctx, "general")

	// Assert
	if err != nil || len(got) != 1 || got[0].Key != "site.name" {
		t.Fatalf("PublicSettingsByGroup() = %+v, %v", got, err)
	}
}

func TestSettingUpdate_RenameReencrypts(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	created, _ := e.uc.SettingCreate(ctx, SettingCreateInput{Key: "smtp.username", Value: str("mailer"), Type: "text", Group: "smtp"})

	// Act
	renamed, err := e.uc.SettingUpdate(ctx, SettingUpdateInput{ID: created.ID, Key: str("smtp.password")})
	plainAgain, errPlain := e.uc.SettingUpdate(ctx, SettingUpdateInput{ID: created.ID, Key: str("smtp.user_label")})

	// Assert
	if err != nil || *renamed.Value != "mailer" {
		t.Fatalf("rename = %+v, %v", renamed, err)
	}
	if errPlain != nil || *plainAgain.Value != "mailer" || *e.repo.settings[created.ID].Value != "mailer" {
		t.Fatalf("rename to plain key = %+v, %v", plainAgain, errPlain)
	}
}

func TestSettingUpdateDelete_NotFound(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, errUpdate := e.uc.SettingUpdate(ctx, SettingUpdateInput{ID: 404, Value: str("x")})
	errDelete := e.uc.SettingDelete(ctx, 404)

	assertCode(t, errUpdate, goerror.CodeNotFound)
	assertCode(t, errDelete, goerror.CodeNotFound)
}

func TestResolveSMTP(t *testing.T) {
	// Arrange
	e := newEnv(t)
	ctx := context.Background()
	for _, in := range []SettingCreateInput{
		{Key: "smtp.host", Value: str("smtp.academy.test"), Type: "text", Group: "smtp"},
		{Key: "smtp.port", Value: str("465"), Type: "number", Group: "smtp"},
		{Key: "smtp.password", Value: str("s3cret"), Type: "text", Group: "smtp"},
		{Key: "smtp.encryption", Value: str("ssl"), Type: "text", Group: "smtp"},
		{Key: "smtp.recipient_address", Value: str(" "), Type: "text", Group: "smtp"},
	} {
		if _, err := e.uc.SettingCreate(ctx, in); err != nil {
			t.Fatalf("seed %s: %v", in.Key, err)
		}
	}

	// Act
	got, err := e.uc.ResolveSMTP(ctx)

	// Assert
	if err != nil {
		t.Fatalf("ResolveSMTP() error = %v", err)
	}
	if got.Host != "smtp.academy.test" || got.Port != 465 || got.Password != "s3cret" || got.Encryption != "ssl" {
		t.Fatalf("settings not applied: %+v", got)
	}
	if got.From != "config@example.com" || got.FromName != "Config Sender" || got.Recipient != "config@example.com" {
		t.Fatalf("config fallbacks not applied: %+v", got)
	}
}

func TestResolveSMTP_RepoFailure(t *testing.T) {
	e := newEnv(t)
	cause := errors.New("db down")
	e.repo.failList = cause

	_, err := e.uc.ResolveSMTP(context.Background())

	if !errors.Is(err, cause) {
		t.Fatalf("ResolveSMTP() error = %v", err)
	}
}
