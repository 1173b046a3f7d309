package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/academia/internal/pkg/config"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/secret"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
	"github.com/shandysiswandi/academia/internal/setting/entity"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	ListSettings(ctx context.Context, filter entity.SettingFilter) ([]entity.Setting, int64, error)
	ListSettingsByGroup(ctx context.Context, group string, publicOnly bool) ([]entity.Setting, error)
	GetSettingByID(ctx context.Context, id int64) (*entity.Setting, error)
	GetSettingByKey(ctx context.Context, key string) (*entity.Setting, error)
	CreateSetting(ctx context.Context, s entity.Setting) error
	UpdateSetting(ctx context.Context, s entity.Setting) error
	DeleteSetting(ctx context.Context, id int64) error
}

type Usecase struct {
	repoDB    repoDB
	cipher    secret.Cipher
	validator validator.Validator
	cfg       config.Config
	uid       uid.NumberID
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Cipher     secret.Cipher
	Validator  validator.Validator
	Config     config.Config
	UID        uid.NumberID
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		cipher:    dep.Cipher,
		validator: dep.Validator,
		cfg:       dep.Config,
		uid:       dep.UID,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("setting.usecase").Start(ctx, name)
}

// seal encrypts value when key is sensitive.
func (s *Usecase) seal(key string, value *string) (*string, error) {
	if value == nil || !entity.IsSensitiveKey(key) {
		return value, nil
	}

	enc, err := s.cipher.Encrypt(*value, key)
	if err != nil {
		return nil, err
	}

	return &enc, nil
}

// reveal decrypts a sensitive value in place. Legacy plaintext and values that
// fail to decrypt are left as stored.
func (s *Usecase) reveal(ctx context.Context, st *entity.Setting) {
	if st.Value == nil || !st.Sensitive() {
		return
	}

	if !secret.IsEncrypted(*st.Value) {
		slog.WarnContext(ctx, "sensitive setting stored as plaintext", "key", st.Key)
		return
	}

	plain, err := s.cipher.Decrypt(*st.Value, st.Key)
	if err != nil {
		slog.WarnContext(ctx, "failed to decrypt setting value", "key", st.Key, "error", err)
		return
	}

	st.Value = &plain
}
