package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/academia/internal/admin/entity"
	"github.com/shandysiswandi/academia/internal/pkg/clock"
	"github.com/shandysiswandi/academia/internal/pkg/config"
	"github.com/shandysiswandi/academia/internal/pkg/hash"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/jwt"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type CredentialChangedEvent struct {
	AdminID int64
	Email   string
	Change  string
}

type OTPMail struct {
	To       string
	Code     string
	Context  entity.OtpContext
	TTL      time.Duration
	Metadata map[string]any
}

type repoDB interface {
	otpStore

	GetAdminByID(ctx context.Context, id int64) (*entity.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error)
	ListAdmins(ctx context.Context, filter entity.AdminListFilter) ([]entity.Admin, int64, error)
	IsEmailTaken(ctx context.Context, email string, exceptID int64) (bool, error)
	CreateAdmin(ctx context.Context, in entity.NewAdmin) error
	PatchAdmin(ctx context.Context, in entity.PatchAdmin) error
	DeleteAdmin(ctx context.Context, id int64) error

	// ApplyOtpCredential updates the admin row and deletes the consumed token in one transaction.
	ApplyOtpCredential(ctx context.Context, patch entity.PatchAdmin, tokenID string) error
	GetOtpTokenByContext(ctx context.Context, id string, oc entity.OtpContext) (*entity.OtpToken, error)
	DeleteOtpToken(ctx context.Context, id string) error
}

type repoCache interface {
	AllowOTP(ctx context.Context, email string, oc entity.OtpContext) (bool, error)
}

type repoMail interface {
	SendOTP(ctx context.Context, msg OTPMail) error
}

type repoMessaging interface {
	PublishCredentialChanged(ctx context.Context, msg CredentialChangedEvent) error
}

type Usecase struct {
	repoDB        repoDB
	repoCache     repoCache
	repoMail      repoMail
	repoMessaging repoMessaging
	otp           *OTP
	validator     validator.Validator
	cfg           config.Config
	bcrypt        hash.Hash
	uid           uid.NumberID
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoCache     repoCache
	RepoMail      repoMail
	RepoMessaging repoMessaging
	OTP           *OTP
	Validator     validator.Validator
	Config        config.Config
	Bcrypt        hash.Hash
	UID           uid.NumberID
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoCache:     dep.RepoCache,
		repoMail:      dep.RepoMail,
		repoMessaging: dep.RepoMessaging,
		otp:           dep.OTP,
		validator:     dep.Validator,
		cfg:           dep.Config,
		bcrypt:        dep.Bcrypt,
		uid:           dep.UID,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("admin.usecase").Start(ctx, name)
}

func (s *Usecase) otpTTL() time.Duration {
	if ttl := s.cfg.GetSecond("modules.admin.otp.ttl_seconds"); ttl > 0 {
		return ttl
	}
	return entity.OtpDefaultTTL
}
