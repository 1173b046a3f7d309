package admin

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/academia/internal/admin/inbound"
	"github.com/shandysiswandi/academia/internal/admin/outbound/cache"
	"github.com/shandysiswandi/academia/internal/admin/outbound/db"
	"github.com/shandysiswandi/academia/internal/admin/outbound/email"
	"github.com/shandysiswandi/academia/internal/admin/outbound/mq"
	"github.com/shandysiswandi/academia/internal/admin/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/clock"
	"github.com/shandysiswandi/academia/internal/pkg/config"
	"github.com/shandysiswandi/academia/internal/pkg/goroutine"
	"github.com/shandysiswandi/academia/internal/pkg/hash"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/jwt"
	"github.com/shandysiswandi/academia/internal/pkg/mail"
	"github.com/shandysiswandi/academia/internal/pkg/messaging"
	"github.com/shandysiswandi/academia/internal/pkg/otp"
	"github.com/shandysiswandi/academia/internal/pkg/router"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
)

const defaultCleanupInterval = time.Minute

type Dependency struct {
	Ctx        context.Context            `validate:"required"`
	DBConn     *pgxpool.Pool              `validate:"required"`
	CacheConn  redis.UniversalClient      `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	ULID       uid.StringID               `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	OTPCode    otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAdmin := db.NewDB(dep.DBConn, dep.Instrument)
	repoCache := cache.NewLimiter(dep.CacheConn, dep.Instrument, cache.LimiterConfig{
		Cooldown: dep.Config.GetSecond("modules.admin.otp.cooldown_seconds"),
		Window:   dep.Config.GetMinute("modules.admin.otp.window_minutes"),
		Max:      dep.Config.GetInt("modules.admin.otp.max_per_window"),
	})
	repoMail := email.New(dep.Mail, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	otpService := usecase.NewOTP(usecase.OTPDependency{
		Store:      dbAdmin,
		Code:       dep.OTPCode,
		Hash:       dep.Bcrypt,
		ULID:       dep.ULID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbAdmin,
		RepoCache:     repoCache,
		RepoMail:      repoMail,
		RepoMessaging: repoMsg,
		OTP:           otpService,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Bcrypt:        dep.Bcrypt,
		UID:           dep.UID,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
	})

	dep.Router.SetAccountGuard(uc.ResolveAccount)
	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	interval := dep.Config.GetSecond("modules.admin.otp.cleanup_interval_seconds")
	if interval <= 0 {
		interval = defaultCleanupInterval
	}
	dep.Goroutine.Every(dep.Ctx, "admin.otp_cleanup", interval, uc.CleanupOTP)

	return nil
}
