package app

import (
	"context"
	"net/http"

	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/academia/internal/pkg/clock"
	"github.com/shandysiswandi/academia/internal/pkg/config"
	"github.com/shandysiswandi/academia/internal/pkg/goroutine"
	"github.com/shandysiswandi/academia/internal/pkg/hash"
	"github.com/shandysiswandi/academia/internal/pkg/idempotency"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/jwt"
	"github.com/shandysiswandi/academia/internal/pkg/mail"
	"github.com/shandysiswandi/academia/internal/pkg/messaging"
	"github.com/shandysiswandi/academia/internal/pkg/otp"
	"github.com/shandysiswandi/academia/internal/pkg/router"
	"github.com/shandysiswandi/academia/internal/pkg/secret"
	"github.com/shandysiswandi/academia/internal/pkg/storage"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	uid       uid.NumberID
	ulid      uid.StringID
	uuid      uid.StringID
	otpCode   otp.Generator
	jwt       jwt.JWT
	cipher    secret.Cipher

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	mail      mail.Mail
	recipient string
	messaging messaging.Messaging
	storage   storage.Storage
	casbin    *casbin.Enforcer

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initCipher()
	app.initMail()
	app.initStorage()
	app.initMessaging()
	app.initCasbin()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
