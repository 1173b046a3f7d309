package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/academia/internal/academic"
	"github.com/shandysiswandi/academia/internal/admin"
	"github.com/shandysiswandi/academia/internal/application"
	"github.com/shandysiswandi/academia/internal/career"
	"github.com/shandysiswandi/academia/internal/directory"
	"github.com/shandysiswandi/academia/internal/notification"
	"github.com/shandysiswandi/academia/internal/setting"
)

func (a *App) initModules() {
	if err := admin.New(admin.Dependency{
		Ctx:        a.ctx,
		DBConn:     a.dbConn,
		CacheConn:  a.cacheConn,
		Goroutine:  a.goroutine,
		Router:     a.router,
		Messaging:  a.messaging,
		Mail:       a.mail,
		Config:     a.config,
		Instrument: a.ins,
		UID:        a.uid,
		ULID:       a.ulid,
		Bcrypt:     a.bcrypt,
		OTPCode:    a.otpCode,
		Clock:      a.clock,
		Validator:  a.validator,
		JWT:        a.jwt,
	}); err != nil {
		slog.Error("failed to init module admin", "error", err)
		os.Exit(1)
	}

	if err := setting.New(setting.Dependency{
		DBConn:     a.dbConn,
		Router:     a.router,
		Cipher:     a.cipher,
		Config:     a.config,
		Instrument: a.ins,
		UID:        a.uid,
		Validator:  a.validator,
	}); err != nil {
		slog.Error("failed to init module setting", "error", err)
		os.Exit(1)
	}

	if err := academic.New(academic.Dependency{
		DBConn:     a.dbConn,
		Router:     a.router,
		Storage:    a.storage,
		Instrument: a.ins,
		UID:        a.uid,
		ObjectID:   a.ulid,
		Validator:  a.validator,
	}); err != nil {
		slog.Error("failed to init module academic", "error", err)
		os.Exit(1)
	}

	if err := directory.New(directory.Dependency{
		DBConn:     a.dbConn,
		Router:     a.router,
		Storage:    a.storage,
		Config:     a.config,
		Instrument: a.ins,
		UID:        a.uid,
		ObjectID:   a.ulid,
		Validator:  a.validator,
	}); err != nil {
		slog.Error("failed to init module directory", "error", err)
		os.Exit(1)
	}

	if err := career.New(career.Dependency{
		DBConn:     a.dbConn,
		Router:     a.router,
		Clock:      a.clock,
		Instrument: a.ins,
		UID:        a.uid,
		Validator:  a.validator,
	}); err != nil {
		slog.Error("failed to init module career", "error", err)
		os.Exit(1)
	}

	if err := application.New(application.Dependency{
		DBConn:      a.dbConn,
		Router:      a.router,
		Messaging:   a.messaging,
		Idempotency: a.idemp,
		Clock:       a.clock,
		Instrument:  a.ins,
		UID:         a.uid,
		Validator:   a.validator,
	}); err != nil {
		slog.Error("failed to init module application", "error", err)
		os.Exit(1)
	}

	if a.config.GetBool("modules.notification.enabled") {
		if err := notification.New(notification.Dependency{
			Ctx:        a.ctx,
			DBConn:     a.dbConn,
			Messaging:  a.messaging,
			Mail:       a.mail,
			Recipient:  a.recipient,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			UUID:       a.uuid,
			Clock:      a.clock,
			Goroutine:  a.goroutine,
			Validator:  a.validator,
			Router:     a.router,
		}); err != nil {
			slog.Error("failed to init module notification", "error", err)
			os.Exit(1)
		}
	}
}
