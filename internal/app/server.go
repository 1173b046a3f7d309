package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

// Run serves HTTP until ctx is done, SIGINT/SIGTERM arrives or the listener
// fails, then shuts everything down within shutdownTimeout.
func (a *App) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "address", a.httpServer.Addr, "docs", "/api/docs/openapi.json")
		if err := a.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("shutdown requested")
	case err, ok := <-listenErr:
		if ok {
			runErr = fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	a.Stop(shutdownCtx)

	return runErr
}

// Stop cancels in-flight work, drains the HTTP server and background
// goroutines, then releases resources in registration order.
func (a *App) Stop(ctx context.Context) {
	// ends notification streams, which otherwise keep Shutdown waiting
	a.cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "http server shutdown", "error", err)
	}

	if err := a.goroutine.Wait(); err != nil {
		slog.ErrorContext(ctx, "background task failed", "error", err)
	}

	for _, closer := range a.closers {
		if err := closer.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resource", "name", closer.name, "error", err)
		}
	}

	slog.InfoContext(ctx, "application stopped")
}
