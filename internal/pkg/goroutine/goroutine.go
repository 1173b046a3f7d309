// Package goroutine runs background work, such as queue consumers and
// periodic sweeps, under a shared concurrency limit that the app drains on
// shutdown.
package goroutine

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"
	"time"

	"github.com/shandysiswandi/academia/internal/pkg/stacktrace"
)

// DefaultMaxGoroutine is multiplied by the CPU count when NewManager
// receives a non-positive limit.
const DefaultMaxGoroutine int = 100

// Manager bounds the number of running tasks and collects their errors.
type Manager struct {
	slots chan struct{}
	wg    sync.WaitGroup

	// guards closed against a concurrent wg.Add in Go
	lifecycle sync.RWMutex
	closed    bool

	errMu sync.Mutex
	errs  []error
}

// NewManager returns a Manager that runs at most maxGoroutine tasks at once.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = runtime.NumCPU() * DefaultMaxGoroutine
	}
	return &Manager{slots: make(chan struct{}, maxGoroutine)}
}

// Go runs f on a new goroutine and reports whether it was scheduled. Nothing
// is scheduled once Wait has been called or when every slot is taken.
// A task returning context.Canceled is not treated as a failure.
func (g *Manager) Go(ctx context.Context, f func(ctx context.Context) error) bool {
	if g == nil {
		return false
	}

	g.lifecycle.RLock()
	defer g.lifecycle.RUnlock()

	if g.closed {
		slog.WarnContext(ctx, "goroutine manager closed, task skipped")
		return false
	}

	select {
	case g.slots <- struct{}{}:
	default:
		slog.WarnContext(ctx, "goroutine limit reached, task skipped", "limit", cap(g.slots))
		return false
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() { <-g.slots }()
		defer g.recoverTask(ctx)

		if ctx.Err() != nil {
			return
		}
		if err := f(ctx); err != nil && !errors.Is(err, context.Canceled) {
			g.errMu.Lock()
			g.errs = append(g.errs, err)
			g.errMu.Unlock()
		}
	}()

	return true
}

func (g *Manager) recoverTask(ctx context.Context) {
	rvr := recover()
	if rvr == nil {
		return
	}

	stack := debug.Stack()
	if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
		slog.ErrorContext(ctx, "background task panicked", "panic", rvr, "stack", paths)
		return
	}
	slog.ErrorContext(ctx, "background task panicked", "panic", rvr, "stack", string(stack))
}

// Every runs f every interval until ctx is done. A failing run is logged
// under name and the schedule continues.
func (g *Manager) Every(ctx context.Context, name string, interval time.Duration, f func(ctx context.Context) error) bool {
	return g.Go(ctx, func(ctx context.Context) error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if err := f(ctx); err != nil && !errors.Is(err, context.Canceled) {
					slog.ErrorContext(ctx, "scheduled job failed", "job", name, "error", err)
				}
			}
		}
	})
}

// Wait stops accepting tasks, blocks until the running ones return and
// joins their errors.
func (g *Manager) Wait() error {
	if g == nil {
		return nil
	}

	g.lifecycle.Lock()
	g.closed = true
	g.lifecycle.Unlock()

	g.wg.Wait()

	g.errMu.Lock()
	defer g.errMu.Unlock()
	return errors.Join(g.errs...)
}
