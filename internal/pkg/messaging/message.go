package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/shandysiswandi/academia/internal/pkg/stacktrace"
)

type message struct {
	id      string
	body    []byte
	headers []Header
	ack     func(ctx context.Context) error
	nack    func(ctx context.Context) error

	responded atomic.Bool
}

func (m *message) ID() string        { return m.id }
func (m *message) Body() []byte      { return m.body }
func (m *message) Headers() []Header { return m.headers }

func (m *message) Ack(ctx context.Context) error {
	if m.responded.Swap(true) || m.ack == nil {
		return nil
	}
	return m.ack(ctx)
}

func (m *message) Nack(ctx context.Context) error {
	if m.responded.Swap(true) || m.nack == nil {
		return nil
	}
	return m.nack(ctx)
}

// dispatch runs handler with panic recovery and applies auto-ack.
func dispatch(ctx context.Context, kind string, handler Handler, m *message, autoAck bool) error {
	herr := callHandlerWithRecover(ctx, kind, func() error {
		return handler(ctx, m)
	})

	if !autoAck || m.responded.Load() {
		return nil
	}
	if herr == nil {
		return m.Ack(ctx)
	}
	return m.Nack(ctx)
}

// runWorkers drains in with n goroutines and stops all of them on the first
// error returned by fn.
func runWorkers[T any](ctx context.Context, n int, in <-chan T, fn func(context.Context, T) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-in:
					if !ok {
						return
					}
					if err := fn(ctx, item); err != nil {
						select {
						case errCh <- err:
						default:
						}
						cancel()
						return
					}
				}
			}
		}()
	}
	wg.Wait()

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

func callHandlerWithRecover(ctx context.Context, kind string, fn func() error) (err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			stack := debug.Stack()
			if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
				slog.ErrorContext(ctx, "panic in messaging handler", "kind", kind, "panic", rvr, "stack", paths)
			} else {
				slog.ErrorContext(ctx, "panic in messaging handler", "kind", kind, "panic", rvr, "stack", string(stack))
			}
			err = fmt.Errorf("messaging: panic in %s handler: %v", kind, rvr)
		}
	}()

	return fn()
}
