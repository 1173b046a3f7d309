package goroutine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestManager_GoCollectsErrors(t *testing.T) {
	// Arrange
	m := NewManager(2)
	boom := errors.New("consumer stopped")

	// Act
	m.Go(context.Background(), func(context.Context) error { return boom })
	m.Go(context.Background(), func(context.Context) error { return context.Canceled })
	err := m.Wait()

	// Assert
	if !errors.Is(err, boom) {
		t.Fatalf("Wait() error = %v, want %v", err, boom)
	}
	if errors.Is(err, context.Canceled) {
		t.Fatalf("Wait() error = %v, canceled tasks should not be reported", err)
	}
}

func TestManager_GoRecoversPanic(t *testing.T) {
	m := NewManager(1)

	m.Go(context.Background(), func(context.Context) error { panic("boom") })

	if err := m.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
}

func TestManager_GoAfterWaitIsSkipped(t *testing.T) {
	m := NewManager(1)
	_ = m.Wait()

	var ran atomic.Bool
	m.Go(context.Background(), func(context.Context) error { ran.Store(true); return nil })

	if ran.Load() {
		t.Fatal("task ran after Wait")
	}
}

func TestManager_Every(t *testing.T) {
	// Arrange
	m := NewManager(1)
	ctx, cancel := context.WithCancel(context.Background())
	var runs atomic.Int32

	// Act
	m.Every(ctx, "otp-cleanup", 5*time.Millisecond, func(context.Context) error {
		if runs.Add(1) == 1 {
			return errors.New("first sweep failed")
		}
		return nil
	})
	deadline := time.Now().Add(time.Second)
	for runs.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	cancel()

	// Assert
	if err := m.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if runs.Load() < 3 {
		t.Fatalf("runs = %d, want >= 3", runs.Load())
	}
}

func TestManager_GoReportsFullSlots(t *testing.T) {
	// Arrange
	m := NewManager(1)
	release := make(chan struct{})

	// Act
	first := m.Go(context.Background(), func(context.Context) error { <-release; return nil })
	second := m.Go(context.Background(), func(context.Context) error { return nil })
	close(release)

	// Assert
	if !first || second {
		t.Fatalf("Go() = %v, %v, want true, false", first, second)
	}
	if err := m.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
}
