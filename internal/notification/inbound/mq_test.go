package inbound

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shandysiswandi/academia/internal/notification/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/config"
	"github.com/shandysiswandi/academia/internal/pkg/goroutine"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/messaging"
	"github.com/shandysiswandi/academia/internal/shared/event"
)

type chanConsumer struct {
	submitted chan usecase.ConsumeApplicationSubmittedInput
	changed   chan usecase.ConsumeCredentialChangedInput
}

func (c *chanConsumer) ConsumeApplicationSubmitted(_ context.Context, in usecase.ConsumeApplicationSubmittedInput) error {
	c.submitted <- in
	return nil
}

func (c *chanConsumer) ConsumeCredentialChanged(_ context.Context, in usecase.ConsumeCredentialChangedInput) error {
	c.changed <- in
	return nil
}

func TestRegisterMQConsumer_OnlyEnabledConsumersRun(t *testing.T) {
	// Arrange
	cfg, err := config.NewViperFromBytes("yaml", []byte("modules:\n  notification:\n    consumer_names: [\"application.submitted\"]\n"))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	broker := messaging.NewMemory(16)
	routine := goroutine.NewManager(4)
	uc := &chanConsumer{
		submitted: make(chan usecase.ConsumeApplicationSubmittedInput, 16),
		changed:   make(chan usecase.ConsumeCredentialChangedInput, 16),
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		_ = routine.Wait()
	})

	submitted, _ := json.Marshal(event.ApplicationSubmittedMessage{SubmissionID: 9, FormType: "contact", FullName: "Ada", Email: "ada@x.com"})
	changed, _ := json.Marshal(event.AdminCredentialChangedMessage{AdminID: 1, Email: "a@x.com", Change: "password_change"})

	// Act
	RegisterMQConsumer(ctx, cfg, routine, broker, fixedID("generated"), uc, instrument.NewNoop())

	// Assert
	deadline := time.After(3 * time.Second)
	tick := time.NewTicker(20 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case got := <-uc.submitted:
			if got.SubmissionID != 9 {
				t.Fatalf("consumed = %+v", got)
			}
			_ = broker.Publish(ctx, event.AdminCredentialChangedDestination, messaging.OutgoingMessage{Body: changed})
			select {
			case c := <-uc.changed:
				t.Fatalf("disabled consumer ran: %+v", c)
			case <-time.After(100 * time.Millisecond):
			}
			return
		case <-tick.C:
			// messages published before the consumer subscribes are dropped
			_ = broker.Publish(ctx, event.ApplicationSubmittedDestination, messaging.OutgoingMessage{Body: submitted})
		case <-deadline:
			t.Fatal("consumer never received the message")
		}
	}
}
