package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shandysiswandi/academia/internal/application/entity"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/messaging"
	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
	"github.com/shandysiswandi/academia/internal/shared/event"
)

type capture struct {
	destination string
	msg         messaging.OutgoingMessage
	err         error
}

func (c *capture) Publish(_ context.Context, destination string, msg messaging.OutgoingMessage) error {
	c.destination, c.msg = destination, msg
	return c.err
}

func TestMessaging_PublishSubmitted(t *testing.T) {
	// Arrange
	pub := &capture{}
	m := NewMessaging(pub, instrument.NewNoop())
	title := "Grade 10"

	// Act
	err := m.PublishSubmitted(context.Background(), entity.Submission{
		ID: 42, FormType: "admission", FullName: "Ada", Email: "ada@x.com", Title: &title,
		Payload: valueobject.JSONMap{"message": "hi"},
	})

	// Assert
	if err != nil || pub.destination != event.ApplicationSubmittedDestination || string(pub.msg.Key) != "42" {
		t.Fatalf("PublishSubmitted() = %v to %q", err, pub.destination)
	}
	var got event.ApplicationSubmittedMessage
	if err := json.Unmarshal(pub.msg.Body, &got); err != nil {
		t.Fatalf("body: %v", err)
	}
	if got.SubmissionID != 42 || got.Title != "Grade 10" || got.Phone != "" || got.Payload["message"] != "hi" {
		t.Fatalf("message = %+v", got)
	}
}

func TestMessaging_PublishSubmittedError(t *testing.T) {
	// Arrange
	m := NewMessaging(&capture{err: errors.New("broker down")}, instrument.NewNoop())

	// Act
	err := m.PublishSubmitted(context.Background(), entity.Submission{ID: 1})

	// Assert
	if err == nil {
		t.Fatal("expected publish error")
	}
}
