package mq

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/shandysiswandi/academia/internal/application/entity"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/messaging"
	"github.com/shandysiswandi/academia/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Publisher
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Publisher, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func (m *Messaging) PublishSubmitted(ctx context.Context, sub entity.Submission) error {
	ctx, span := m.ins.Tracer("application.outbound.mq").Start(ctx, "PublishSubmitted")
	defer span.End()

	body, err := json.Marshal(event.ApplicationSubmittedMessage{
		SubmissionID: sub.ID,
		FormType:     sub.FormType,
		FullName:     sub.FullName,
		Email:        sub.Email,
		Phone:        deref(sub.Phone),
		Title:        deref(sub.Title),
		Payload:      sub.Payload,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if err := m.client.Publish(ctx, event.ApplicationSubmittedDestination, messaging.OutgoingMessage{
		Body:    body,
		Key:     []byte(strconv.FormatInt(sub.ID, 10)),
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
