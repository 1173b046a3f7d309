package mq

import (
	"context"
	"encoding/json"

	"github.com/shandysiswandi/academia/internal/admin/usecase"
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

func (m *Messaging) PublishCredentialChanged(ctx context.Context, msg usecase.CredentialChangedEvent) error {
	ctx, span := m.ins.Tracer("admin.outbound.mq").Start(ctx, "PublishCredentialChanged")
	defer span.End()

	body, err := json.Marshal(event.AdminCredentialChangedMessage{
		AdminID: msg.AdminID,
		Email:   msg.Email,
		Change:  msg.Change,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if err := m.client.Publish(ctx, event.AdminCredentialChangedDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
