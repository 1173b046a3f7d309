package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shandysiswandi/academia/internal/notification/usecase"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/messaging"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   ucConsumer
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for i := range headers {
		if headers[i].Key == keyOfCorrelationID && len(headers[i].Value) > 0 {
			return instrument.SetCorrelationID(ctx, string(headers[i].Value))
		}
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) ApplicationSubmitted(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "ApplicationSubmitted")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: application submitted", "msg_id", msg.ID())

	var payload event.ApplicationSubmittedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of application submitted", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeApplicationSubmitted(ctx, usecase.ConsumeApplicationSubmittedInput{
		SubmissionID: payload.SubmissionID,
		FormType:     payload.FormType,
		FullName:     payload.FullName,
		Email:        payload.Email,
		Phone:        payload.Phone,
		Title:        payload.Title,
		Payload:      payload.Payload,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume application submitted", "submission_id", payload.SubmissionID, "error", err)
		return err
	}

	return nil
}

func (h *MQHandler) CredentialChanged(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "CredentialChanged")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: admin credential changed", "msg_id", msg.ID())

	var payload event.AdminCredentialChangedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of admin credential changed", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeCredentialChanged(ctx, usecase.ConsumeCredentialChangedInput{
		AdminID: payload.AdminID,
		Email:   payload.Email,
		Change:  payload.Change,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume admin credential changed", "admin_id", payload.AdminID, "error", err)
		return err
	}

	return nil
}
