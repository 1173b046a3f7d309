package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shandysiswandi/academia/internal/pkg/config"
	"github.com/shandysiswandi/academia/internal/pkg/goroutine"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/messaging"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/shared/event"
)

// RegisterMQConsumer starts one goroutine per enabled consumer. It returns
// immediately; consumers stop when ctx is done.
func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Consumer,
	uuid uid.StringID,
	uc ucConsumer,
	ins instrument.Instrumentation,
) {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enableConsumerNames := cfg.GetArray("modules.notification.consumer_names")

	var consumers = []struct {
		name               string
		topic              string // destination where publisher sent message
		nsqConsumerName    string // for nsq
		natsConsumerName   string // for nats
		kafkaConsumerName  string // for kafka
		pubsubConsumerName string // for google pubusb
		handler            messaging.Handler
	}{
		{
			name:               event.ApplicationSubmittedDestination,
			topic:              event.ApplicationSubmittedDestination,
			nsqConsumerName:    event.ApplicationSubmittedConsumerNotification,
			natsConsumerName:   event.ApplicationSubmittedConsumerNotification,
			kafkaConsumerName:  event.ApplicationSubmittedConsumerNotification,
			pubsubConsumerName: event.ApplicationSubmittedDestination + "." + event.ApplicationSubmittedConsumerNotification,
			handler:            mqHandler.ApplicationSubmitted,
		},
		{
			name:               event.AdminCredentialChangedDestination,
			topic:              event.AdminCredentialChangedDestination,
			nsqConsumerName:    event.AdminCredentialChangedConsumerNotification,
			natsConsumerName:   event.AdminCredentialChangedConsumerNotification,
			kafkaConsumerName:  event.AdminCredentialChangedConsumerNotification,
			pubsubConsumerName: event.AdminCredentialChangedDestination + "." + event.AdminCredentialChangedConsumerNotification,
			handler:            mqHandler.CredentialChanged,
		},
	}

	for _, consumer := range consumers {
		// an empty list enables every consumer
		if len(enableConsumerNames) == 0 || slices.Contains(enableConsumerNames, consumer.name) {
			routine.Go(ctx, func(pCtx context.Context) error {
				slog.InfoContext(ctx, "Running job for handling consumer", "consumer", consumer.name)
				return messenger.Consume(pCtx,
					consumer.topic,
					consumer.handler,
					messaging.WithChannel(consumer.nsqConsumerName),
					messaging.WithQueueGroup(consumer.natsConsumerName),
					messaging.WithGroup(consumer.kafkaConsumerName),
					messaging.WithSubscription(consumer.pubsubConsumerName),
					messaging.WithAutoAck(true),
					messaging.WithConcurrency(10),
					messaging.WithMaxInFlight(10),
				)
			})
		}
	}
}
