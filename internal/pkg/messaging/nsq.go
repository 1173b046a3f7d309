package messaging

import (
	"context"
	"errors"
	"fmt"

	nsq "github.com/nsqio/go-nsq"
)

var (
	// ErrNSQChannelRequired is returned when Consume is called without a channel.
	ErrNSQChannelRequired = errors.New("messaging: nsq channel is required")
	// ErrNSQProducerAddrRequired is returned when the producer address is missing.
	ErrNSQProducerAddrRequired = errors.New("messaging: nsq producer address is required")
	// ErrNSQConsumerAddrsRequired is returned when no nsqd or lookupd address is configured.
	ErrNSQConsumerAddrsRequired = errors.New("messaging: nsq consumer nsqd/lookupd addresses are required")
)

// NSQConfig configures the NSQ implementation.
type NSQConfig struct {
	ProducerAddr         string
	ConsumerNSQDAddrs    []string
	ConsumerLookupdAddrs []string
	ProducerConfig       *nsq.Config
	ConsumerConfig       *nsq.Config
}

// NSQ is a messaging implementation backed by NSQ. NSQ frames carry no
// headers, so OutgoingMessage.Headers are dropped.
type NSQ struct {
	cfg      NSQConfig
	producer *nsq.Producer
}

// NewNSQ constructs an NSQ client.
func NewNSQ(cfg NSQConfig) (*NSQ, error) {
	if cfg.ProducerAddr == "" {
		return nil, ErrNSQProducerAddrRequired
	}
	if cfg.ProducerConfig == nil {
		cfg.ProducerConfig = nsq.NewConfig()
	}
	if cfg.ConsumerConfig == nil {
		cfg.ConsumerConfig = nsq.NewConfig()
	}

	p, err := nsq.NewProducer(cfg.ProducerAddr, cfg.ProducerConfig)
	if err != nil {
		return nil, fmt.Errorf("messaging: nsq new producer: %w", err)
	}
	p.SetLoggerLevel(nsq.LogLevelError)

	return &NSQ{cfg: cfg, producer: p}, nil
}

// Close stops the producer.
func (n *NSQ) Close() error {
	n.producer.Stop()
	return nil
}

// Publish sends msg.Body to an NSQ topic.
func (n *NSQ) Publish(_ context.Context, destination string, msg OutgoingMessage) error {
	if destination == "" {
		return ErrDestinationRequired
	}
	if err := n.producer.Publish(destination, msg.Body); err != nil {
		return fmt.Errorf("messaging: nsq publish: %w", err)
	}
	return nil
}

// Consume reads source on the configured channel until ctx is done. Nack
// requeues with the consumer's default delay.
func (n *NSQ) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	co := newConsumeOptions(opts...)
	switch {
	case source == "":
		return ErrDestinationRequired
	case handler == nil:
		return ErrHandlerRequired
	case co.channel == "":
		return ErrNSQChannelRequired
	case len(n.cfg.ConsumerNSQDAddrs) == 0 && len(n.cfg.ConsumerLookupdAddrs) == 0:
		return ErrNSQConsumerAddrsRequired
	}

	ccfg := *n.cfg.ConsumerConfig
	if co.maxInFlight > 0 {
		ccfg.MaxInFlight = co.maxInFlight
	}
	if ccfg.MaxInFlight < co.concurrency {
		ccfg.MaxInFlight = co.concurrency
	}

	consumer, err := nsq.NewConsumer(source, co.channel, &ccfg)
	if err != nil {
		return fmt.Errorf("messaging: nsq new consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelError)
	consumer.AddConcurrentHandlers(nsq.HandlerFunc(func(nm *nsq.Message) error {
		nm.DisableAutoResponse()
		return dispatch(ctx, "nsq", handler, nsqMessage(nm), co.autoAck)
	}), co.concurrency)

	if len(n.cfg.ConsumerLookupdAddrs) > 0 {
		err = consumer.ConnectToNSQLookupds(n.cfg.ConsumerLookupdAddrs)
	} else {
		err = consumer.ConnectToNSQDs(n.cfg.ConsumerNSQDAddrs)
	}
	if err != nil {
		consumer.Stop()
		<-consumer.StopChan
		return fmt.Errorf("messaging: nsq connect: %w", err)
	}

	select {
	case <-ctx.Done():
		consumer.Stop()
		<-consumer.StopChan
		return ctx.Err()
	case <-consumer.StopChan:
		return nil
	}
}

func nsqMessage(nm *nsq.Message) *message {
	return &message{
		id:   string(nm.ID[:]),
		body: nm.Body,
		ack: func(context.Context) error {
			nm.Finish()
			return nil
		},
		nack: func(context.Context) error {
			nm.Requeue(-1)
			return nil
		},
	}
}
