package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cloud.google.com/go/pubsub/v2"
	"google.golang.org/api/option"
)

var (
	// ErrPubSubProjectIDRequired is returned when the project id is missing.
	ErrPubSubProjectIDRequired = errors.New("messaging: pubsub project id is required")
	// ErrPubSubSubscriptionRequired is returned when Consume is called without a subscription.
	ErrPubSubSubscriptionRequired = errors.New("messaging: pubsub subscription is required")
)

// PubSubConfig configures the Google Pub/Sub implementation.
type PubSubConfig struct {
	ProjectID     string
	ClientOptions []option.ClientOption
}

// PubSub is a messaging implementation backed by Google Pub/Sub. Headers map
// to message attributes.
type PubSub struct {
	client *pubsub.Client

	mu         sync.Mutex
	publishers map[string]*pubsub.Publisher
	closed     bool
}

// NewPubSub constructs a Pub/Sub client.
func NewPubSub(ctx context.Context, cfg PubSubConfig) (*PubSub, error) {
	if cfg.ProjectID == "" {
		return nil, ErrPubSubProjectIDRequired
	}

	c, err := pubsub.NewClient(ctx, cfg.ProjectID, cfg.ClientOptions...)
	if err != nil {
		return nil, fmt.Errorf("messaging: pubsub new client: %w", err)
	}

	return &PubSub{client: c, publishers: map[string]*pubsub.Publisher{}}, nil
}

// Close stops publishers and closes the client.
func (p *PubSub) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	for _, pub := range p.publishers {
		pub.Stop()
	}
	p.publishers = nil
	return p.client.Close()
}

// Publish sends msg to a topic and waits for the server id.
func (p *PubSub) Publish(ctx context.Context, destination string, msg OutgoingMessage) error {
	if destination == "" {
		return ErrDestinationRequired
	}

	pub, err := p.publisher(destination)
	if err != nil {
		return err
	}

	attrs := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		if h.Key != "" {
			attrs[h.Key] = string(h.Value)
		}
	}

	if _, err := pub.Publish(ctx, &pubsub.Message{Data: msg.Body, Attributes: attrs}).Get(ctx); err != nil {
		return fmt.Errorf("messaging: pubsub publish: %w", err)
	}
	return nil
}

// Consume receives from the subscription set by WithSubscription until ctx
// is done. source names the topic for logging only.
func (p *PubSub) Consume(ctx context.Context, _ string, handler Handler, opts ...ConsumeOption) error {
	co := newConsumeOptions(opts...)
	if handler == nil {
		return ErrHandlerRequired
	}
	if co.subscription == "" {
		return ErrPubSubSubscriptionRequired
	}

	sub := p.client.Subscriber(co.subscription)
	sub.ReceiveSettings.NumGoroutines = co.concurrency
	if co.maxInFlight > 0 {
		sub.ReceiveSettings.MaxOutstandingMessages = co.maxInFlight
	}

	return sub.Receive(ctx, func(ctx context.Context, pm *pubsub.Message) {
		//nolint:errcheck // ack/nack errors are not returned by the pubsub client
		_ = dispatch(ctx, "pubsub", handler, pubsubMessage(pm), co.autoAck)
	})
}

func (p *PubSub) publisher(topic string) (*pubsub.Publisher, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrClosed
	}
	if pub, ok := p.publishers[topic]; ok {
		return pub, nil
	}
	pub := p.client.Publisher(topic)
	p.publishers[topic] = pub
	return pub, nil
}

func pubsubMessage(pm *pubsub.Message) *message {
	headers := make([]Header, 0, len(pm.Attributes))
	for k, v := range pm.Attributes {
		headers = append(headers, Header{Key: k, Value: []byte(v)})
	}

	return &message{
		id:      pm.ID,
		body:    pm.Data,
		headers: headers,
		ack: func(context.Context) error {
			pm.Ack()
			return nil
		},
		nack: func(context.Context) error {
			pm.Nack()
			return nil
		},
	}
}
