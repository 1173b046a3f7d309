package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sethvargo/go-retry"
)

// ErrNATSURLRequired is returned when the NATS server URL is missing.
var ErrNATSURLRequired = errors.New("messaging: nats url is required")

// NATSConfig configures the NATS implementation.
type NATSConfig struct {
	URL     string
	Options []nats.Option
	// ConnectAttempts bounds the initial dial retries. Zero means a single attempt.
	ConnectAttempts uint64
}

// NATS is a messaging implementation backed by core NATS. Nack is a no-op
// because core NATS has no redelivery.
type NATS struct {
	conn *nats.Conn
}

// NewNATS dials the server, retrying with a capped fibonacci backoff.
func NewNATS(ctx context.Context, cfg NATSConfig) (*NATS, error) {
	if cfg.URL == "" {
		return nil, ErrNATSURLRequired
	}

	b := retry.WithMaxRetries(cfg.ConnectAttempts, retry.NewFibonacci(200*time.Millisecond))
	b = retry.WithCappedDuration(5*time.Second, b)

	var conn *nats.Conn
	err := retry.Do(ctx, b, func(context.Context) error {
		c, err := nats.Connect(cfg.URL, cfg.Options...)
		if err != nil {
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("messaging: nats connect: %w", err)
	}

	return &NATS{conn: conn}, nil
}

// Close drains pending messages and closes the connection.
func (n *NATS) Close() error {
	if n.conn.IsClosed() {
		return nil
	}
	return n.conn.Drain()
}

// Publish sends msg to a subject and flushes the connection.
func (n *NATS) Publish(ctx context.Context, destination string, msg OutgoingMessage) error {
	if destination == "" {
		return ErrDestinationRequired
	}
	if n.conn.IsClosed() {
		return ErrClosed
	}

	nm := nats.NewMsg(destination)
	nm.Data = msg.Body
	for _, h := range msg.Headers {
		if h.Key != "" {
			nm.Header.Add(h.Key, string(h.Value))
		}
	}

	if err := n.conn.PublishMsg(nm); err != nil {
		return fmt.Errorf("messaging: nats publish: %w", err)
	}
	if err := n.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("messaging: nats flush: %w", err)
	}
	return nil
}

// Consume queue-subscribes to source until ctx is done.
func (n *NATS) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if source == "" {
		return ErrDestinationRequired
	}
	if handler == nil {
		return ErrHandlerRequired
	}

	co := newConsumeOptions(opts...)
	in := make(chan *nats.Msg, co.concurrency)

	sub, err := n.conn.ChanQueueSubscribe(source, co.queueGroup, in)
	if err != nil {
		return fmt.Errorf("messaging: nats subscribe: %w", err)
	}
	if co.maxInFlight > 0 {
		if err := sub.SetPendingLimits(co.maxInFlight, -1); err != nil {
			return errors.Join(fmt.Errorf("messaging: nats pending limits: %w", err), sub.Unsubscribe())
		}
	}

	werr := runWorkers(ctx, co.concurrency, in, func(ctx context.Context, nm *nats.Msg) error {
		return dispatch(ctx, "nats", handler, natsMessage(nm), co.autoAck)
	})

	return errors.Join(werr, ctx.Err(), sub.Unsubscribe())
}

func natsMessage(nm *nats.Msg) *message {
	var headers []Header
	for k, vals := range nm.Header {
		for _, v := range vals {
			headers = append(headers, Header{Key: k, Value: []byte(v)})
		}
	}

	m := &message{
		id:      nm.Header.Get(nats.MsgIdHdr),
		body:    nm.Data,
		headers: headers,
	}
	if nm.Reply != "" {
		m.ack = func(context.Context) error { return nm.Respond(nil) }
	}
	return m
}
