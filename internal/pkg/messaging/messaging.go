package messaging

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrDestinationRequired is returned when the topic/subject is empty.
	ErrDestinationRequired = errors.New("messaging: destination is required")
	// ErrHandlerRequired is returned when Consume is called with a nil handler.
	ErrHandlerRequired = errors.New("messaging: handler is required")
	// ErrClosed is returned when the client was closed.
	ErrClosed = errors.New("messaging: client is closed")
)

// Messaging is a broker-agnostic client that can publish and consume messages.
type Messaging interface {
	io.Closer

	Publisher
	Consumer
}

// Publisher publishes messages to a destination (topic/subject).
type Publisher interface {
	Publish(ctx context.Context, destination string, msg OutgoingMessage) error
}

// Consumer consumes messages until ctx is canceled.
type Consumer interface {
	Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error
}

// Handler processes a received message. With auto-ack enabled a nil error
// acks and a non-nil error nacks.
type Handler func(ctx context.Context, msg Message) error

// OutgoingMessage is a message to be published.
type OutgoingMessage struct {
	// Body is the message payload.
	Body []byte
	// Key is used by Kafka for partitioning.
	Key []byte
	// Headers travel as Kafka/NATS headers and Pub/Sub attributes. NSQ has no
	// header support and drops them.
	Headers []Header
}

// Header is a key/value pair used for message headers.
type Header struct {
	Key   string
	Value []byte
}

// Message is a received message.
type Message interface {
	ID() string
	Body() []byte
	Headers() []Header
	Ack(ctx context.Context) error
	Nack(ctx context.Context) error
}
