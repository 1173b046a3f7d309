package messaging

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
)

// Memory is an in-process broker. Every queue group subscribed to a topic
// receives each message once; consumers sharing a group compete for it.
// Nack redelivers to the same group.
type Memory struct {
	mu     sync.Mutex
	topics map[string]map[string]chan *message
	closed bool
	seq    atomic.Int64
	buffer int
}

// NewMemory constructs an in-process broker whose group queues hold buffer
// messages before Publish blocks.
func NewMemory(buffer int) *Memory {
	if buffer <= 0 {
		buffer = 64
	}
	return &Memory{topics: map[string]map[string]chan *message{}, buffer: buffer}
}

// Close stops accepting new messages.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Publish fans msg out to every group subscribed to destination. Messages
// published before any subscription are dropped.
func (m *Memory) Publish(ctx context.Context, destination string, msg OutgoingMessage) error {
	if destination == "" {
		return ErrDestinationRequired
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	queues := make([]chan *message, 0, len(m.topics[destination]))
	for _, q := range m.topics[destination] {
		queues = append(queues, q)
	}
	m.mu.Unlock()

	id := strconv.FormatInt(m.seq.Add(1), 10)
	for _, q := range queues {
		if err := m.enqueue(ctx, q, id, msg.Body, msg.Headers); err != nil {
			return err
		}
	}
	return nil
}

// Consume attaches to the queue group set by WithQueueGroup (or the default
// group) until ctx is done.
func (m *Memory) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if source == "" {
		return ErrDestinationRequired
	}
	if handler == nil {
		return ErrHandlerRequired
	}

	co := newConsumeOptions(opts...)
	q := m.queue(source, co.queueGroup)

	err := runWorkers(ctx, co.concurrency, q, func(ctx context.Context, msg *message) error {
		return dispatch(ctx, "memory", handler, msg, co.autoAck)
	})
	if err != nil {
		return err
	}
	return ctx.Err()
}

func (m *Memory) queue(topic, group string) chan *message {
	m.mu.Lock()
	defer m.mu.Unlock()

	groups, ok := m.topics[topic]
	if !ok {
		groups = map[string]chan *message{}
		m.topics[topic] = groups
	}
	q, ok := groups[group]
	if !ok {
		q = make(chan *message, m.buffer)
		groups[group] = q
	}
	return q
}

func (m *Memory) enqueue(ctx context.Context, q chan *message, id string, body []byte, headers []Header) error {
	msg := &message{id: id, body: body, headers: headers}
	msg.nack = func(context.Context) error {
		// redelivery runs detached so a full queue cannot block the handler
		go func() {
			//nolint:errcheck // best effort redelivery
			_ = m.enqueue(context.Background(), q, id, body, headers)
		}()
		return nil
	}

	select {
	case q <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
