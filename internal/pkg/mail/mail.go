package mail

import (
	"context"
	"io"
)

// Message is an email payload.
type Message struct {
	// From overrides the sender configured on the provider.
	From    string
	To      []string
	Cc      []string
	Subject string
	// TextBody is sent alone, or as the plain alternative when HTMLBody is set.
	TextBody string
	HTMLBody string
}

// Mail sends messages.
type Mail interface {
	io.Closer
	Send(ctx context.Context, msg Message) error
}
