// FILE: pkg/delivery/transport.go
// Single-recipient send contract shared by all channels
package delivery

import (
	"context"
	"fmt"

	"roomlink-be/internal/entity"
	"roomlink-be/internal/pkg/apperror"
)

// Message is the channel-agnostic payload of one send.
type Message struct {
	Subject string
	Body    string
	HTML    bool
}

// Transport sends one message to one recipient. Implementations must honor
// the context deadline and report expiry as an ordinary send error.
type Transport interface {
	Send(ctx context.Context, rcpt entity.Recipient, msg Message) error
}

// UnconfiguredTransport stands in for a channel whose provider settings are
// missing. Every send fails with a configuration error so the dispatcher
// still produces a counted report instead of panicking on a nil transport.
type UnconfiguredTransport struct {
	channel string
}

func NewUnconfiguredTransport(channel string) *UnconfiguredTransport {
	return &UnconfiguredTransport{channel: channel}
}

func (t *UnconfiguredTransport) Send(ctx context.Context, rcpt entity.Recipient, msg Message) error {
	return fmt.Errorf("%w: %s provider is not configured", apperror.ErrConfiguration, t.channel)
}

// awaitSend runs a blocking send and races it against the context. The
// underlying submission is not interrupted mid-call; an expired context only
// abandons the wait, since a partial SMTP submission cannot be rolled back.
func awaitSend(ctx context.Context, send func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- send()
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
