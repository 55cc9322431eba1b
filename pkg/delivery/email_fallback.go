// FILE: pkg/delivery/email_fallback.go
// Fallback email transport: authenticated submission through a relay
package delivery

import (
	"context"
	"fmt"

	"roomlink-be/internal/entity"
	"roomlink-be/internal/pkg/apperror"

	"gopkg.in/gomail.v2"
)

// RelayEmailTransport submits through a configured SMTP relay with
// credentials. Used only after the local submission fails for a recipient.
type RelayEmailTransport struct {
	dialer      *gomail.Dialer
	senderEmail string
}

// NewRelayEmailTransport validates the relay settings up front. A missing
// field is a configuration error; the relay is never attempted with defaults.
func NewRelayEmailTransport(host string, port int, username, password, senderEmail string) (*RelayEmailTransport, error) {
	if host == "" || port == 0 || username == "" || password == "" || senderEmail == "" {
		return nil, fmt.Errorf("%w: incomplete SMTP relay settings (need host, port, username, password, from)", apperror.ErrConfiguration)
	}
	return &RelayEmailTransport{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: senderEmail,
	}, nil
}

func (t *RelayEmailTransport) Send(ctx context.Context, rcpt entity.Recipient, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", t.senderEmail)
	m.SetHeader("To", rcpt.Email)
	m.SetHeader("Subject", msg.Subject)
	if msg.HTML {
		m.SetBody("text/html", msg.Body)
	} else {
		m.SetBody("text/plain", msg.Body)
	}

	if err := awaitSend(ctx, func() error { return t.dialer.DialAndSend(m) }); err != nil {
		return fmt.Errorf("relay submission to %s: %w", rcpt.Email, err)
	}
	return nil
}
