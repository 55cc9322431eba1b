// FILE: pkg/delivery/email_primary.go
// Primary email transport: direct, unauthenticated local submission
package delivery

import (
	"context"
	"fmt"

	"roomlink-be/internal/entity"

	"gopkg.in/gomail.v2"
)

// LocalEmailTransport submits through the local MTA without authentication.
// Cheap and fast, but recipient mail systems reject it more often than an
// authenticated relay; the dispatcher pairs it with a fallback.
type LocalEmailTransport struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewLocalEmailTransport(host string, port int, senderEmail string) *LocalEmailTransport {
	if host == "" {
		host = "localhost"
	}
	if port == 0 {
		port = 25
	}
	return &LocalEmailTransport{
		dialer:      &gomail.Dialer{Host: host, Port: port},
		senderEmail: senderEmail,
	}
}

func (t *LocalEmailTransport) Send(ctx context.Context, rcpt entity.Recipient, msg Message) error {
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
		return fmt.Errorf("local submission to %s: %w", rcpt.Email, err)
	}
	return nil
}
