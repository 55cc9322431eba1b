// FILE: pkg/delivery/push.go
// Push transport placeholder
package delivery

import (
	"context"
	"fmt"

	"roomlink-be/internal/entity"
	"roomlink-be/internal/pkg/apperror"
)

// PushTransport has no provider integration yet. Sends fail with
// ErrNotImplemented so they are counted in the report instead of crashing
// the dispatch.
type PushTransport struct{}

func NewPushTransport() *PushTransport {
	return &PushTransport{}
}

func (t *PushTransport) Send(ctx context.Context, rcpt entity.Recipient, msg Message) error {
	return fmt.Errorf("%w: push channel has no provider configured", apperror.ErrNotImplemented)
}
