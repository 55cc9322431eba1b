// FILE: pkg/delivery/fallback.go
// Two-step primary/fallback send composition
package delivery

import (
	"context"

	"roomlink-be/internal/entity"
)

// Route tags which transport carried a successful send.
type Route string

const (
	RoutePrimary  Route = "primary"
	RouteFallback Route = "fallback"
	RouteNone     Route = ""
)

// SendResult is the tagged outcome of a fallback-composed send.
type SendResult struct {
	Via Route
	Err error
}

func (r SendResult) Sent() bool { return r.Err == nil }

// SendWithFallback tries the primary transport and, only after it fails for
// this recipient, the fallback. The two are never attempted in parallel so a
// recipient cannot be double-sent. When both fail, the fallback's error wins:
// it is the more specific, final verdict.
func SendWithFallback(ctx context.Context, primary, fallback Transport, rcpt entity.Recipient, msg Message) SendResult {
	primaryErr := primary.Send(ctx, rcpt, msg)
	if primaryErr == nil {
		return SendResult{Via: RoutePrimary}
	}
	if fallback == nil {
		// No relay configured; the primary verdict stands.
		return SendResult{Via: RouteNone, Err: primaryErr}
	}
	if err := fallback.Send(ctx, rcpt, msg); err != nil {
		return SendResult{Via: RouteNone, Err: err}
	}
	return SendResult{Via: RouteFallback}
}
