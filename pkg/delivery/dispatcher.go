// FILE: pkg/delivery/dispatcher.go
// Fan-out of one message over a recipient list with bounded concurrency
package delivery

import (
	"context"
	"fmt"
	"sync"
	"time"

	"roomlink-be/internal/entity"
	"roomlink-be/internal/pkg/apperror"
	"roomlink-be/internal/pkg/logger"
)

const (
	defaultWorkers     = 8
	defaultSendTimeout = 5 * time.Second
)

// Dispatcher drives the channel transports over a target list. Per-recipient
// failures are recorded, never fatal: partial completion is the steady state.
type Dispatcher struct {
	emailPrimary  Transport
	emailFallback Transport
	sms           Transport
	push          Transport
	workers       int
	sendTimeout   time.Duration
	logger        logger.ILogger
}

func NewDispatcher(emailPrimary, emailFallback, sms, push Transport, log logger.ILogger) *Dispatcher {
	return &Dispatcher{
		emailPrimary:  emailPrimary,
		emailFallback: emailFallback,
		sms:           sms,
		push:          push,
		workers:       defaultWorkers,
		sendTimeout:   defaultSendTimeout,
		logger:        log,
	}
}

// WithWorkers overrides the worker-pool size. The bound protects the
// transport provider from a burst, not correctness.
func (d *Dispatcher) WithWorkers(n int) *Dispatcher {
	if n > 0 {
		d.workers = n
	}
	return d
}

// WithSendTimeout overrides the per-recipient send timeout.
func (d *Dispatcher) WithSendTimeout(t time.Duration) *Dispatcher {
	if t > 0 {
		d.sendTimeout = t
	}
	return d
}

// Dispatch sends msg to every target over the given channel and aggregates a
// delivery report. Targets are processed by a fixed worker pool in no
// particular order; each worker accumulates its own partial report and the
// partials are merged once all workers finish. Cancelling the context stops
// new sends (in-flight ones complete) and records the rest as failures.
func (d *Dispatcher) Dispatch(ctx context.Context, targets []entity.Recipient, channel entity.Channel, msg Message) entity.DeliveryReport {
	report := entity.DeliveryReport{TotalCount: len(targets)}
	if len(targets) == 0 {
		return report
	}

	workers := d.workers
	if workers > len(targets) {
		workers = len(targets)
	}

	jobs := make(chan entity.Recipient)
	partials := make([]entity.DeliveryReport, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(local *entity.DeliveryReport) {
			defer wg.Done()
			for rcpt := range jobs {
				d.sendOne(ctx, rcpt, channel, msg, local)
			}
		}(&partials[i])
	}

	for _, rcpt := range targets {
		jobs <- rcpt
	}
	close(jobs)
	wg.Wait()

	for _, p := range partials {
		report.SuccessCount += p.SuccessCount
		report.FailedCount += p.FailedCount
		report.Failures = append(report.Failures, p.Failures...)
	}
	return report
}

func (d *Dispatcher) sendOne(ctx context.Context, rcpt entity.Recipient, channel entity.Channel, msg Message, local *entity.DeliveryReport) {
	if ctx.Err() != nil {
		d.fail(local, rcpt, fmt.Errorf("dispatch abandoned: %w", ctx.Err()))
		return
	}
	if err := contactFor(rcpt, channel); err != nil {
		d.fail(local, rcpt, err)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	var err error
	switch channel {
	case entity.ChannelEmail:
		result := SendWithFallback(sendCtx, d.emailPrimary, d.emailFallback, rcpt, msg)
		if result.Sent() && result.Via == RouteFallback {
			d.logger.Info("BroadcastDispatcher", "delivered via fallback relay", map[string]interface{}{
				"recipient_id": rcpt.Id.String(),
			})
		}
		err = result.Err
	case entity.ChannelSMS:
		err = d.sms.Send(sendCtx, rcpt, msg)
	case entity.ChannelPush:
		err = d.push.Send(sendCtx, rcpt, msg)
	default:
		err = fmt.Errorf("unknown channel %q", channel)
	}

	if err != nil {
		d.fail(local, rcpt, err)
		return
	}
	local.SuccessCount++
}

func (d *Dispatcher) fail(local *entity.DeliveryReport, rcpt entity.Recipient, err error) {
	local.FailedCount++
	local.Failures = append(local.Failures, entity.BroadcastFailure{
		RecipientId: rcpt.Id,
		Reason:      err.Error(),
	})
	d.logger.Warn("BroadcastDispatcher", "send failed", map[string]interface{}{
		"recipient_id": rcpt.Id.String(),
		"error":        err.Error(),
	})
}

// contactFor checks that the recipient carries the contact field the channel
// needs. A selected target without it is a counted failure, not a skip.
func contactFor(rcpt entity.Recipient, channel entity.Channel) error {
	switch channel {
	case entity.ChannelEmail:
		if rcpt.Email == "" {
			return fmt.Errorf("%w: no email address", apperror.ErrMissingContactInfo)
		}
	case entity.ChannelSMS:
		if rcpt.Phone == "" {
			return fmt.Errorf("%w: no phone number", apperror.ErrMissingContactInfo)
		}
	case entity.ChannelPush:
		if rcpt.PushToken == "" {
			return fmt.Errorf("%w: no push token", apperror.ErrMissingContactInfo)
		}
	}
	return nil
}
