// FILE: internal/service/broadcast_service.go
// Broadcast orchestration: audience resolution, dispatch, audit record
package service

import (
	"context"
	"fmt"
	"time"

	"roomlink-be/internal/dto"
	"roomlink-be/internal/entity"
	"roomlink-be/internal/pkg/apperror"
	"roomlink-be/internal/pkg/logger"
	"roomlink-be/internal/repository/specification"
	"roomlink-be/internal/repository/unitofwork"
	"roomlink-be/pkg/delivery"
	"roomlink-be/pkg/events"
	pktNats "roomlink-be/pkg/nats"

	"github.com/google/uuid"
)

type IBroadcastService interface {
	// Send resolves the audience, dispatches over the channel and writes the
	// immutable audit row. Partial failure is reported in the counts, never
	// as an error.
	Send(ctx context.Context, req *dto.BroadcastRequest) (*entity.DeliveryReport, error)

	// SendDirect is the explicit-address email variant. No audience
	// resolution and no audit row; it mirrors the historical send endpoint.
	SendDirect(ctx context.Context, req *dto.DirectSendRequest) (*entity.DeliveryReport, error)

	ListJobs(ctx context.Context, limit int) ([]*entity.BroadcastJob, error)
}

type broadcastService struct {
	uowFactory unitofwork.RepositoryFactory
	dispatcher *delivery.Dispatcher
	logger     logger.ILogger
	natsPub    *pktNats.Publisher
}

func NewBroadcastService(
	uowFactory unitofwork.RepositoryFactory,
	dispatcher *delivery.Dispatcher,
	log logger.ILogger,
	natsPub *pktNats.Publisher,
) IBroadcastService {
	return &broadcastService{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     log,
		natsPub:    natsPub,
	}
}

func (s *broadcastService) Send(ctx context.Context, req *dto.BroadcastRequest) (*entity.DeliveryReport, error) {
	audience, err := delivery.ParseAudience(req.Audience)
	if err != nil {
		return nil, err
	}
	channel := entity.Channel(req.Channel)
	bodyKind := bodyKindOf(req.BodyType)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	recipients, err := uow.UserRepository().FindAllRecipients(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: loading recipients: %v", apperror.ErrStoreUnavailable, err)
	}

	targets, err := delivery.SelectAudience(recipients, audience)
	if err != nil {
		return nil, err
	}

	report := s.dispatcher.Dispatch(ctx, targets, channel, delivery.Message{
		Subject: req.Subject,
		Body:    req.Body,
		HTML:    bodyKind == entity.BodyHTML,
	})

	job := &entity.BroadcastJob{
		Id:           uuid.New(),
		Subject:      req.Subject,
		Body:         req.Body,
		BodyKind:     bodyKind,
		Channel:      channel,
		Audience:     audience,
		TargetCount:  report.TotalCount,
		SuccessCount: report.SuccessCount,
		FailedCount:  report.FailedCount,
		SentAt:       time.Now(),
	}
	// The sends already happened; a failed audit write must not turn a
	// delivered broadcast into an error response.
	if err := uow.BroadcastJobRepository().Create(ctx, job, report.Failures); err != nil {
		s.logger.Error("BroadcastService", "failed to persist broadcast job", map[string]interface{}{
			"job_id": job.Id.String(),
			"error":  err.Error(),
		})
	}

	s.logger.Info("BroadcastService", "broadcast completed", map[string]interface{}{
		"job_id":   job.Id.String(),
		"channel":  string(channel),
		"audience": string(audience),
		"success":  report.SuccessCount,
		"failed":   report.FailedCount,
		"total":    report.TotalCount,
	})

	if s.natsPub != nil {
		event := events.NewBroadcastCompleted(job.Id.String(), string(channel), string(audience),
			report.SuccessCount, report.FailedCount, report.TotalCount)
		if err := s.natsPub.Publish(ctx, event); err != nil {
			s.logger.Warn("BroadcastService", "failed to publish broadcast event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &report, nil
}

func (s *broadcastService) SendDirect(ctx context.Context, req *dto.DirectSendRequest) (*entity.DeliveryReport, error) {
	targets := make([]entity.Recipient, 0, len(req.To))
	for _, addr := range req.To {
		targets = append(targets, entity.Recipient{
			Id:    uuid.New(),
			Email: addr,
		})
	}

	report := s.dispatcher.Dispatch(ctx, targets, entity.ChannelEmail, delivery.Message{
		Subject: req.Subject,
		Body:    req.Body,
		HTML:    bodyKindOf(req.BodyType) == entity.BodyHTML,
	})
	return &report, nil
}

func (s *broadcastService) ListJobs(ctx context.Context, limit int) ([]*entity.BroadcastJob, error) {
	if limit <= 0 {
		limit = 50
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	jobs, err := uow.BroadcastJobRepository().FindAll(ctx, specification.Pagination{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("%w: listing broadcast jobs: %v", apperror.ErrStoreUnavailable, err)
	}
	return jobs, nil
}

func bodyKindOf(bodyType string) entity.BodyKind {
	if bodyType == "html" {
		return entity.BodyHTML
	}
	return entity.BodyPlain
}
