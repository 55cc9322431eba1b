// FILE: internal/service/dispatch_consumer_service.go
// Background worker executing queued broadcast requests
package service

import (
	"context"
	"encoding/json"
	"errors"

	"roomlink-be/internal/dto"
	"roomlink-be/internal/pkg/apperror"
	"roomlink-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IDispatchConsumerService interface {
	Consume(ctx context.Context) error
}

type dispatchConsumerService struct {
	pubSub           *gochannel.GoChannel
	topicName        string
	broadcastService IBroadcastService
	logger           logger.ILogger
}

func NewDispatchConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	broadcastService IBroadcastService,
	log logger.ILogger,
) IDispatchConsumerService {
	return &dispatchConsumerService{
		pubSub:           pubSub,
		topicName:        topicName,
		broadcastService: broadcastService,
		logger:           log,
	}
}

func (cs *dispatchConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *dispatchConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var req dto.BroadcastRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		cs.logger.Error("DispatchConsumer", "failed to unmarshal queued broadcast", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed payloads would retry forever
		return
	}

	report, err := cs.broadcastService.Send(ctx, &req)
	if err != nil {
		if errors.Is(err, apperror.ErrStoreUnavailable) {
			cs.logger.Warn("DispatchConsumer", "store unavailable, requeueing broadcast", map[string]interface{}{"msg_id": msg.UUID})
			msg.Nack()
			return
		}
		// Invalid audience or other terminal errors: drop with a log line.
		cs.logger.Error("DispatchConsumer", "queued broadcast rejected", map[string]interface{}{
			"msg_id": msg.UUID,
			"error":  err.Error(),
		})
		msg.Ack()
		return
	}

	cs.logger.Info("DispatchConsumer", "queued broadcast completed", map[string]interface{}{
		"msg_id":  msg.UUID,
		"success": report.SuccessCount,
		"failed":  report.FailedCount,
		"total":   report.TotalCount,
	})
	msg.Ack()
}
