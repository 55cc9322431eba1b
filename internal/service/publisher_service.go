// FILE: internal/service/publisher_service.go
// In-process queue publisher for async broadcast dispatch
package service

import (
	"context"
	"encoding/json"

	"roomlink-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	// QueueBroadcast enqueues a dispatcher-variant request for background
	// execution and returns the queue message id.
	QueueBroadcast(ctx context.Context, req *dto.BroadcastRequest) (string, error)
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (s *publisherService) QueueBroadcast(ctx context.Context, req *dto.BroadcastRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		return "", err
	}
	return msg.UUID, nil
}
