// FILE: internal/dto/broadcast_dto.go
// DTOs for broadcast sends
package dto

import (
	"time"

	"github.com/google/uuid"
)

// BroadcastRequest is the dispatcher variant: pick an audience and channel,
// the service resolves the concrete recipient set.
type BroadcastRequest struct {
	Audience string `json:"audience" validate:"required"`
	Channel  string `json:"channel" validate:"required,oneof=email sms push"`
	Subject  string `json:"subject" validate:"required"`
	Body     string `json:"body" validate:"required"`
	BodyType string `json:"bodyType,omitempty" validate:"omitempty,oneof=text html"`
}

// DirectSendRequest is the single-recipient variant observed on the send
// endpoint: explicit addresses, email channel only.
type DirectSendRequest struct {
	To       StringList `json:"to" validate:"required,min=1"`
	Subject  string     `json:"subject" validate:"required"`
	Body     string     `json:"body" validate:"required"`
	BodyType string     `json:"bodyType,omitempty" validate:"omitempty,oneof=text html"`
}

type DeliveryReportResponse struct {
	Success  int                     `json:"success"`
	Failed   int                     `json:"failed"`
	Total    int                     `json:"total"`
	Failures []DeliveryFailureDetail `json:"failures,omitempty"`
}

type DeliveryFailureDetail struct {
	RecipientId uuid.UUID `json:"recipient_id"`
	Reason      string    `json:"reason"`
}

type QueuedBroadcastResponse struct {
	JobId string `json:"job_id"`
}

type BroadcastJobResponse struct {
	Id           uuid.UUID `json:"id"`
	Subject      string    `json:"subject"`
	Channel      string    `json:"channel"`
	Audience     string    `json:"audience"`
	TargetCount  int       `json:"target_count"`
	SuccessCount int       `json:"success_count"`
	FailedCount  int       `json:"failed_count"`
	SentAt       time.Time `json:"sent_at"`
}
