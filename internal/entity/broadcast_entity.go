// FILE: internal/entity/broadcast_entity.go
// Domain entities for broadcast jobs
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelPush  Channel = "push"
)

type Audience string

const (
	AudienceAll      Audience = "all"
	AudienceVerified Audience = "verified"
	AudienceTenant   Audience = "tenant"
	AudienceLandlord Audience = "landlord"
	AudienceAgent    Audience = "agent"
)

type BodyKind string

const (
	BodyPlain BodyKind = "plain"
	BodyHTML  BodyKind = "html"
)

// BroadcastFailure is one recipient the dispatch could not reach.
type BroadcastFailure struct {
	RecipientId uuid.UUID `json:"recipient_id"`
	Reason      string    `json:"reason"`
}

// DeliveryReport is the aggregated outcome of one dispatch. It is a return
// value only; persistence is the caller's choice (BroadcastJob).
type DeliveryReport struct {
	SuccessCount int                `json:"success"`
	FailedCount  int                `json:"failed"`
	TotalCount   int                `json:"total"`
	Failures     []BroadcastFailure `json:"failures,omitempty"`
}

// BroadcastJob is the immutable audit record of one dispatch.
type BroadcastJob struct {
	Id           uuid.UUID
	Subject      string
	Body         string
	BodyKind     BodyKind
	Channel      Channel
	Audience     Audience
	TargetCount  int
	SuccessCount int
	FailedCount  int
	SentAt       time.Time
}
