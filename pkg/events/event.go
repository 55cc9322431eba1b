package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "FEATURE_ACCESS_GRANTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewFeatureAccessGranted announces a new entitlement so downstream services
// (analytics, the admin activity feed) can react.
func NewFeatureAccessGranted(userId, featureName string, expiresAt time.Time) Event {
	return BaseEvent{
		Type: "FEATURE_ACCESS_GRANTED",
		Data: map[string]interface{}{
			"user_id":      userId,
			"feature_name": featureName,
			"expires_at":   expiresAt.UTC().Format(time.RFC3339),
		},
		OccurredAt: time.Now(),
	}
}

// NewBroadcastCompleted announces the outcome of a finished dispatch.
func NewBroadcastCompleted(jobId, channel, audience string, success, failed, total int) Event {
	return BaseEvent{
		Type: "BROADCAST_COMPLETED",
		Data: map[string]interface{}{
			"job_id":   jobId,
			"channel":  channel,
			"audience": audience,
			"success":  success,
			"failed":   failed,
			"total":    total,
		},
		OccurredAt: time.Now(),
	}
}
