// FILE: internal/dto/entitlement_dto.go
// DTOs for entitlement checks, grants and status toggles
package dto

import (
	"time"

	"github.com/google/uuid"
)

// GrantAccessRequest issues a new grant. Duration fields override the
// catalog's configured duration; both must be present to take effect.
type GrantAccessRequest struct {
	UserId        uuid.UUID `json:"user_id" validate:"required"`
	FeatureName   string    `json:"feature_name" validate:"required"`
	DurationValue *int      `json:"duration_value,omitempty" validate:"omitempty,gt=0"`
	DurationType  *string   `json:"duration_type,omitempty" validate:"omitempty,oneof=days weeks months years"`
}

type SetEntitlementStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active disabled"`
}

type EntitlementResponse struct {
	Id          uuid.UUID `json:"id"`
	UserId      uuid.UUID `json:"user_id"`
	FeatureName string    `json:"feature_name"`
	PaidAt      time.Time `json:"paid_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Status      string    `json:"status"`
}

type AccessCheckResponse struct {
	UserId      uuid.UUID `json:"user_id"`
	FeatureName string    `json:"feature_name"`
	Locked      bool      `json:"locked"`
}

// UpsertFeatureSettingRequest configures one gated capability.
type UpsertFeatureSettingRequest struct {
	IsLocked      bool    `json:"is_locked"`
	UnlockPrice   float64 `json:"unlock_price" validate:"gte=0"`
	DurationValue int     `json:"duration_value" validate:"required,gt=0"`
	DurationType  string  `json:"duration_type" validate:"required,oneof=days weeks months years"`
}

type FeatureSettingResponse struct {
	FeatureName   string  `json:"feature_name"`
	IsLocked      bool    `json:"is_locked"`
	UnlockPrice   float64 `json:"unlock_price"`
	DurationValue int     `json:"duration_value"`
	DurationType  string  `json:"duration_type"`
}
