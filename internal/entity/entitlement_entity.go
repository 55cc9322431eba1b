// FILE: internal/entity/entitlement_entity.go
// Domain entity for feature entitlements (time-bounded grants)
package entity

import (
	"time"

	"github.com/google/uuid"
)

type EntitlementStatus string

const (
	EntitlementActive   EntitlementStatus = "active"
	EntitlementDisabled EntitlementStatus = "disabled"
)

// Entitlement is one grant of access to one named feature for one user.
// ExpiresAt is fixed at grant time; later catalog changes never alter it.
// Multiple rows per (user, feature) are legal; access is granted if any row
// is effective.
type Entitlement struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	FeatureName string
	PaidAt      time.Time
	ExpiresAt   time.Time
	Status      EntitlementStatus
}

// EffectiveAt reports whether this grant confers access at the given instant.
func (e *Entitlement) EffectiveAt(now time.Time) bool {
	return e.Status == EntitlementActive && e.ExpiresAt.After(now)
}
