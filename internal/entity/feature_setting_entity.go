// FILE: internal/entity/feature_setting_entity.go
// Domain entity for the gated-feature catalog
package entity

import "time"

// DurationType units for entitlement durations. Normalization is a fixed
// approximation (weeks=7d, months=30d, years=365d), not calendar-accurate.
type DurationType string

const (
	DurationDays   DurationType = "days"
	DurationWeeks  DurationType = "weeks"
	DurationMonths DurationType = "months"
	DurationYears  DurationType = "years"
)

// FeatureSetting is the configuration of one gated capability.
// An absent setting means the feature is free for everyone.
type FeatureSetting struct {
	FeatureName   string // Unique key: CONTACT_LISTER, FEATURED_LISTING, etc.
	IsLocked      bool   // false = free regardless of entitlements
	UnlockPrice   float64
	DurationValue int
	DurationType  DurationType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AccessDuration converts the configured duration to a concrete interval.
func (f *FeatureSetting) AccessDuration() time.Duration {
	return DurationFor(f.DurationValue, f.DurationType)
}

// DurationFor normalizes a (value, type) pair to a concrete interval.
// Unknown duration types fall back to 7 days, matching the behavior the
// marketplace has always had for malformed settings rows.
func DurationFor(value int, durationType DurationType) time.Duration {
	day := 24 * time.Hour
	switch durationType {
	case DurationDays:
		return time.Duration(value) * day
	case DurationWeeks:
		return time.Duration(value) * 7 * day
	case DurationMonths:
		return time.Duration(value) * 30 * day
	case DurationYears:
		return time.Duration(value) * 365 * day
	default:
		return 7 * day
	}
}
