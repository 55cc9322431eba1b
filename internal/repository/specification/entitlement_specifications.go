package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByUserId filters grants by owning user
type ByUserId struct {
	UserId uuid.UUID
}

func (s ByUserId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}

// ByFeatureName filters grants by feature key
type ByFeatureName struct {
	FeatureName string
}

func (s ByFeatureName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feature_name = ?", s.FeatureName)
}

// WithStatus filters grants by status (active, disabled)
type WithStatus struct {
	Status string
}

func (s WithStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// NotExpiredAt keeps grants whose expiry is strictly after the given instant
type NotExpiredAt struct {
	Now time.Time
}

func (s NotExpiredAt) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at > ?", s.Now)
}
