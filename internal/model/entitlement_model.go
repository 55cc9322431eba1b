// FILE: internal/model/entitlement_model.go
// GORM model for the user_payments table (entitlement grants)
package model

import (
	"time"

	"github.com/google/uuid"
)

// Entitlement is append-mostly: inserts at grant time, status updates for
// administrative toggles. No unique index on (user_id, feature_name) on
// purpose; overlapping grants are legal.
type Entitlement struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;index;not null"`
	FeatureName string    `gorm:"type:varchar(100);index;not null"`
	PaidAt      time.Time `gorm:"not null"`
	ExpiresAt   time.Time `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);default:'active'"` // active, disabled
}

func (Entitlement) TableName() string {
	return "user_payments"
}
