// FILE: internal/model/user_model.go
// GORM model for the users table (read-only to this service)
package model

import (
	"time"

	"github.com/google/uuid"
)

// User is owned by the marketplace application; this service only reads the
// columns it needs for audience selection and delivery.
type User struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email              string    `gorm:"type:varchar(255)"`
	Phone              string    `gorm:"type:varchar(50)"`
	PushToken          string    `gorm:"type:varchar(255)"`
	AccountType        string    `gorm:"type:varchar(20)"` // tenant, landlord, agent
	VerificationStatus string    `gorm:"type:varchar(20)"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
