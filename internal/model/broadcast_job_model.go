// FILE: internal/model/broadcast_job_model.go
// GORM model for the broadcast_jobs audit table
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BroadcastJob rows are written once, after a dispatch completes, and never
// updated. Failures holds the per-recipient failure list as JSON.
type BroadcastJob struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Subject      string         `gorm:"type:varchar(255);not null"`
	Body         string         `gorm:"type:text;not null"`
	BodyKind     string         `gorm:"type:varchar(10);default:'plain'"` // plain, html
	Channel      string         `gorm:"type:varchar(10);not null"`        // email, sms, push
	Audience     string         `gorm:"type:varchar(20);not null"`        // all, verified, tenant, landlord, agent
	TargetCount  int            `gorm:"default:0"`
	SuccessCount int            `gorm:"default:0"`
	FailedCount  int            `gorm:"default:0"`
	Failures     datatypes.JSON `gorm:"type:jsonb"`
	SentAt       time.Time      `gorm:"autoCreateTime"`
}

func (BroadcastJob) TableName() string {
	return "broadcast_jobs"
}
