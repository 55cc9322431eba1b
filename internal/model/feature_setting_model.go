// FILE: internal/model/feature_setting_model.go
// GORM model for the payment_settings table (feature catalog)
package model

import "time"

type FeatureSetting struct {
	FeatureName   string    `gorm:"type:varchar(100);primaryKey"`
	IsLocked      bool      `gorm:"default:false"`
	UnlockPrice   float64   `gorm:"type:numeric(10,2);default:0"`
	DurationValue int       `gorm:"default:7"`
	DurationType  string    `gorm:"type:varchar(20);default:'days'"` // days, weeks, months, years
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (FeatureSetting) TableName() string {
	return "payment_settings"
}
