// FILE: internal/repository/contract/feature_setting_repository.go
// Repository interface for FeatureSetting (gated-feature catalog)
package contract

import (
	"context"

	"roomlink-be/internal/entity"
	"roomlink-be/internal/repository/specification"
)

type FeatureSettingRepository interface {
	Upsert(ctx context.Context, setting *entity.FeatureSetting) error
	FindByName(ctx context.Context, featureName string) (*entity.FeatureSetting, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeatureSetting, error)
}
