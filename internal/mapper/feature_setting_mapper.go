// FILE: internal/mapper/feature_setting_mapper.go
// Mapper for FeatureSetting entity <-> model conversion
package mapper

import (
	"roomlink-be/internal/entity"
	"roomlink-be/internal/model"
)

type FeatureSettingMapper struct{}

func NewFeatureSettingMapper() *FeatureSettingMapper {
	return &FeatureSettingMapper{}
}

func (m *FeatureSettingMapper) ToEntity(model *model.FeatureSetting) *entity.FeatureSetting {
	if model == nil {
		return nil
	}
	return &entity.FeatureSetting{
		FeatureName:   model.FeatureName,
		IsLocked:      model.IsLocked,
		UnlockPrice:   model.UnlockPrice,
		DurationValue: model.DurationValue,
		DurationType:  entity.DurationType(model.DurationType),
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func (m *FeatureSettingMapper) ToModel(entity *entity.FeatureSetting) *model.FeatureSetting {
	if entity == nil {
		return nil
	}
	return &model.FeatureSetting{
		FeatureName:   entity.FeatureName,
		IsLocked:      entity.IsLocked,
		UnlockPrice:   entity.UnlockPrice,
		DurationValue: entity.DurationValue,
		DurationType:  string(entity.DurationType),
		CreatedAt:     entity.CreatedAt,
		UpdatedAt:     entity.UpdatedAt,
	}
}

func (m *FeatureSettingMapper) ToEntities(models []*model.FeatureSetting) []*entity.FeatureSetting {
	entities := make([]*entity.FeatureSetting, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
