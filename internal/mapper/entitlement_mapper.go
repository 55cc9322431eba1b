// FILE: internal/mapper/entitlement_mapper.go
// Mapper for Entitlement entity <-> model conversion
package mapper

import (
	"roomlink-be/internal/entity"
	"roomlink-be/internal/model"
)

type EntitlementMapper struct{}

func NewEntitlementMapper() *EntitlementMapper {
	return &EntitlementMapper{}
}

func (m *EntitlementMapper) ToEntity(model *model.Entitlement) *entity.Entitlement {
	if model == nil {
		return nil
	}
	return &entity.Entitlement{
		Id:          model.Id,
		UserId:      model.UserId,
		FeatureName: model.FeatureName,
		PaidAt:      model.PaidAt,
		ExpiresAt:   model.ExpiresAt,
		Status:      entity.EntitlementStatus(model.Status),
	}
}

func (m *EntitlementMapper) ToModel(entity *entity.Entitlement) *model.Entitlement {
	if entity == nil {
		return nil
	}
	return &model.Entitlement{
		Id:          entity.Id,
		UserId:      entity.UserId,
		FeatureName: entity.FeatureName,
		PaidAt:      entity.PaidAt,
		ExpiresAt:   entity.ExpiresAt,
		Status:      string(entity.Status),
	}
}

func (m *EntitlementMapper) ToEntities(models []*model.Entitlement) []*entity.Entitlement {
	entities := make([]*entity.Entitlement, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
