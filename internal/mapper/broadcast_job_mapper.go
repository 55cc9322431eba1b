// FILE: internal/mapper/broadcast_job_mapper.go
// Mapper for BroadcastJob entity <-> model conversion
package mapper

import (
	"roomlink-be/internal/entity"
	"roomlink-be/internal/model"
)

type BroadcastJobMapper struct{}

func NewBroadcastJobMapper() *BroadcastJobMapper {
	return &BroadcastJobMapper{}
}

func (m *BroadcastJobMapper) ToEntity(model *model.BroadcastJob) *entity.BroadcastJob {
	if model == nil {
		return nil
	}
	return &entity.BroadcastJob{
		Id:           model.Id,
		Subject:      model.Subject,
		Body:         model.Body,
		BodyKind:     entity.BodyKind(model.BodyKind),
		Channel:      entity.Channel(model.Channel),
		Audience:     entity.Audience(model.Audience),
		TargetCount:  model.TargetCount,
		SuccessCount: model.SuccessCount,
		FailedCount:  model.FailedCount,
		SentAt:       model.SentAt,
	}
}

func (m *BroadcastJobMapper) ToModel(entity *entity.BroadcastJob) *model.BroadcastJob {
	if entity == nil {
		return nil
	}
	return &model.BroadcastJob{
		Id:           entity.Id,
		Subject:      entity.Subject,
		Body:         entity.Body,
		BodyKind:     string(entity.BodyKind),
		Channel:      string(entity.Channel),
		Audience:     string(entity.Audience),
		TargetCount:  entity.TargetCount,
		SuccessCount: entity.SuccessCount,
		FailedCount:  entity.FailedCount,
		SentAt:       entity.SentAt,
	}
}

func (m *BroadcastJobMapper) ToEntities(models []*model.BroadcastJob) []*entity.BroadcastJob {
	entities := make([]*entity.BroadcastJob, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
