// FILE: internal/repository/implementation/broadcast_job_repository_impl.go
// Implementation of BroadcastJobRepository
package implementation

import (
	"context"
	"encoding/json"

	"roomlink-be/internal/entity"
	"roomlink-be/internal/mapper"
	"roomlink-be/internal/model"
	"roomlink-be/internal/repository/contract"
	"roomlink-be/internal/repository/specification"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BroadcastJobRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BroadcastJobMapper
}

func NewBroadcastJobRepository(db *gorm.DB) contract.BroadcastJobRepository {
	return &BroadcastJobRepositoryImpl{
		db:     db,
		mapper: mapper.NewBroadcastJobMapper(),
	}
}

func (r *BroadcastJobRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BroadcastJobRepositoryImpl) Create(ctx context.Context, job *entity.BroadcastJob, failures []entity.BroadcastFailure) error {
	m := r.mapper.ToModel(job)
	if len(failures) > 0 {
		data, err := json.Marshal(failures)
		if err != nil {
			return err
		}
		m.Failures = datatypes.JSON(data)
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*job = *r.mapper.ToEntity(m)
	return nil
}

func (r *BroadcastJobRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BroadcastJob, error) {
	var models []*model.BroadcastJob
	query := r.applySpecifications(r.db.WithContext(ctx).Order("sent_at DESC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
