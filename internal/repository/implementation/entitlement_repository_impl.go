// FILE: internal/repository/implementation/entitlement_repository_impl.go
// Implementation of EntitlementRepository
package implementation

import (
	"context"
	"errors"

	"roomlink-be/internal/entity"
	"roomlink-be/internal/mapper"
	"roomlink-be/internal/model"
	"roomlink-be/internal/repository/contract"
	"roomlink-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntitlementRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EntitlementMapper
}

func NewEntitlementRepository(db *gorm.DB) contract.EntitlementRepository {
	return &EntitlementRepositoryImpl{
		db:     db,
		mapper: mapper.NewEntitlementMapper(),
	}
}

func (r *EntitlementRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EntitlementRepositoryImpl) Create(ctx context.Context, grant *entity.Entitlement) error {
	m := r.mapper.ToModel(grant)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*grant = *r.mapper.ToEntity(m)
	return nil
}

func (r *EntitlementRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Entitlement, error) {
	var m model.Entitlement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EntitlementRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Entitlement, error) {
	var models []*model.Entitlement
	query := r.applySpecifications(r.db.WithContext(ctx).Order("paid_at DESC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EntitlementRepositoryImpl) FindForUserFeature(ctx context.Context, userId uuid.UUID, featureName string) ([]*entity.Entitlement, error) {
	return r.FindAll(ctx,
		specification.ByUserId{UserId: userId},
		specification.ByFeatureName{FeatureName: featureName},
	)
}

func (r *EntitlementRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EntitlementStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Entitlement{}).
		Where("id = ?", id).
		Update("status", string(status))
	return result.RowsAffected, result.Error
}
