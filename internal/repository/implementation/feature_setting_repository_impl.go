// FILE: internal/repository/implementation/feature_setting_repository_impl.go
// Implementation of FeatureSettingRepository
package implementation

import (
	"context"
	"errors"

	"roomlink-be/internal/entity"
	"roomlink-be/internal/mapper"
	"roomlink-be/internal/model"
	"roomlink-be/internal/repository/contract"
	"roomlink-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeatureSettingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeatureSettingMapper
}

func NewFeatureSettingRepository(db *gorm.DB) contract.FeatureSettingRepository {
	return &FeatureSettingRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeatureSettingMapper(),
	}
}

func (r *FeatureSettingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FeatureSettingRepositoryImpl) Upsert(ctx context.Context, setting *entity.FeatureSetting) error {
	m := r.mapper.ToModel(setting)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "feature_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_locked", "unlock_price", "duration_value", "duration_type", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*setting = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeatureSettingRepositoryImpl) FindByName(ctx context.Context, featureName string) (*entity.FeatureSetting, error) {
	var m model.FeatureSetting
	if err := r.db.WithContext(ctx).Where("feature_name = ?", featureName).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FeatureSettingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeatureSetting, error) {
	var models []*model.FeatureSetting
	query := r.applySpecifications(r.db.WithContext(ctx).Order("feature_name ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
