// FILE: internal/repository/implementation/user_repository_impl.go
// Read-only implementation of UserRepository
package implementation

import (
	"context"

	"roomlink-be/internal/entity"
	"roomlink-be/internal/mapper"
	"roomlink-be/internal/model"
	"roomlink-be/internal/repository/contract"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecipientMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecipientMapper(),
	}
}

func (r *UserRepositoryImpl) FindAllRecipients(ctx context.Context) ([]entity.Recipient, error) {
	var models []*model.User
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToRecipients(models), nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}
