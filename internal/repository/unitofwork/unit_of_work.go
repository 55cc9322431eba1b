package unitofwork

import (
	"context"

	"roomlink-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	FeatureSettingRepository() contract.FeatureSettingRepository
	EntitlementRepository() contract.EntitlementRepository
	BroadcastJobRepository() contract.BroadcastJobRepository
	UserRepository() contract.UserRepository
}
