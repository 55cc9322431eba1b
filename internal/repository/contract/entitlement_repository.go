// FILE: internal/repository/contract/entitlement_repository.go
// Repository interface for Entitlement grants
package contract

import (
	"context"

	"roomlink-be/internal/entity"
	"roomlink-be/internal/repository/specification"

	"github.com/google/uuid"
)

// EntitlementRepository is append-mostly: Create and UpdateStatus are the
// only writes; grants are never deleted.
type EntitlementRepository interface {
	Create(ctx context.Context, grant *entity.Entitlement) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Entitlement, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Entitlement, error)
	FindForUserFeature(ctx context.Context, userId uuid.UUID, featureName string) ([]*entity.Entitlement, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EntitlementStatus) (int64, error)
}
