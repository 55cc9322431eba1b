// FILE: internal/repository/contract/broadcast_job_repository.go
// Repository interface for BroadcastJob audit records
package contract

import (
	"context"

	"roomlink-be/internal/entity"
	"roomlink-be/internal/repository/specification"
)

type BroadcastJobRepository interface {
	// Create writes the immutable audit row for a completed dispatch.
	// failures is the per-recipient failure list, stored as JSON.
	Create(ctx context.Context, job *entity.BroadcastJob, failures []entity.BroadcastFailure) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BroadcastJob, error)
}
