// FILE: internal/repository/contract/user_repository.go
// Read-only repository interface over the marketplace users table
package contract

import (
	"context"

	"roomlink-be/internal/entity"
)

type UserRepository interface {
	// FindAllRecipients projects every user into the broadcast recipient shape.
	FindAllRecipients(ctx context.Context) ([]entity.Recipient, error)
	Count(ctx context.Context) (int64, error)
}
