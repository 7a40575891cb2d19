package ports

import (
	"context"

	"github.com/seek/client-registry/internal/core/domain"
)

// UserRepository defines the interface for credential persistence.
// FindByEmail never returns soft-deleted rows.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
