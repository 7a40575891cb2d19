package ports

import (
	"context"

	"github.com/seek/client-registry/internal/core/domain"
)

// ClientRepository defines persistence operations for registry clients.
//
// Contract: FindByID and FindAll never return soft-deleted rows, and
// SoftDelete on an unknown or already-deleted id is a silent no-op.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	FindAll(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	SoftDelete(ctx context.Context, id string) error
}
