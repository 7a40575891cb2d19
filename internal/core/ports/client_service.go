package ports

import (
	"context"
	"time"

	"github.com/seek/client-registry/internal/core/domain"
)

// CreateClientInput carries all data needed to register a new client.
type CreateClientInput struct {
	Name      string
	Surname   string
	Age       int
	BirthDate time.Time
}

// UpdateClientInput carries a partial update: only non-nil fields overwrite
// the stored record.
type UpdateClientInput struct {
	Name      *string
	Surname   *string
	Age       *int
	BirthDate *time.Time
}

// AgeMetrics holds the aggregate age statistics over all active clients.
// StandardDeviation is the population deviation (divide by N, not N-1).
type AgeMetrics struct {
	AverageAge        float64
	StandardDeviation float64
}

// ClientService defines use-case operations for registry clients.
type ClientService interface {
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	Update(ctx context.Context, id string, input UpdateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Client, error)
	Metrics(ctx context.Context) (*AgeMetrics, error)
}
