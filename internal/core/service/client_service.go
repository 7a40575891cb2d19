package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/seek/client-registry/internal/core/domain"
	"github.com/seek/client-registry/internal/core/ports"
)

// ClientService ties validation, persistence, and statistics into the
// registry use cases.
type ClientService struct {
	repo       ports.ClientRepository
	validation *ClientValidation
	log        zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, validation *ClientValidation, log zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, validation: validation, log: log}
}

// Create validates the payload and persists a new active client.
func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	if err := s.validation.ValidateCreate(input.Age, input.BirthDate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	client := &domain.Client{
		Name:      input.Name,
		Surname:   input.Surname,
		Age:       input.Age,
		BirthDate: input.BirthDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create client")
		return nil, err
	}

	s.log.Info().Str("client_id", created.ID).Msg("client created")
	return created, nil
}

// Update fetches the existing client, validates the merged view, applies only
// the supplied fields, and persists. An unknown id surfaces as
// domain.ErrClientNotFound (a business-rule error, not a routing 404).
func (s *ClientService) Update(ctx context.Context, id string, input ports.UpdateClientInput) (*domain.Client, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validation.ValidateUpdate(existing, input); err != nil {
		return nil, err
	}

	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Surname != nil {
		existing.Surname = *input.Surname
	}
	if input.Age != nil {
		existing.Age = *input.Age
	}
	if input.BirthDate != nil {
		existing.BirthDate = *input.BirthDate
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		s.log.Error().Err(err).Str("client_id", id).Msg("failed to update client")
		return nil, err
	}

	s.log.Info().Str("client_id", id).Msg("client updated")
	return existing, nil
}

// Delete soft-deletes the client. An unknown id is a silent no-op.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("client_id", id).Msg("failed to delete client")
		return err
	}
	return nil
}

// List returns all active clients in store order.
func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.FindAll(ctx)
}

// Metrics computes mean and population standard deviation of ages over a
// single snapshot, so both statistics reflect the same underlying set.
func (s *ClientService) Metrics(ctx context.Context) (*ports.AgeMetrics, error) {
	clients, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	mean := averageAge(clients)
	return &ports.AgeMetrics{
		AverageAge:        mean,
		StandardDeviation: standardDeviation(clients, mean),
	}, nil
}

func averageAge(clients []*domain.Client) float64 {
	if len(clients) == 0 {
		return 0
	}
	sum := 0
	for _, c := range clients {
		sum += c.Age
	}
	return float64(sum) / float64(len(clients))
}

// standardDeviation divides by N, not N-1 (population deviation).
func standardDeviation(clients []*domain.Client, mean float64) float64 {
	if len(clients) == 0 {
		return 0
	}
	var sq float64
	for _, c := range clients {
		d := float64(c.Age) - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(clients)))
}
