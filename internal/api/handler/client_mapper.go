package handler

import (
	"time"

	"github.com/seek/client-registry/internal/core/domain"
	"github.com/seek/client-registry/internal/core/ports"
)

const dateLayout = "2006-01-02"

// estimatedLifespanYears feeds the estimatedDeathDate presentation field:
// birth date plus 80 years. A boundary-layer transform, not business logic.
const estimatedLifespanYears = 80

// --- Request → Service input ---

// toCreateInput assumes the request already passed schema validation, so the
// date parse cannot fail.
func toCreateInput(req createClientRequest) ports.CreateClientInput {
	birthDate, _ := time.Parse(dateLayout, req.BirthDate)
	return ports.CreateClientInput{
		Name:      req.Name,
		Surname:   req.Surname,
		Age:       *req.Age,
		BirthDate: birthDate,
	}
}

func toUpdateInput(req updateClientRequest) ports.UpdateClientInput {
	input := ports.UpdateClientInput{
		Name:    req.Name,
		Surname: req.Surname,
		Age:     req.Age,
	}
	if req.BirthDate != nil {
		birthDate, _ := time.Parse(dateLayout, *req.BirthDate)
		input.BirthDate = &birthDate
	}
	return input
}

// --- Domain → HTTP response ---

func toClientResponse(c *domain.Client) clientResponse {
	return clientResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Surname:            c.Surname,
		Age:                c.Age,
		BirthDate:          c.BirthDate.Format(dateLayout),
		EstimatedDeathDate: c.BirthDate.AddDate(estimatedLifespanYears, 0, 0).Format(dateLayout),
	}
}

func toClientListResponse(clients []*domain.Client) []clientResponse {
	out := make([]clientResponse, len(clients))
	for i, c := range clients {
		out[i] = toClientResponse(c)
	}
	return out
}

func toAgeMetricsResponse(m *ports.AgeMetrics) ageMetricsResponse {
	return ageMetricsResponse{
		AverageAge:        m.AverageAge,
		StandardDeviation: m.StandardDeviation,
	}
}
