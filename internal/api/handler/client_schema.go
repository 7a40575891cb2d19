package handler

// Request and response types owned by the transport layer. They are
// intentionally separate from ports/domain types so the JSON contract is not
// coupled to internal service changes. Dates travel as "2006-01-02" strings.

type createClientRequest struct {
	Name      string `json:"name"      validate:"required"`
	Surname   string `json:"surname"   validate:"required"`
	Age       *int   `json:"age"       validate:"required,gte=0"`
	BirthDate string `json:"birthDate" validate:"required,datetime=2006-01-02"`
}

// updateClientRequest carries a partial update: absent fields leave the
// stored values untouched.
type updateClientRequest struct {
	Name      *string `json:"name"`
	Surname   *string `json:"surname"`
	Age       *int    `json:"age"       validate:"omitempty,gte=0"`
	BirthDate *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
}

// clientResponse is the client representation returned by create, update,
// and list. estimatedDeathDate is a presentation-only derived field.
type clientResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Surname            string `json:"surname"`
	Age                int    `json:"age"`
	BirthDate          string `json:"birthDate"`
	EstimatedDeathDate string `json:"estimatedDeathDate"`
}

type ageMetricsResponse struct {
	AverageAge        float64 `json:"averageAge"`
	StandardDeviation float64 `json:"standardDeviation"`
}
