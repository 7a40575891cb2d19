package service

import (
	"time"

	"github.com/seek/client-registry/internal/core/domain"
	"github.com/seek/client-registry/internal/core/ports"
)

// ClientValidation enforces the age / birth-date invariant on create and
// update payloads.
type ClientValidation struct {
	now func() time.Time
}

func NewClientValidation() *ClientValidation {
	return &ClientValidation{now: time.Now}
}

// ValidateCreate checks that age equals the whole number of years elapsed
// since birthDate.
func (v *ClientValidation) ValidateCreate(age int, birthDate time.Time) error {
	return v.validateAge(birthDate, age)
}

// ValidateUpdate resolves the effective age and birth date by preferring
// patch values over the existing record field-by-field, then applies the same
// check. When the resolved birth date is absent the check is skipped — a
// deliberate permissive edge case.
func (v *ClientValidation) ValidateUpdate(existing *domain.Client, patch ports.UpdateClientInput) error {
	birthDate := existing.BirthDate
	if patch.BirthDate != nil {
		birthDate = *patch.BirthDate
	}
	age := existing.Age
	if patch.Age != nil {
		age = *patch.Age
	}

	if birthDate.IsZero() {
		return nil
	}
	return v.validateAge(birthDate, age)
}

func (v *ClientValidation) validateAge(birthDate time.Time, age int) error {
	if WholeYears(birthDate, v.now()) != age {
		return domain.ErrAgeMismatch
	}
	return nil
}

// WholeYears counts whole elapsed years from birth to now, calendar-aware:
// one less if the anniversary has not occurred yet this year.
func WholeYears(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if birth.AddDate(years, 0, 0).After(now) {
		years--
	}
	return years
}
