package domain

import "time"

// Client is the registry aggregate. DeletedAt is the soft-delete marker: a
// non-nil value excludes the record from every read path.
//
// Invariant: Age equals the whole number of elapsed years between BirthDate
// and the current date, enforced at create and update time.
type Client struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Surname   string     `json:"surname"`
	Age       int        `json:"age"`
	BirthDate time.Time  `json:"birth_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}
