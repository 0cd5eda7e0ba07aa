package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/wolfeidau/records/internal/models"
)

// PersonStore defines the interface for person storage operations.
type PersonStore interface {
	// Create stores a new person, generating IDs for the person and any
	// embedded address supplied without one.
	// Returns ErrPersonAlreadyExists if a person with the same ID already exists.
	Create(ctx context.Context, in models.PersonCreate) (*models.Person, error)

	// Get retrieves a person by ID.
	// Returns ErrPersonNotFound if the person doesn't exist.
	Get(ctx context.Context, id uuid.UUID) (*models.Person, error)

	// List returns every person matching the filter, in creation order.
	List(ctx context.Context, filter PersonFilter) ([]*models.Person, error)

	// Update merges the fields present in the update onto the stored person.
	// Returns ErrPersonNotFound if the person doesn't exist.
	Update(ctx context.Context, id uuid.UUID, update models.PersonUpdate) (*models.Person, error)
}

// PersonFilter selects persons by exact field equality. City and Country
// match when at least one embedded address has that value.
type PersonFilter struct {
	UNI       *string `schema:"uni,omitempty"`
	FirstName *string `schema:"first_name,omitempty"`
	LastName  *string `schema:"last_name,omitempty"`
	Email     *string `schema:"email,omitempty"`
	Phone     *string `schema:"phone,omitempty"`
	BirthDate *string `schema:"birth_date,omitempty"` // YYYY-MM-DD
	City      *string `schema:"city,omitempty"`
	Country   *string `schema:"country,omitempty"`
}

// Match reports whether the person satisfies every set filter.
func (f PersonFilter) Match(p *models.Person) bool {
	if !equals(f.UNI, p.UNI) ||
		!equals(f.FirstName, p.FirstName) ||
		!equals(f.LastName, p.LastName) ||
		!equals(f.Email, p.Email) ||
		!equalsPtr(f.Phone, p.Phone) {
		return false
	}

	if f.BirthDate != nil {
		if p.BirthDate == nil || p.BirthDate.String() != *f.BirthDate {
			return false
		}
	}

	if f.City != nil && !anyAddress(p.Addresses, func(a *models.AddressBase) bool { return a.City == *f.City }) {
		return false
	}
	if f.Country != nil && !anyAddress(p.Addresses, func(a *models.AddressBase) bool { return a.Country == *f.Country }) {
		return false
	}

	return true
}

func anyAddress(addrs []models.AddressBase, fn func(a *models.AddressBase) bool) bool {
	for i := range addrs {
		if fn(&addrs[i]) {
			return true
		}
	}
	return false
}
