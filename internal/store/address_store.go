package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/wolfeidau/records/internal/models"
)

// AddressStore defines the interface for address storage operations.
type AddressStore interface {
	// Create stores a new address, generating its ID when none was supplied.
	// Returns ErrAddressAlreadyExists if an address with the same ID already exists.
	Create(ctx context.Context, in models.AddressCreate) (*models.Address, error)

	// Get retrieves an address by ID.
	// Returns ErrAddressNotFound if the address doesn't exist.
	Get(ctx context.Context, id uuid.UUID) (*models.Address, error)

	// List returns every address matching the filter, in creation order.
	List(ctx context.Context, filter AddressFilter) ([]*models.Address, error)

	// Update merges the fields present in the update onto the stored address.
	// Returns ErrAddressNotFound if the address doesn't exist.
	Update(ctx context.Context, id uuid.UUID, update models.AddressUpdate) (*models.Address, error)
}

// AddressFilter selects addresses by exact field equality. Nil fields are not
// applied.
type AddressFilter struct {
	Street     *string `schema:"street,omitempty"`
	City       *string `schema:"city,omitempty"`
	State      *string `schema:"state,omitempty"`
	PostalCode *string `schema:"postal_code,omitempty"`
	Country    *string `schema:"country,omitempty"`
}

// Match reports whether the address satisfies every set filter.
func (f AddressFilter) Match(a *models.Address) bool {
	return matchAddress(f.Street, f.City, f.State, f.PostalCode, f.Country, &a.AddressBase)
}

func matchAddress(street, city, state, postalCode, country *string, a *models.AddressBase) bool {
	return equals(street, a.Street) &&
		equals(city, a.City) &&
		equalsPtr(state, a.State) &&
		equalsPtr(postalCode, a.PostalCode) &&
		equals(country, a.Country)
}

func equals(want *string, got string) bool {
	return want == nil || *want == got
}

func equalsPtr(want *string, got *string) bool {
	if want == nil {
		return true
	}
	return got != nil && *want == *got
}
