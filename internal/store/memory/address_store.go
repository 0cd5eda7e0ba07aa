package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wolfeidau/records/internal/models"
	"github.com/wolfeidau/records/internal/store"
)

var _ store.AddressStore = (*AddressStore)(nil)

// AddressStore implements store.AddressStore using in-memory storage.
type AddressStore struct {
	now func() time.Time

	addresses *table[*models.Address]
}

// NewAddressStore creates a new in-memory address store.
func NewAddressStore() *AddressStore {
	return &AddressStore{
		now:       utcNow,
		addresses: newTable[*models.Address](),
	}
}

// Create stores a new address, stamping both timestamps with the current time.
func (s *AddressStore) Create(ctx context.Context, in models.AddressCreate) (*models.Address, error) {
	now := s.now()
	rec := &models.Address{
		AddressBase: in,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	rec.EnsureID()

	created, ok := s.addresses.insert(rec.ID, rec)
	if !ok {
		return nil, store.ErrAddressAlreadyExists
	}

	return created, nil
}

// Get retrieves an address by ID.
func (s *AddressStore) Get(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	rec, ok := s.addresses.get(id)
	if !ok {
		return nil, store.ErrAddressNotFound
	}

	return rec, nil
}

// List returns all addresses matching the filter.
func (s *AddressStore) List(ctx context.Context, filter store.AddressFilter) ([]*models.Address, error) {
	return s.addresses.list(filter.Match), nil
}

// Update merges the present fields of update onto the stored address and
// refreshes UpdatedAt.
func (s *AddressStore) Update(ctx context.Context, id uuid.UUID, update models.AddressUpdate) (*models.Address, error) {
	rec, ok := s.addresses.update(id, func(r *models.Address) {
		update.Apply(&r.AddressBase)
		r.UpdatedAt = s.now()
	})
	if !ok {
		return nil, store.ErrAddressNotFound
	}

	return rec, nil
}
