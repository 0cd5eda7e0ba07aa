package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wolfeidau/records/internal/models"
	"github.com/wolfeidau/records/internal/store"
)

var _ store.PersonStore = (*PersonStore)(nil)

// PersonStore implements store.PersonStore using in-memory storage.
type PersonStore struct {
	now func() time.Time

	persons *table[*models.Person]
}

// NewPersonStore creates a new in-memory person store.
func NewPersonStore() *PersonStore {
	return &PersonStore{
		now:     utcNow,
		persons: newTable[*models.Person](),
	}
}

// Create stores a new person. Embedded addresses without an ID get one.
func (s *PersonStore) Create(ctx context.Context, in models.PersonCreate) (*models.Person, error) {
	now := s.now()
	rec := &models.Person{
		PersonBase: in.Clone(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	rec.EnsureID()

	created, ok := s.persons.insert(rec.ID, rec)
	if !ok {
		return nil, store.ErrPersonAlreadyExists
	}

	return created, nil
}

// Get retrieves a person by ID.
func (s *PersonStore) Get(ctx context.Context, id uuid.UUID) (*models.Person, error) {
	rec, ok := s.persons.get(id)
	if !ok {
		return nil, store.ErrPersonNotFound
	}

	return rec, nil
}

// List returns all persons matching the filter.
func (s *PersonStore) List(ctx context.Context, filter store.PersonFilter) ([]*models.Person, error) {
	return s.persons.list(filter.Match), nil
}

// Update merges the present fields of update onto the stored person and
// refreshes UpdatedAt.
func (s *PersonStore) Update(ctx context.Context, id uuid.UUID, update models.PersonUpdate) (*models.Person, error) {
	rec, ok := s.persons.update(id, func(r *models.Person) {
		update.Apply(&r.PersonBase)
		r.UpdatedAt = s.now()
	})
	if !ok {
		return nil, store.ErrPersonNotFound
	}

	return rec, nil
}
