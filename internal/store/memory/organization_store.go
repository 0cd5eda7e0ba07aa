package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wolfeidau/records/internal/models"
	"github.com/wolfeidau/records/internal/store"
)

var _ store.OrganizationStore = (*OrganizationStore)(nil)

// OrganizationStore implements store.OrganizationStore using in-memory storage.
type OrganizationStore struct {
	now func() time.Time

	organizations *table[*models.Organization]
}

// NewOrganizationStore creates a new in-memory organization store.
func NewOrganizationStore() *OrganizationStore {
	return &OrganizationStore{
		now:           utcNow,
		organizations: newTable[*models.Organization](),
	}
}

// Create stores a new organization, stamping both timestamps with the current time.
func (s *OrganizationStore) Create(ctx context.Context, in models.OrganizationCreate) (*models.Organization, error) {
	now := s.now()
	rec := &models.Organization{
		OrganizationBase: in,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	rec.EnsureID()

	created, ok := s.organizations.insert(rec.ID, rec)
	if !ok {
		return nil, store.ErrOrganizationAlreadyExists
	}

	return created, nil
}

// Get retrieves an organization by ID.
func (s *OrganizationStore) Get(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	rec, ok := s.organizations.get(id)
	if !ok {
		return nil, store.ErrOrganizationNotFound
	}

	return rec, nil
}

// List returns all organizations matching the filter.
func (s *OrganizationStore) List(ctx context.Context, filter store.OrganizationFilter) ([]*models.Organization, error) {
	return s.organizations.list(filter.Match), nil
}

// Update merges the present fields of update onto the stored organization and
// refreshes UpdatedAt.
func (s *OrganizationStore) Update(ctx context.Context, id uuid.UUID, update models.OrganizationUpdate) (*models.Organization, error) {
	rec, ok := s.organizations.update(id, func(r *models.Organization) {
		update.Apply(&r.OrganizationBase)
		r.UpdatedAt = s.now()
	})
	if !ok {
		return nil, store.ErrOrganizationNotFound
	}

	return rec, nil
}
