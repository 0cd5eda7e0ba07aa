package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wolfeidau/records/internal/models"
	"github.com/wolfeidau/records/internal/store"
)

var _ store.ProjectStore = (*ProjectStore)(nil)

// ProjectStore implements store.ProjectStore using in-memory storage.
type ProjectStore struct {
	now func() time.Time

	projects *table[*models.Project]
}

// NewProjectStore creates a new in-memory project store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{
		now:      utcNow,
		projects: newTable[*models.Project](),
	}
}

// Create stores a new project, stamping both timestamps with the current time.
func (s *ProjectStore) Create(ctx context.Context, in models.ProjectCreate) (*models.Project, error) {
	now := s.now()
	rec := &models.Project{
		ProjectBase: in,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	rec.EnsureID()

	created, ok := s.projects.insert(rec.ID, rec)
	if !ok {
		return nil, store.ErrProjectAlreadyExists
	}

	return created, nil
}

// Get retrieves a project by ID.
func (s *ProjectStore) Get(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	rec, ok := s.projects.get(id)
	if !ok {
		return nil, store.ErrProjectNotFound
	}

	return rec, nil
}

// List returns all projects matching the filter.
func (s *ProjectStore) List(ctx context.Context, filter store.ProjectFilter) ([]*models.Project, error) {
	return s.projects.list(filter.Match), nil
}

// Update merges the present fields of update onto the stored project and
// refreshes UpdatedAt.
func (s *ProjectStore) Update(ctx context.Context, id uuid.UUID, update models.ProjectUpdate) (*models.Project, error) {
	rec, ok := s.projects.update(id, func(r *models.Project) {
		update.Apply(&r.ProjectBase)
		r.UpdatedAt = s.now()
	})
	if !ok {
		return nil, store.ErrProjectNotFound
	}

	return rec, nil
}
