package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/wolfeidau/records/internal/models"
)

// ProjectStore defines the interface for project storage operations.
// OrganizationID is stored as given; it is never resolved against an
// OrganizationStore.
type ProjectStore interface {
	// Create stores a new project.
	// Returns ErrProjectAlreadyExists if a project with the same ID already exists.
	Create(ctx context.Context, in models.ProjectCreate) (*models.Project, error)

	// Get retrieves a project by ID.
	// Returns ErrProjectNotFound if the project doesn't exist.
	Get(ctx context.Context, id uuid.UUID) (*models.Project, error)

	// List returns every project matching the filter, in creation order.
	List(ctx context.Context, filter ProjectFilter) ([]*models.Project, error)

	// Update merges the fields present in the update onto the stored project.
	// Returns ErrProjectNotFound if the project doesn't exist.
	Update(ctx context.Context, id uuid.UUID, update models.ProjectUpdate) (*models.Project, error)
}

// ProjectFilter selects projects by title.
type ProjectFilter struct {
	Title *string `schema:"title,omitempty"`
}

// Match reports whether the project satisfies the filter.
func (f ProjectFilter) Match(p *models.Project) bool {
	return equals(f.Title, p.Title)
}
