package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/wolfeidau/records/internal/models"
)

// OrganizationStore defines the interface for organization storage operations.
type OrganizationStore interface {
	// Create stores a new organization.
	// Returns ErrOrganizationAlreadyExists if an organization with the same ID already exists.
	Create(ctx context.Context, in models.OrganizationCreate) (*models.Organization, error)

	// Get retrieves an organization by ID.
	// Returns ErrOrganizationNotFound if the organization doesn't exist.
	Get(ctx context.Context, id uuid.UUID) (*models.Organization, error)

	// List returns every organization matching the filter, in creation order.
	List(ctx context.Context, filter OrganizationFilter) ([]*models.Organization, error)

	// Update merges the fields present in the update onto the stored organization.
	// Returns ErrOrganizationNotFound if the organization doesn't exist.
	Update(ctx context.Context, id uuid.UUID, update models.OrganizationUpdate) (*models.Organization, error)
}

// OrganizationFilter selects organizations by name.
type OrganizationFilter struct {
	Name *string `schema:"name,omitempty"`
}

// Match reports whether the organization satisfies the filter.
func (f OrganizationFilter) Match(o *models.Organization) bool {
	return equals(f.Name, o.Name)
}
