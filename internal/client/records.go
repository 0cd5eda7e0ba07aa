package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/wolfeidau/records/internal/health"
	"github.com/wolfeidau/records/internal/models"
	"github.com/wolfeidau/records/internal/store"
)

// Health fetches the health report. Empty echo values are omitted.
func (c *Client) Health(ctx context.Context, echo, pathEcho string) (*health.Health, error) {
	path := "/health"
	if pathEcho != "" {
		path += "/" + url.PathEscape(pathEcho)
	}

	query := url.Values{}
	if echo != "" {
		query.Set("echo", echo)
	}

	return do[*health.Health](ctx, c, http.MethodGet, path, query, nil)
}

func (c *Client) CreateAddress(ctx context.Context, in models.AddressCreate) (*models.Address, error) {
	return do[*models.Address](ctx, c, http.MethodPost, "/addresses", nil, in)
}

func (c *Client) GetAddress(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	return do[*models.Address](ctx, c, http.MethodGet, "/addresses/"+id.String(), nil, nil)
}

func (c *Client) ListAddresses(ctx context.Context, filter store.AddressFilter) ([]*models.Address, error) {
	query, err := c.encodeFilter(&filter)
	if err != nil {
		return nil, err
	}
	return do[[]*models.Address](ctx, c, http.MethodGet, "/addresses", query, nil)
}

func (c *Client) UpdateAddress(ctx context.Context, id uuid.UUID, update models.AddressUpdate) (*models.Address, error) {
	return do[*models.Address](ctx, c, http.MethodPatch, "/addresses/"+id.String(), nil, update)
}

func (c *Client) CreatePerson(ctx context.Context, in models.PersonCreate) (*models.Person, error) {
	if in.Addresses == nil {
		in.Addresses = []models.AddressBase{}
	}
	return do[*models.Person](ctx, c, http.MethodPost, "/persons", nil, in)
}

func (c *Client) GetPerson(ctx context.Context, id uuid.UUID) (*models.Person, error) {
	return do[*models.Person](ctx, c, http.MethodGet, "/persons/"+id.String(), nil, nil)
}

func (c *Client) ListPersons(ctx context.Context, filter store.PersonFilter) ([]*models.Person, error) {
	query, err := c.encodeFilter(&filter)
	if err != nil {
		return nil, err
	}
	return do[[]*models.Person](ctx, c, http.MethodGet, "/persons", query, nil)
}

func (c *Client) UpdatePerson(ctx context.Context, id uuid.UUID, update models.PersonUpdate) (*models.Person, error) {
	return do[*models.Person](ctx, c, http.MethodPatch, "/persons/"+id.String(), nil, update)
}

func (c *Client) CreateOrganization(ctx context.Context, in models.OrganizationCreate) (*models.Organization, error) {
	return do[*models.Organization](ctx, c, http.MethodPost, "/organizations", nil, in)
}

func (c *Client) GetOrganization(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	return do[*models.Organization](ctx, c, http.MethodGet, "/organizations/"+id.String(), nil, nil)
}

func (c *Client) ListOrganizations(ctx context.Context, filter store.OrganizationFilter) ([]*models.Organization, error) {
	query, err := c.encodeFilter(&filter)
	if err != nil {
		return nil, err
	}
	return do[[]*models.Organization](ctx, c, http.MethodGet, "/organizations", query, nil)
}

func (c *Client) UpdateOrganization(ctx context.Context, id uuid.UUID, update models.OrganizationUpdate) (*models.Organization, error) {
	return do[*models.Organization](ctx, c, http.MethodPatch, "/organizations/"+id.String(), nil, update)
}

func (c *Client) CreateProject(ctx context.Context, in models.ProjectCreate) (*models.Project, error) {
	return do[*models.Project](ctx, c, http.MethodPost, "/projects", nil, in)
}

func (c *Client) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return do[*models.Project](ctx, c, http.MethodGet, "/projects/"+id.String(), nil, nil)
}

func (c *Client) ListProjects(ctx context.Context, filter store.ProjectFilter) ([]*models.Project, error) {
	query, err := c.encodeFilter(&filter)
	if err != nil {
		return nil, err
	}
	return do[[]*models.Project](ctx, c, http.MethodGet, "/projects", query, nil)
}

func (c *Client) UpdateProject(ctx context.Context, id uuid.UUID, update models.ProjectUpdate) (*models.Project, error) {
	return do[*models.Project](ctx, c, http.MethodPatch, "/projects/"+id.String(), nil, update)
}
