package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/gorilla/schema"
	"github.com/wolfeidau/records/internal/client"
)

// EntityNames lists the record types accepted by the commands.
const EntityNames = "addresses,persons,organizations,projects"

// entityOps adapts the typed client methods of one record type to raw JSON
// input and string filters.
type entityOps struct {
	create func(ctx context.Context, c *client.Client, body []byte) (any, error)
	get    func(ctx context.Context, c *client.Client, id uuid.UUID) (any, error)
	list   func(ctx context.Context, c *client.Client, filter url.Values) (any, error)
	update func(ctx context.Context, c *client.Client, id uuid.UUID, body []byte) (any, error)
}

var entities = map[string]entityOps{
	"addresses": newEntityOps(
		(*client.Client).CreateAddress,
		(*client.Client).GetAddress,
		(*client.Client).ListAddresses,
		(*client.Client).UpdateAddress,
	),
	"persons": newEntityOps(
		(*client.Client).CreatePerson,
		(*client.Client).GetPerson,
		(*client.Client).ListPersons,
		(*client.Client).UpdatePerson,
	),
	"organizations": newEntityOps(
		(*client.Client).CreateOrganization,
		(*client.Client).GetOrganization,
		(*client.Client).ListOrganizations,
		(*client.Client).UpdateOrganization,
	),
	"projects": newEntityOps(
		(*client.Client).CreateProject,
		(*client.Client).GetProject,
		(*client.Client).ListProjects,
		(*client.Client).UpdateProject,
	),
}

func newEntityOps[C, R, F, L, U any](
	create func(*client.Client, context.Context, C) (R, error),
	get func(*client.Client, context.Context, uuid.UUID) (R, error),
	list func(*client.Client, context.Context, F) (L, error),
	update func(*client.Client, context.Context, uuid.UUID, U) (R, error),
) entityOps {
	return entityOps{
		create: func(ctx context.Context, c *client.Client, body []byte) (any, error) {
			var in C
			if err := json.Unmarshal(body, &in); err != nil {
				return nil, fmt.Errorf("invalid JSON body: %w", err)
			}
			return create(c, ctx, in)
		},
		get: func(ctx context.Context, c *client.Client, id uuid.UUID) (any, error) {
			return get(c, ctx, id)
		},
		list: func(ctx context.Context, c *client.Client, values url.Values) (any, error) {
			var filter F
			if err := schema.NewDecoder().Decode(&filter, values); err != nil {
				return nil, fmt.Errorf("invalid filter: %w", err)
			}
			return list(c, ctx, filter)
		},
		update: func(ctx context.Context, c *client.Client, id uuid.UUID, body []byte) (any, error) {
			var in U
			if err := json.Unmarshal(body, &in); err != nil {
				return nil, fmt.Errorf("invalid JSON body: %w", err)
			}
			return update(c, ctx, id, in)
		},
	}
}

func lookupEntity(name string) (entityOps, error) {
	ops, ok := entities[name]
	if !ok {
		return entityOps{}, fmt.Errorf("unknown record type %q", name)
	}
	return ops, nil
}
