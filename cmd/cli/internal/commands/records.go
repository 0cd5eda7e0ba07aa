package commands

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/wolfeidau/records/internal/client"
)

type HealthCmd struct {
	ClientFlags `embed:""`

	Echo     string `help:"Value echoed back in the echo field"`
	PathEcho string `help:"Value sent as a path segment and echoed in path_echo"`
}

func (h *HealthCmd) Run(ctx context.Context, globals *Globals) error {
	report, err := h.newClient(globals).Health(ctx, h.Echo, h.PathEcho)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return printJSON(globals.stdout(), report)
}

type CreateCmd struct {
	ClientFlags `embed:""`

	Entity string `arg:"" enum:"${entities}" help:"Record type (${entities})"`
	Body   string `arg:"" help:"JSON document, or - to read stdin"`
}

func (c *CreateCmd) Run(ctx context.Context, globals *Globals) error {
	ops, err := lookupEntity(c.Entity)
	if err != nil {
		return err
	}

	body, err := readBody(globals, c.Body)
	if err != nil {
		return err
	}

	rec, err := ops.create(ctx, c.newClient(globals), body)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Entity, err)
	}
	return printJSON(globals.stdout(), rec)
}

type GetCmd struct {
	ClientFlags `embed:""`

	Entity string    `arg:"" enum:"${entities}" help:"Record type (${entities})"`
	ID     uuid.UUID `arg:"" help:"Record ID"`
}

func (g *GetCmd) Run(ctx context.Context, globals *Globals) error {
	ops, err := lookupEntity(g.Entity)
	if err != nil {
		return err
	}

	rec, err := ops.get(ctx, g.newClient(globals), g.ID)
	if client.IsNotFound(err) {
		return fmt.Errorf("no %s with ID %s", g.Entity, g.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to get %s %s: %w", g.Entity, g.ID, err)
	}
	return printJSON(globals.stdout(), rec)
}

type ListCmd struct {
	ClientFlags `embed:""`

	Entity string            `arg:"" enum:"${entities}" help:"Record type (${entities})"`
	Filter map[string]string `help:"Equality filter, repeatable (e.g. --filter city=Paris)" short:"f"`
}

func (l *ListCmd) Run(ctx context.Context, globals *Globals) error {
	ops, err := lookupEntity(l.Entity)
	if err != nil {
		return err
	}

	values := url.Values{}
	for k, v := range l.Filter {
		values.Set(k, v)
	}

	recs, err := ops.list(ctx, l.newClient(globals), values)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", l.Entity, err)
	}
	return printJSON(globals.stdout(), recs)
}

type UpdateCmd struct {
	ClientFlags `embed:""`

	Entity string    `arg:"" enum:"${entities}" help:"Record type (${entities})"`
	ID     uuid.UUID `arg:"" help:"Record ID"`
	Body   string    `arg:"" help:"JSON document with the fields to change, or - to read stdin"`
}

func (u *UpdateCmd) Run(ctx context.Context, globals *Globals) error {
	ops, err := lookupEntity(u.Entity)
	if err != nil {
		return err
	}

	body, err := readBody(globals, u.Body)
	if err != nil {
		return err
	}

	rec, err := ops.update(ctx, u.newClient(globals), u.ID, body)
	if client.IsNotFound(err) {
		return fmt.Errorf("no %s with ID %s", u.Entity, u.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update %s %s: %w", u.Entity, u.ID, err)
	}
	return printJSON(globals.stdout(), rec)
}
