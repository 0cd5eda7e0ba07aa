package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/wolfeidau/records/cmd/cli/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Health  commands.HealthCmd `cmd:"" help:"Check server health"`
		Create  commands.CreateCmd `cmd:"" help:"Create a record"`
		Get     commands.GetCmd    `cmd:"" help:"Get a record by ID"`
		List    commands.ListCmd   `cmd:"" help:"List records"`
		Update  commands.UpdateCmd `cmd:"" help:"Partially update a record"`
		Debug   bool               `help:"Enable debug mode."`
		Version kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version":  version,
			"entities": commands.EntityNames,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version})
	cmd.FatalIfErrorf(err)
}
