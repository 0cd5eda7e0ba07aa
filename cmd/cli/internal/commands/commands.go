package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/wolfeidau/records/internal/client"
)

type Globals struct {
	Debug   bool
	Version string

	out io.Writer
	in  io.Reader
}

func (g *Globals) stdout() io.Writer {
	if g.out == nil {
		return os.Stdout
	}
	return g.out
}

func (g *Globals) stdin() io.Reader {
	if g.in == nil {
		return os.Stdin
	}
	return g.in
}

// ClientFlags are shared by every command talking to the server.
type ClientFlags struct {
	Server  string        `help:"Server URL" default:"http://localhost:8000" env:"RECORDS_SERVER"`
	Timeout time.Duration `help:"Request timeout" default:"30s"`
	Retries uint          `help:"Retries for GET requests on transient failures" default:"3"`
}

func (f ClientFlags) newClient(globals *Globals) *client.Client {
	if globals.Debug {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return client.New(client.Config{
		ServerURL:  f.Server,
		Timeout:    f.Timeout,
		MaxRetries: f.Retries,
		Debug:      globals.Debug,
	})
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// readBody returns the JSON document given on the command line, reading
// stdin when the argument is "-".
func readBody(globals *Globals, arg string) ([]byte, error) {
	if arg != "-" {
		return []byte(arg), nil
	}

	data, err := io.ReadAll(globals.stdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}
