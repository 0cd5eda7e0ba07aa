package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/wolfeidau/records/internal/health"
	httpmiddleware "github.com/wolfeidau/records/internal/http"
	"github.com/wolfeidau/records/internal/logger"
	"github.com/wolfeidau/records/internal/server"
	"github.com/wolfeidau/records/internal/store/memory"
	"github.com/wolfeidau/records/internal/telemetry"
	"github.com/wolfeidau/records/internal/validation"
)

const shutdownTimeout = 10 * time.Second

type ServerCmd struct {
	// Server configuration
	Listen string `help:"HTTP server listen address" default:"0.0.0.0:8000" env:"RECORDS_LISTEN"`
	Port   int    `help:"override the listen port" env:"FASTAPIPORT"`

	// CORS configuration
	CORSOrigins []string `help:"allowed CORS origins" default:"*" env:"RECORDS_CORS_ORIGINS"`

	Tracing bool `help:"enable tracing and metrics export over OTLP" default:"false" env:"RECORDS_TRACING"`
}

func (c *ServerCmd) Run(globals *Globals) error {
	log := logger.Setup(globals.Debug)
	ctx := context.Background()

	log.Info().Str("version", globals.Version).Bool("debug", globals.Debug).Msg("Starting server")

	addr, err := c.listenAddr()
	if err != nil {
		return err
	}

	if c.Tracing {
		log.Info().Msg("Tracing is enabled")
		shutdown, err := telemetry.InitTelemetry(ctx, telemetry.Config{
			ServiceName: "records-server",
			Version:     globals.Version,
		})
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize telemetry, continuing without metrics")
			shutdown = func(ctx context.Context) error { return nil }
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Failed to shutdown telemetry")
			}
		}()
	}

	validator, err := validation.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to compile schemas: %w", err)
	}

	srv := server.NewServer(memory.NewStores(), validator, health.NewReporter())

	handler := c.buildHandler(log, srv.Handler())
	httpServer := configureHTTPServer(addr, handler)

	var g run.Group
	{
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", addr, err)
		}
		log.Info().Str("addr", ln.Addr().String()).Msg("HTTP server listening")

		g.Add(func() error {
			if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}, func(error) {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Failed to shutdown HTTP server")
			}
		})
	}
	{
		g.Add(run.SignalHandler(ctx, syscall.SIGINT, syscall.SIGTERM))
	}

	err = g.Run()

	var sigErr run.SignalError
	if errors.As(err, &sigErr) {
		log.Warn().Str("signal", sigErr.Signal.String()).Msg("Shutting down...")
		return nil
	}

	return err
}

// listenAddr applies the port override to the listen address.
func (c *ServerCmd) listenAddr() (string, error) {
	if c.Port == 0 {
		return c.Listen, nil
	}

	host, _, err := net.SplitHostPort(c.Listen)
	if err != nil {
		return "", fmt.Errorf("invalid listen address %q: %w", c.Listen, err)
	}

	return net.JoinHostPort(host, strconv.Itoa(c.Port)), nil
}

// buildHandler wraps the API handler with the middleware chain, outermost first.
func (c *ServerCmd) buildHandler(log zerolog.Logger, h http.Handler) http.Handler {
	middlewares := []httpmiddleware.Middleware{
		withCORS(c.CORSOrigins),
		httpmiddleware.ClientIPMiddleware(),
		logger.Middleware(log),
	}
	if c.Tracing {
		middlewares = append(middlewares, func(next http.Handler) http.Handler {
			return otelhttp.NewHandler(next, "records")
		})
	}

	return httpmiddleware.Chain(h, middlewares...)
}

// withCORS adds CORS support for browser clients.
func withCORS(allowedOrigins []string) httpmiddleware.Middleware {
	middleware := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept"},
	})
	return middleware.Handler
}
