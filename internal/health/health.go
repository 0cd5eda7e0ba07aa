// Package health builds the process status report served on /health.
package health

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// TimestampLayout is ISO-8601 UTC with microsecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// fallbackIP is reported when the host name cannot be resolved.
const fallbackIP = "127.0.0.1"

// Health is the report returned by the health endpoints.
type Health struct {
	Status        int     `json:"status"`
	StatusMessage string  `json:"status_message"`
	Timestamp     string  `json:"timestamp"`
	IPAddress     string  `json:"ip_address"`
	Echo          *string `json:"echo"`
	PathEcho      *string `json:"path_echo"`
}

// ResolveFunc returns the network address of the local host.
type ResolveFunc func(ctx context.Context) (string, error)

// Reporter produces health reports. The zero value is not usable, use NewReporter.
type Reporter struct {
	resolve ResolveFunc
	now     func() time.Time
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithResolver overrides the host address lookup.
func WithResolver(fn ResolveFunc) Option {
	return func(r *Reporter) { r.resolve = fn }
}

// WithClock overrides the time source.
func WithClock(fn func() time.Time) Option {
	return func(r *Reporter) { r.now = fn }
}

// NewReporter creates a Reporter that resolves the host name with the
// default resolver.
func NewReporter(opts ...Option) *Reporter {
	r := &Reporter{
		resolve: LookupHostIP,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report returns the current status, passing both echo values through unchanged.
func (r *Reporter) Report(ctx context.Context, echo, pathEcho *string) Health {
	ip, err := r.resolve(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Failed to resolve host address")
		ip = fallbackIP
	}

	return Health{
		Status:        200,
		StatusMessage: "OK",
		Timestamp:     r.now().UTC().Format(TimestampLayout),
		IPAddress:     ip,
		Echo:          echo,
		PathEcho:      pathEcho,
	}
}

// LookupHostIP resolves the host name of this machine, preferring the first
// IPv4 address.
func LookupHostIP(ctx context.Context) (string, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("failed to get hostname: %w", err)
	}

	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, hostname)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", hostname, err)
	}
	if len(addrs) == 0 {
		return "", fmt.Errorf("no addresses for %s", hostname)
	}

	for _, addr := range addrs {
		if ip4 := addr.IP.To4(); ip4 != nil {
			return ip4.String(), nil
		}
	}

	return addrs[0].IP.String(), nil
}
