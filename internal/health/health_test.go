package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReporter_Report(t *testing.T) {
	at := time.Date(2025, 3, 4, 5, 6, 7, 123456000, time.FixedZone("EST", -5*3600))
	r := NewReporter(
		WithResolver(func(context.Context) (string, error) { return "10.1.2.3", nil }),
		WithClock(func() time.Time { return at }),
	)

	echo := "hi"
	h := r.Report(context.Background(), &echo, nil)

	require.Equal(t, Health{
		Status:        200,
		StatusMessage: "OK",
		Timestamp:     "2025-03-04T10:06:07.123456Z",
		IPAddress:     "10.1.2.3",
		Echo:          &echo,
		PathEcho:      nil,
	}, h)
}

func TestReporter_ReportPathEcho(t *testing.T) {
	r := NewReporter(WithResolver(func(context.Context) (string, error) { return "10.1.2.3", nil }))

	pathEcho := "foo"
	h := r.Report(context.Background(), nil, &pathEcho)

	require.Nil(t, h.Echo)
	require.Equal(t, "foo", *h.PathEcho)

	_, err := time.Parse(TimestampLayout, h.Timestamp)
	require.NoError(t, err)
}

func TestReporter_ResolveFailureFallsBack(t *testing.T) {
	r := NewReporter(WithResolver(func(context.Context) (string, error) {
		return "", errors.New("no dns")
	}))

	h := r.Report(context.Background(), nil, nil)
	require.Equal(t, "127.0.0.1", h.IPAddress)
	require.Equal(t, 200, h.Status)
}
