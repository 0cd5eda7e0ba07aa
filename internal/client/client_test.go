package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolfeidau/records/internal/health"
	"github.com/wolfeidau/records/internal/models"
	"github.com/wolfeidau/records/internal/server"
	"github.com/wolfeidau/records/internal/store"
	"github.com/wolfeidau/records/internal/store/memory"
	"github.com/wolfeidau/records/internal/validation"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c := New(Config{ServerURL: ts.URL, Timeout: 5 * time.Second, MaxRetries: 3})
	c.retryInterval = time.Millisecond

	return c
}

func newRecordsHandler(t *testing.T) http.Handler {
	t.Helper()

	validator, err := validation.NewValidator()
	require.NoError(t, err)

	reporter := health.NewReporter(
		health.WithResolver(func(context.Context) (string, error) { return "10.0.0.5", nil }),
	)

	return server.NewServer(memory.NewStores(), validator, reporter).Handler()
}

func TestClient_organizationRoundTrip(t *testing.T) {
	c := newTestClient(t, newRecordsHandler(t))
	ctx := context.Background()

	created, err := c.CreateOrganization(ctx, models.OrganizationCreate{Name: "Lab"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := c.GetOrganization(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Lab", got.Name)

	name := "Lab"
	listed, err := c.ListOrganizations(ctx, store.OrganizationFilter{Name: &name})
	require.NoError(t, err)
	require.Len(t, listed, 1)

	other := "Other"
	listed, err = c.ListOrganizations(ctx, store.OrganizationFilter{Name: &other})
	require.NoError(t, err)
	require.Empty(t, listed)

	updated, err := c.UpdateOrganization(ctx, created.ID, models.OrganizationUpdate{
		Description: models.Some("x"),
	})
	require.NoError(t, err)
	require.Equal(t, "Lab", updated.Name)
	require.Equal(t, "x", *updated.Description)
}

func TestClient_personWithoutAddresses(t *testing.T) {
	c := newTestClient(t, newRecordsHandler(t))

	p, err := c.CreatePerson(context.Background(), models.PersonCreate{
		UNI:       "ab1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, p.Addresses)
	require.Empty(t, p.Addresses)
}

func TestClient_apiErrors(t *testing.T) {
	c := newTestClient(t, newRecordsHandler(t))
	ctx := context.Background()

	_, err := c.GetProject(ctx, uuid.New())
	require.Error(t, err)
	require.True(t, IsNotFound(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Project not found", apiErr.Detail)

	_, err = c.CreateAddress(ctx, models.AddressCreate{Street: "1 Main St"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Errors)
}

func TestClient_health(t *testing.T) {
	c := newTestClient(t, newRecordsHandler(t))

	h, err := c.Health(context.Background(), "hi", "foo")
	require.NoError(t, err)
	require.Equal(t, "OK", h.StatusMessage)
	require.Equal(t, "hi", *h.Echo)
	require.Equal(t, "foo", *h.PathEcho)
	require.Equal(t, "10.0.0.5", h.IPAddress)
}

func TestClient_retriesGetOnUnavailable(t *testing.T) {
	var calls atomic.Int32

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	got, err := c.ListProjects(context.Background(), store.ProjectFilter{})
	require.NoError(t, err)
	require.Empty(t, got)
	require.Equal(t, int32(3), calls.Load())
}

func TestClient_givesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.GetAddress(context.Background(), uuid.New())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, int32(4), calls.Load())
}

func TestClient_doesNotRetryWrites(t *testing.T) {
	var calls atomic.Int32

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := c.CreateProject(context.Background(), models.ProjectCreate{Title: "t"})
	require.Error(t, err)
	require.Equal(t, int32(1), calls.Load())
}

func TestClient_encodeFilterOmitsUnset(t *testing.T) {
	c := New(DefaultConfig())

	city := "Paris"
	query, err := c.encodeFilter(&store.PersonFilter{City: &city})
	require.NoError(t, err)
	require.Equal(t, "city=Paris", query.Encode())
}
