package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	httpmiddleware "github.com/wolfeidau/records/internal/http"
)

func TestMiddleware_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	handler := httpmiddleware.Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// the request scoped logger is available to handlers
			require.NotEqual(t, zerolog.Disabled, zerolog.Ctx(r.Context()).GetLevel())
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("ok"))
		}),
		httpmiddleware.ClientIPMiddleware(),
		Middleware(log),
	)

	r := httptest.NewRequest(http.MethodPost, "/organizations", nil)
	r.Header.Set("X-Real-IP", "192.0.2.10")
	handler.ServeHTTP(httptest.NewRecorder(), r)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "http request", entry["message"])
	require.Equal(t, "POST", entry["method"])
	require.Equal(t, "/organizations", entry["path"])
	require.Equal(t, "192.0.2.10", entry["addr"])
	require.EqualValues(t, http.StatusCreated, entry["status"])
	require.EqualValues(t, 2, entry["bytes"])
	require.Equal(t, "info", entry["level"])
}

func TestMiddleware_ServerErrorsLogAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	handler := Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "error", entry["level"])
}

func TestSetup(t *testing.T) {
	require.Equal(t, zerolog.InfoLevel, Setup(false).GetLevel())
	require.Equal(t, zerolog.DebugLevel, Setup(true).GetLevel())
}
