package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gorilla/schema"
	"github.com/rs/zerolog/log"
	httpmiddleware "github.com/wolfeidau/records/internal/http"
	"github.com/wolfeidau/records/internal/validation"
)

// Config holds common client configuration
type Config struct {
	ServerURL string
	Timeout   time.Duration
	// MaxRetries is the number of times a GET request is retried after a
	// transient failure.
	MaxRetries uint
	Debug      bool
}

// DefaultConfig returns a default client configuration
func DefaultConfig() Config {
	return Config{
		ServerURL:  "http://localhost:8000",
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		Debug:      false,
	}
}

// APIError is returned when the server answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Detail     string
	Errors     []validation.FieldError
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api error: %d %s", e.StatusCode, e.Detail)
}

// Client talks to the records API.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	maxRetries    uint
	retryInterval time.Duration
	debug         bool
	filters       *schema.Encoder
}

// New creates a client with the given configuration
func New(config Config) *Client {
	return &Client{
		baseURL:       strings.TrimRight(config.ServerURL, "/"),
		httpClient:    &http.Client{Timeout: config.Timeout},
		maxRetries:    config.MaxRetries,
		retryInterval: 500 * time.Millisecond,
		debug:         config.Debug,
		filters:       schema.NewEncoder(),
	}
}

// encodeFilter converts a store filter into query parameters.
func (c *Client) encodeFilter(filter any) (url.Values, error) {
	query := url.Values{}
	if err := c.filters.Encode(filter, query); err != nil {
		return nil, fmt.Errorf("failed to encode filter: %w", err)
	}
	return query, nil
}

// do sends a request and decodes a successful JSON response into T. GET
// requests are retried on connection errors and gateway failures.
func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var zero T

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("failed to encode request: %w", err)
		}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	operation := func() (T, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, target, reader)
		if err != nil {
			return zero, backoff.Permanent(fmt.Errorf("failed to build request: %w", err))
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		if c.debug {
			log.Debug().Str("method", method).Str("url", target).Msg("Sending request")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return zero, fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return zero, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			apiErr := newAPIError(resp.StatusCode, data)
			if retryable(resp.StatusCode) {
				return zero, apiErr
			}
			return zero, backoff.Permanent(apiErr)
		}

		var out T
		if err := json.Unmarshal(data, &out); err != nil {
			return zero, backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
		}
		return out, nil
	}

	tries := uint(1)
	if method == http.MethodGet {
		tries += c.maxRetries
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryInterval

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(tries),
		backoff.WithNotify(func(err error, d time.Duration) {
			log.Debug().Err(err).Dur("wait", d).Str("url", target).Msg("Retrying request")
		}),
	)
}

func newAPIError(status int, data []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var body httpmiddleware.ErrorResponse
	if err := json.Unmarshal(data, &body); err == nil {
		apiErr.Detail = body.Detail
		apiErr.Errors = body.Errors
	}

	return apiErr
}

func retryable(status int) bool {
	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
