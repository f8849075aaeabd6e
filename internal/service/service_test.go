package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bogaczig73/realitypuchyr-admin/internal/api"
)

// newTestServices wires the full service set against a chi stub router so
// each test can register just the routes it exercises.
func newTestServices(t *testing.T, configure func(r chi.Router)) *Services {
	t.Helper()

	router := chi.NewRouter()
	configure(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client, err := api.New(api.Config{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Locale:  "en",
		Retry:   api.RetryPolicy{Retries: 0, Delay: time.Millisecond},
	})
	require.NoError(t, err)

	return New(client)
}

// newDeadServices returns services pointing at a server that no longer
// accepts connections.
func newDeadServices(t *testing.T) *Services {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client, err := api.New(api.Config{
		BaseURL: serverURL,
		Retry:   api.RetryPolicy{Retries: 0, Delay: time.Millisecond},
	})
	require.NoError(t, err)

	return New(client)
}

func writeJSON(t *testing.T, w http.ResponseWriter, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write([]byte(body)); err != nil {
		t.Errorf("write stub response: %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	services := newTestServices(t, func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "test-key", req.Header.Get(api.HeaderAPIKey))
			writeJSON(t, w, `{"status":"ok","timestamp":"2025-06-01T12:00:00Z","version":"1.4.0"}`)
		})
	})

	status, err := services.Health.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "1.4.0", status.Version)
}

func TestServiceErrorExposesStatusAndRetryability(t *testing.T) {
	services := newTestServices(t, func(r chi.Router) {
		r.Get("/en/properties/{id}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			writeJSON(t, w, `{"error":"Property not found"}`)
		})
	})

	_, err := services.Properties.Get(context.Background(), "en", 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch property")
	assert.Equal(t, http.StatusNotFound, Status(err))
	assert.False(t, IsRetryable(err))

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Property not found", apiErr.Message)
}

func TestStatusOnNonAPIError(t *testing.T) {
	assert.Equal(t, 0, Status(assert.AnError))
	assert.False(t, IsRetryable(assert.AnError))
}
