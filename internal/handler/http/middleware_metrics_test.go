package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-trips/internal/service"
	"github.com/MKhiriev/go-trips/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrapeMetrics(t *testing.T, h *Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	h.metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	trips := &mockTripService{
		getFn: func(_ context.Context, id int64) (models.Trip, error) {
			return models.Trip{ID: id}, nil
		},
	}
	h := newTestHandler(t, &service.Services{TripService: trips})
	router := h.Init()

	for _, target := range []string{"/api/trips/1", "/api/trips/2"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.Header.Set("Authorization", "Bearer "+testToken)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	body := scrapeMetrics(t, h)
	assert.Contains(t, body, `go_trips_http_server_requests_total{method="GET",route="/api/trips/{id}",status_code="200"} 2`)
	assert.NotContains(t, body, `route="/api/trips/1"`)
	assert.Contains(t, body, `status_code="404"`)
}

func TestWithMetrics_Unmatched(t *testing.T) {
	h := newTestHandler(t, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	rec := httptest.NewRecorder()
	h.withMetrics(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Contains(t, scrapeMetrics(t, h), `route="unmatched",status_code="418"} 1`)
}
