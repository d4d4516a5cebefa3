package geoip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/config"
	"github.com/place-search-service/internal/domain"
)

func newTestClient(baseURL string) *client {
	logger, _ := zap.NewDevelopment()
	cfg := &config.GeoConfig{
		BaseURL:        baseURL,
		RequestTimeout: 5,
		DefaultLat:     37.7749,
		DefaultLon:     -122.4194,
	}
	return NewGeoIPClient(cfg, logger).(*client)
}

func TestClient_CurrentCoordinates(t *testing.T) {
	ctx := context.Background()
	fallback := domain.Coordinate{Lat: 37.7749, Lon: -122.4194}

	t.Run("successful lookup", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/json/203.0.113.7", r.URL.Path)
			w.Write([]byte(`{"status": "success", "lat": 55.7558, "lon": 37.6173}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		coord := c.CurrentCoordinates(ctx, "203.0.113.7")
		assert.Equal(t, domain.Coordinate{Lat: 55.7558, Lon: 37.6173}, coord)
	})

	t.Run("empty ip returns fallback", func(t *testing.T) {
		c := newTestClient("http://localhost")
		assert.Equal(t, fallback, c.CurrentCoordinates(ctx, ""))
	})

	t.Run("no base url returns fallback", func(t *testing.T) {
		c := newTestClient("")
		assert.Equal(t, fallback, c.CurrentCoordinates(ctx, "203.0.113.7"))
	})

	t.Run("unreachable server returns fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		c := newTestClient(server.URL)
		assert.Equal(t, fallback, c.CurrentCoordinates(ctx, "203.0.113.7"))
	})

	t.Run("non-OK http status returns fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		assert.Equal(t, fallback, c.CurrentCoordinates(ctx, "203.0.113.7"))
	})

	t.Run("lookup failure status returns fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "fail"}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		assert.Equal(t, fallback, c.CurrentCoordinates(ctx, "203.0.113.7"))
	})

	t.Run("malformed body returns fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		assert.Equal(t, fallback, c.CurrentCoordinates(ctx, "203.0.113.7"))
	})

	t.Run("out of range coordinates return fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "success", "lat": 91.0, "lon": 0}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		assert.Equal(t, fallback, c.CurrentCoordinates(ctx, "203.0.113.7"))
	})
}
