package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/config"
	"github.com/place-search-service/internal/domain"
)

func newTestClient(baseURL string) *client {
	logger, _ := zap.NewDevelopment()
	cfg := &config.PlacesConfig{
		BaseURL:        baseURL,
		APIKey:         "test_key",
		Language:       "en",
		RequestTimeout: 10,
	}
	return NewPlacesClient(cfg, logger).(*client)
}

func TestClient_Autocomplete(t *testing.T) {
	bias := domain.Coordinate{Lat: 55.7558, Lon: 37.6173}

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/place/autocomplete/json", r.URL.Path)
			assert.Equal(t, "Coffee", r.URL.Query().Get("input"))
			assert.Equal(t, "test_key", r.URL.Query().Get("key"))
			assert.Equal(t, "5000", r.URL.Query().Get("radius"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"status": "OK",
				"predictions": [
					{
						"place_id": "p1",
						"description": "Coffee Mania, Moscow",
						"structured_formatting": {"main_text": "Coffee Mania", "secondary_text": "Moscow"}
					},
					{
						"place_id": "p2",
						"description": "Coffee Bean, Moscow",
						"structured_formatting": {}
					}
				]
			}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		candidates, err := c.Autocomplete(context.Background(), "Coffee", bias, 5000)
		require.NoError(t, err)
		require.Len(t, candidates, 2)
		assert.Equal(t, "p1", candidates[0].ID)
		assert.Equal(t, "Coffee Mania", candidates[0].MainText)
		assert.Equal(t, "Moscow", candidates[0].SecondaryText)
		// Missing structured formatting falls back to description
		assert.Equal(t, "Coffee Bean, Moscow", candidates[1].MainText)
	})

	t.Run("zero results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "ZERO_RESULTS", "predictions": []}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		candidates, err := c.Autocomplete(context.Background(), "zzzzzz", bias, 5000)
		require.NoError(t, err)
		assert.Empty(t, candidates)
		assert.NotNil(t, candidates)
	})

	t.Run("empty input", func(t *testing.T) {
		c := newTestClient("http://localhost")
		candidates, err := c.Autocomplete(context.Background(), "", bias, 5000)
		assert.Error(t, err)
		assert.Nil(t, candidates)
	})

	t.Run("non-OK api status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		candidates, err := c.Autocomplete(context.Background(), "Coffee", bias, 5000)
		assert.Error(t, err)
		assert.Nil(t, candidates)
		assert.Contains(t, err.Error(), "REQUEST_DENIED")
	})

	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("bad gateway"))
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		candidates, err := c.Autocomplete(context.Background(), "Coffee", bias, 5000)
		assert.Error(t, err)
		assert.Nil(t, candidates)
		assert.Contains(t, err.Error(), "places API error")
	})
}

func TestClient_GetDetails(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/place/details/json", r.URL.Path)
			assert.Equal(t, "p1", r.URL.Query().Get("place_id"))

			w.Write([]byte(`{
				"status": "OK",
				"result": {
					"place_id": "p1",
					"name": "Coffee Mania",
					"formatted_address": "Bolshaya Nikitskaya 13, Moscow",
					"geometry": {"location": {"lat": 55.7561, "lng": 37.6021}},
					"formatted_phone_number": "+7 495 000-00-00",
					"website": "https://coffeemania.ru",
					"rating": 4.7,
					"opening_hours": {"open_now": true, "weekday_text": ["Monday: 8:00 - 22:00"]},
					"photos": [
						{"photo_reference": "ref1"},
						{"photo_reference": "ref2"},
						{"photo_reference": ""},
						{"photo_reference": "ref3"},
						{"photo_reference": "ref4"}
					]
				}
			}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		details, err := c.GetDetails(context.Background(), "p1")
		require.NoError(t, err)
		assert.Equal(t, "p1", details.PlaceID)
		assert.Equal(t, "Coffee Mania", details.Name)
		assert.Equal(t, "Bolshaya Nikitskaya 13, Moscow", details.FormattedAddress)
		assert.Equal(t, 55.7561, details.Location.Lat)
		assert.Equal(t, 37.6021, details.Location.Lon)
		assert.Equal(t, "+7 495 000-00-00", details.Phone)
		require.NotNil(t, details.Rating)
		assert.Equal(t, 4.7, *details.Rating)
		require.NotNil(t, details.OpeningHours)
		require.NotNil(t, details.OpeningHours.OpenNow)
		assert.True(t, *details.OpeningHours.OpenNow)

		// Empty references are skipped, result is capped at the photo limit
		require.Len(t, details.PhotoURLs, domain.MaxPlacePhotos)
		assert.Contains(t, details.PhotoURLs[0], "photo_reference=ref1")
		assert.Contains(t, details.PhotoURLs[0], "/place/photo")
	})

	t.Run("empty place id", func(t *testing.T) {
		c := newTestClient("http://localhost")
		details, err := c.GetDetails(context.Background(), "")
		assert.Error(t, err)
		assert.Nil(t, details)
	})

	t.Run("not found status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "NOT_FOUND"}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		details, err := c.GetDetails(context.Background(), "missing")
		assert.Error(t, err)
		assert.Nil(t, details)
		assert.Contains(t, err.Error(), "NOT_FOUND")
	})

	t.Run("malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		details, err := c.GetDetails(context.Background(), "p1")
		assert.Error(t, err)
		assert.Nil(t, details)
	})
}
