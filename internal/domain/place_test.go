package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinate_Valid(t *testing.T) {
	valid := []Coordinate{
		{Lat: 0, Lon: 0},
		{Lat: 90, Lon: 180},
		{Lat: -90, Lon: -180},
		{Lat: 55.7558, Lon: 37.6173},
	}
	for _, c := range valid {
		assert.True(t, c.Valid(), "expected %+v to be valid", c)
	}

	invalid := []Coordinate{
		{Lat: 90.0001, Lon: 0},
		{Lat: -90.0001, Lon: 0},
		{Lat: 0, Lon: 180.0001},
		{Lat: 0, Lon: -180.0001},
		{Lat: math.NaN(), Lon: 0},
		{Lat: 0, Lon: math.Inf(1)},
	}
	for _, c := range invalid {
		assert.False(t, c.Valid(), "expected %+v to be invalid", c)
	}
}

func TestNewPlace(t *testing.T) {
	t.Run("valid place", func(t *testing.T) {
		place, err := NewPlace("p1", "Coffee Mania", "Moscow", Coordinate{Lat: 55.7558, Lon: 37.6173}, 1700000000000)
		require.NoError(t, err)
		assert.Equal(t, "p1", place.ID)
		assert.Equal(t, "Coffee Mania", place.Name)
		assert.Equal(t, int64(1700000000000), place.Timestamp)
		assert.Zero(t, place.Rating)
		assert.Nil(t, place.Photos)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := NewPlace("", "Coffee Mania", "Moscow", Coordinate{Lat: 1, Lon: 1}, 0)
		assert.Error(t, err)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		_, err := NewPlace("p1", "Coffee Mania", "Moscow", Coordinate{Lat: 200, Lon: 0}, 0)
		assert.Error(t, err)
	})
}

func TestPlace_WithEnrichment(t *testing.T) {
	base, err := NewPlace("p1", "Coffee Mania", "Moscow", Coordinate{Lat: 55.7558, Lon: 37.6173}, 1700000000000)
	require.NoError(t, err)

	t.Run("fills optional fields", func(t *testing.T) {
		openNow := true
		enriched := base.WithEnrichment(
			"+7 495 000-00-00",
			"https://coffeemania.ru",
			4.7,
			&OpeningHours{OpenNow: &openNow, WeekdayText: []string{"Mon: 8-22"}},
			[]string{"photo1", "photo2"},
		)

		assert.Equal(t, "+7 495 000-00-00", enriched.Phone)
		assert.Equal(t, "https://coffeemania.ru", enriched.Website)
		assert.Equal(t, 4.7, enriched.Rating)
		require.NotNil(t, enriched.OpeningHours)
		assert.Len(t, enriched.Photos, 2)

		// Base place stays untouched
		assert.Empty(t, base.Phone)
		assert.Zero(t, base.Rating)
	})

	t.Run("clamps rating into range", func(t *testing.T) {
		assert.Equal(t, 5.0, base.WithEnrichment("", "", 9.3, nil, nil).Rating)
		assert.Equal(t, 0.0, base.WithEnrichment("", "", -1, nil, nil).Rating)
	})

	t.Run("truncates photos to limit", func(t *testing.T) {
		photos := []string{"a", "b", "c", "d", "e"}
		enriched := base.WithEnrichment("", "", 4, nil, photos)
		require.Len(t, enriched.Photos, MaxPlacePhotos)
		assert.Equal(t, []string{"a", "b", "c"}, enriched.Photos)
	})
}
