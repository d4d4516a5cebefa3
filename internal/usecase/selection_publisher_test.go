package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/usecase"
)

func TestSelectionPublisher(t *testing.T) {
	logger := zap.NewNop()
	fakeClock := clockwork.NewFakeClockAt(time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))

	t.Run("publishes event on selection", func(t *testing.T) {
		mockStream := &MockStreamRepository{}
		var published domain.PlaceSelectedEvent
		mockStream.On("PublishToStream", mock.Anything, domain.StreamPlaceSelected, mock.Anything).
			Run(func(args mock.Arguments) {
				published = args.Get(2).(domain.PlaceSelectedEvent)
			}).
			Return(nil)

		publish := usecase.NewSelectionPublisher(mockStream, fakeClock, logger)

		place := makePlace("p1", "Coffee Mania")
		publish(&place)

		mockStream.AssertNumberOfCalls(t, "PublishToStream", 1)
		assert.Equal(t, "p1", published.PlaceID)
		assert.Equal(t, "Coffee Mania", published.Name)
		assert.Equal(t, place.Location.Lat, published.Lat)
		assert.Equal(t, fakeClock.Now(), published.SelectedAt)
	})

	t.Run("re-selecting the same place publishes again", func(t *testing.T) {
		mockStream := &MockStreamRepository{}
		mockStream.On("PublishToStream", mock.Anything, domain.StreamPlaceSelected, mock.Anything).Return(nil)

		publish := usecase.NewSelectionPublisher(mockStream, fakeClock, logger)

		place := makePlace("p1", "Coffee Mania")
		publish(&place)
		publish(&place)

		mockStream.AssertNumberOfCalls(t, "PublishToStream", 2)
	})

	t.Run("cleared selection does not publish", func(t *testing.T) {
		mockStream := &MockStreamRepository{}

		publish := usecase.NewSelectionPublisher(mockStream, fakeClock, logger)
		publish(nil)

		mockStream.AssertNotCalled(t, "PublishToStream")
	})

	t.Run("publish failure does not panic", func(t *testing.T) {
		mockStream := &MockStreamRepository{}
		mockStream.On("PublishToStream", mock.Anything, domain.StreamPlaceSelected, mock.Anything).
			Return(errors.New("stream unavailable"))

		publish := usecase.NewSelectionPublisher(mockStream, fakeClock, logger)

		place := makePlace("p1", "Coffee Mania")
		require.NotPanics(t, func() {
			publish(&place)
		})
	})

	t.Run("wired store publishes on every select", func(t *testing.T) {
		mockKV := &MockKVRepository{}
		mockKV.On("Set", mock.Anything, testStorageKey, mock.Anything, time.Duration(0)).Return(nil)
		mockStream := &MockStreamRepository{}
		mockStream.On("PublishToStream", mock.Anything, domain.StreamPlaceSelected, mock.Anything).Return(nil)

		store := newEmptyHistory(t, mockKV, 20)
		store.SubscribeSelection(usecase.NewSelectionPublisher(mockStream, fakeClock, logger))

		place := makePlace("p1", "Coffee Mania")
		store.Select(&place)
		store.Select(&place)

		mockStream.AssertNumberOfCalls(t, "PublishToStream", 2)

		// Вставка и очистка выбор не меняют и событий не порождают
		other := makePlace("p2", "Pizza Roma")
		require.NoError(t, store.Insert(context.Background(), other))
		require.NoError(t, store.Clear(context.Background()))

		mockStream.AssertNumberOfCalls(t, "PublishToStream", 2)
	})
}
