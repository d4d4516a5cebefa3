package usecase

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/domain/repository"
)

// NewSelectionPublisher возвращает подписчика выбора, публикующего событие
// в Redis Stream при каждой мутации выбранного места. Map-коллаборатор
// читает стрим, чтобы переместить viewport и установить маркер, поэтому
// повторный выбор того же места публикуется заново: потребитель мог
// уйти от точки. Очистка выбора события не порождает.
//
// Публикация best-effort: сбой логируется, но не влияет на состояние истории.
func NewSelectionPublisher(
	streamRepo repository.StreamRepository,
	clock clockwork.Clock,
	logger *zap.Logger,
) func(*domain.Place) {
	return func(selected *domain.Place) {
		if selected == nil {
			return
		}

		event := domain.PlaceSelectedEvent{
			PlaceID:    selected.ID,
			Name:       selected.Name,
			Lat:        selected.Location.Lat,
			Lon:        selected.Location.Lon,
			SelectedAt: clock.Now(),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := streamRepo.PublishToStream(ctx, domain.StreamPlaceSelected, event); err != nil {
			logger.Warn("Failed to publish place selected event",
				zap.String("place_id", event.PlaceID),
				zap.Error(err))
		}
	}
}
