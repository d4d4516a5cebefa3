package repository

import (
	"context"

	"github.com/place-search-service/internal/domain"
)

// PlacesRepository определяет методы для работы с внешним places API
type PlacesRepository interface {
	// Autocomplete возвращает варианты автодополнения для текстового запроса,
	// смещенные к координатам bias в радиусе radiusMeters
	Autocomplete(
		ctx context.Context,
		input string,
		bias domain.Coordinate,
		radiusMeters int,
	) ([]domain.Candidate, error)

	// GetDetails возвращает полные сведения о месте по идентификатору кандидата
	GetDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error)
}
