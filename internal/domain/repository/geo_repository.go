package repository

import (
	"context"

	"github.com/place-search-service/internal/domain"
)

// GeoRepository определяет методы для определения местоположения клиента.
// Реализации никогда не возвращают ошибку: при любом сбое подставляются
// координаты по умолчанию (fail open).
type GeoRepository interface {
	// CurrentCoordinates возвращает последние известные координаты клиента
	// по его IP-адресу либо координаты по умолчанию
	CurrentCoordinates(ctx context.Context, clientIP string) domain.Coordinate
}
