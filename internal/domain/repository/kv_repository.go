package repository

import (
	"context"
	"time"
)

// KVRepository определяет методы для работы с key-value хранилищем.
// Используется и как персистентное хранилище снимков истории поиска,
// и как кеш ответов автодополнения.
type KVRepository interface {
	// Get получает значение по ключу; (nil, nil) при отсутствии ключа
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение с TTL; ttl=0 означает без истечения
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение по ключу
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)
}
