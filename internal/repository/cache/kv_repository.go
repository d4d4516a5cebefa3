package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/place-search-service/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type kvRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewKVRepository создает Redis-реализацию key-value хранилища.
// Хранит снимки истории поиска (без TTL) и кеш ответов автодополнения (с TTL).
func NewKVRepository(redis *Redis) repository.KVRepository {
	return &kvRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Key miss
	}
	if err != nil {
		r.logger.Error("Failed to get from kv store", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("kv get error: %w", err)
	}

	r.logger.Debug("KV hit", zap.String("key", key))
	return val, nil
}

func (r *kvRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set kv value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("kv set error: %w", err)
	}

	r.logger.Debug("KV set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from kv store", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("kv delete error: %w", err)
	}

	r.logger.Debug("KV deleted", zap.String("key", key))
	return nil
}

func (r *kvRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check kv existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("kv exists error: %w", err)
	}

	return val > 0, nil
}
