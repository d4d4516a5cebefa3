package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/place-search-service/internal/domain/repository"
	"go.uber.org/zap"
)

type kvRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewKVRepository создает Postgres-реализацию key-value хранилища снимков.
// Альтернативный backend для истории поиска (HISTORY_STORAGE_BACKEND=postgres);
// TTL здесь игнорируется - снимки истории живут до явного удаления.
//
// Схема:
//
//	CREATE TABLE IF NOT EXISTS kv_snapshots (
//	    key        TEXT PRIMARY KEY,
//	    value      BYTEA NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
func NewKVRepository(db *DB) repository.KVRepository {
	return &kvRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.GetContext(ctx, &value,
		`SELECT value FROM kv_snapshots WHERE key = $1`, key)
	if err == sql.ErrNoRows {
		return nil, nil // Key miss
	}
	if err != nil {
		r.logger.Error("Failed to get snapshot", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("kv get error: %w", err)
	}

	return value, nil
}

func (r *kvRepository) Set(ctx context.Context, key string, value []byte, _ time.Duration) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv_snapshots (key, value, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	if err != nil {
		r.logger.Error("Failed to upsert snapshot", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("kv set error: %w", err)
	}

	r.logger.Debug("Snapshot stored", zap.String("key", key))
	return nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM kv_snapshots WHERE key = $1`, key)
	if err != nil {
		r.logger.Error("Failed to delete snapshot", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("kv delete error: %w", err)
	}

	return nil
}

func (r *kvRepository) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM kv_snapshots WHERE key = $1)`, key)
	if err != nil {
		r.logger.Error("Failed to check snapshot existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("kv exists error: %w", err)
	}

	return exists, nil
}
