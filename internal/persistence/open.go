package persistence

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/thenoetrevino/folio/internal/config"
	"github.com/thenoetrevino/folio/internal/database"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenSlot builds the slot selected by the storage config.
// The returned closer releases the backend connection.
func OpenSlot(ctx context.Context, cfg config.StorageConfig) (Slot, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendSQLite, "":
		db, err := database.InitDB(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return database.NewSlotRepository(db), db, nil

	case config.BackendPostgres:
		db, err := database.InitPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		return database.NewPostgresSlotRepository(db), db, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}
		slot := NewRedisSlot(client)
		return slot, slot, nil

	case config.BackendFile:
		dir := cfg.FileDir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, nil, fmt.Errorf("failed to get home directory: %w", err)
			}
			dir = filepath.Join(home, ".folio", "slots")
		}
		return NewFileSlot(dir), nopCloser{}, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q (must be: sqlite, postgres, redis, file)", cfg.Backend)
}
