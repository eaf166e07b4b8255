package storage

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/pkg/database"
	"hotel-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Open builds the profile store selected by config. The returned func
// releases backend connections.
func Open(ctx context.Context, config *utils.Config, log *zap.Logger) (Store, func(), error) {
	noop := func() {}

	switch config.Storage.Driver {
	case DriverMemory:
		return NewMemoryStore(), noop, nil

	case DriverFile, "":
		store, err := NewFileStore(config.Storage.Path)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case DriverPostgres:
		db, err := database.InitDB(config.Database)
		if err != nil {
			return nil, noop, fmt.Errorf("connect postgres: %w", err)
		}

		store := NewPostgresStore(db, log)
		if err := store.Migrate(ctx); err != nil {
			db.Close()
			return nil, noop, err
		}

		return NewBreakerStore("postgres-store", store, log), db.Close, nil

	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()

		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("ping redis: %w", err)
		}

		closer := func() {
			if err := client.Close(); err != nil {
				log.Warn("Failed to close redis client", zap.Error(err))
			}
		}

		return NewBreakerStore("redis-store", NewRedisStore(client, log), log), closer, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}
}
