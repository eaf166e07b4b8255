package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisStore struct {
	client *redis.Client
	log    *zap.Logger
	prefix string
}

func NewRedisStore(client *redis.Client, log *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		log:    log.With(zap.String("store", "redis")),
		prefix: "hotel-booking:",
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		s.log.Debug("Key miss", zap.String("key", key))
		return nil, ErrNotFound
	}
	if err != nil {
		s.log.Error("Failed to read key", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("read key %s: %w", key, err)
	}

	return value, nil
}

// Set stores without expiry; profile data lives until explicitly removed.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		s.log.Error("Failed to write key", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("write key %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		s.log.Error("Failed to delete key", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("delete key %s: %w", key, err)
	}
	return nil
}
