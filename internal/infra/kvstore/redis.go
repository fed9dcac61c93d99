package kvstore

import (
	"context"
	"log/slog"
	"time"

	"event-sync-service/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

func ConnectRedis(ctx context.Context, url string, logger *slog.Logger) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse redis URL")
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, errs.Wrap(err, "failed to ping redis")
	}

	return NewRedisStore(client, logger), nil
}

func NewRedisStore(client *redis.Client, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errs.Is(err, redis.Nil) {
			return "", notFound(s.logger, key)
		}
		return "", failure(s.logger, "failed to read key "+key, err)
	}
	return value, nil
}

// Set stores the value without expiry.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return failure(s.logger, "failed to write key "+key, err)
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return failure(s.logger, "failed to remove key "+key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
