package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore, KeyValueStore arayüzünün Redis üzerindeki gerçeklemesidir.
// Belgeler süresiz saklanır; zaman aşımı yalnızca işlemin kendisine uygulanır.
type RedisStore struct {
	client           *redis.Client
	operationTimeout time.Duration
}

func NewRedisStore(client *redis.Client, operationTimeout time.Duration) *RedisStore {
	return &RedisStore{
		client:           client,
		operationTimeout: operationTimeout,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("depodan okunamadı: %w", err)
	}

	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("depoya yazılamadı: %w", err)
	}

	return nil
}
