package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKV implements KV backed by Redis. Values never expire; the
// set-if-absent path uses SETNX so concurrent writers converge on the
// first value written.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV builds a Redis-backed key-value store.
func NewRedisKV(addr, password string) *RedisKV {
	return &RedisKV{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

// Get resolves a key, reporting a miss as (_, false, nil).
func (s *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// SetIfAbsent writes the value only when the key does not exist yet.
func (s *RedisKV) SetIfAbsent(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return s.client.SetNX(ctx, key, value, 0).Err()
}
