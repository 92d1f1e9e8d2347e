package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) (*RedisCache, error) {
	if client == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

func (r *RedisCache) Get(ctx context.Context, bookID string) ([]string, error) {
	data, err := r.client.Get(ctx, cacheKey(bookID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var bookIDs []string
	if err := json.Unmarshal(data, &bookIDs); err != nil {
		return nil, fmt.Errorf("unmarshal ids: %w", err)
	}

	return bookIDs, nil
}

func (r *RedisCache) Set(ctx context.Context, bookID string, bookIDs []string) error {
	data, err := json.Marshal(bookIDs)
	if err != nil {
		return fmt.Errorf("marshal ids: %w", err)
	}

	if err := r.client.Set(ctx, cacheKey(bookID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func cacheKey(bookID string) string {
	return fmt.Sprintf("recs:%s", bookID)
}
