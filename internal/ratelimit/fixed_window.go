package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var incrWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// FixedWindow counts calls per key within fixed time windows, shared
// across instances through redis.
type FixedWindow struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewFixedWindow(client *redis.Client, prefix string, limit int, window time.Duration) (*FixedWindow, error) {
	if client == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if limit <= 0 || window <= 0 {
		return nil, fmt.Errorf("limit and window must be positive")
	}
	if prefix == "" {
		prefix = "ratelimit"
	}

	return &FixedWindow{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}, nil
}

// Allow reports whether the key is within quota. Redis failures fail
// closed.
func (fw *FixedWindow) Allow(ctx context.Context, key string) bool {
	windowMs := fw.window.Milliseconds()
	slot := time.Now().UTC().UnixMilli() / windowMs
	redisKey := fmt.Sprintf("%s:%s:%d", fw.prefix, key, slot)

	count, err := incrWindowScript.Run(ctx, fw.client, []string{redisKey}, windowMs).Int64()
	if err != nil {
		return false
	}

	return count <= int64(fw.limit)
}
