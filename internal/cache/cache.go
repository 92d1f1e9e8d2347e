package cache

import (
	"context"
	"errors"
)

// RecommendCache stores the recommended book ids for a given book.
type RecommendCache interface {
	Get(ctx context.Context, bookID string) ([]string, error)
	Set(ctx context.Context, bookID string, bookIDs []string) error
}

var ErrCacheMiss = errors.New("cache miss")
