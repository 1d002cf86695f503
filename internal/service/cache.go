package service

import (
	"context"
	"fmt"
	"time"
)

// Cache is the best-effort read-through cache collaborator. Implementations
// degrade to a miss on backend failure; callers never fail on cache errors.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const activityCacheTTL = 5 * time.Minute

func activityCacheKey(userID uint) string {
	return fmt.Sprintf("activity:%d", userID)
}
