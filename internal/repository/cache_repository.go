package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ahmedzein1234/legaldocs-sub005/config"
	"github.com/ahmedzein1234/legaldocs-sub005/internal/util"
)

// CacheRepository adapts Redis to the ports.KeyValueStore contract the
// shared rate-limit backend runs on.
type CacheRepository struct {
	client *config.RedisClient
}

func NewCacheRepository(rdb *config.RedisClient) *CacheRepository {
	return &CacheRepository{rdb}
}

func (r *CacheRepository) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil // absent or expired
	} else if err != nil {
		return "", false, util.LogError("failed to read key from redis", err)
	}
	return val, true, nil
}

func (r *CacheRepository) PutWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := r.client.Client.Set(ctx, key, value, ttl).Err(); err != nil {
		return util.LogError("failed to write key to redis", err)
	}
	return nil
}
