package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultSubmissionTTL = 24 * time.Hour

// RedisAdapter records cart submissions so one session never calls the
// add-to-cart procedure twice.
type RedisAdapter struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAdapter(client *redis.Client, ttl time.Duration) *RedisAdapter {
	if ttl <= 0 {
		ttl = DefaultSubmissionTTL
	}
	return &RedisAdapter{client: client, ttl: ttl}
}

func (r *RedisAdapter) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := r.client.SetNX(ctx, key, time.Now().Unix(), r.ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// NoopGuard accepts every claim. Used when no Redis address is configured.
type NoopGuard struct{}

func (NoopGuard) Claim(ctx context.Context, key string) (bool, error) {
	return true, nil
}
