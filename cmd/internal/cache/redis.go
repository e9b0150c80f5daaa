package cache

import (
	"context"
	"docbook/cmd/internal/domain/entity"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores the collection under a single redis key with no expiry.
type RedisCache struct {
	redis *redis.Client
	key   string
}

func NewRedisCache(client *redis.Client, key string) *RedisCache {
	return &RedisCache{redis: client, key: key}
}

func (r *RedisCache) Load(ctx context.Context) ([]entity.Appointment, bool, error) {
	data, err := r.redis.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get %q: %w", r.key, err)
	}

	appts, err := decode(data)
	if err != nil {
		return nil, false, err
	}
	return appts, true, nil
}

func (r *RedisCache) Save(ctx context.Context, appts []entity.Appointment) error {
	data, err := encode(appts)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("cache: set %q: %w", r.key, err)
	}
	return nil
}
