package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// StoreReport caches a ranking report payload under the given key.
func (r *RedisClient) StoreReport(key string, payload interface{}, duration time.Duration) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := r.client.Set(r.ctx, "report:"+key, jsonData, duration).Err(); err != nil {
		return fmt.Errorf("failed to store report in Redis: %w", err)
	}

	return nil
}

// GetReport loads a cached report into dest. The second return value is
// false when the key is absent or expired.
func (r *RedisClient) GetReport(key string, dest interface{}) (bool, error) {
	data, err := r.client.Get(r.ctx, "report:"+key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get report from Redis: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return true, nil
}

// InvalidateReport drops a cached report.
func (r *RedisClient) InvalidateReport(key string) error {
	return r.client.Del(r.ctx, "report:"+key).Err()
}
