package infrastructure

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisService caches issued access tokens for fast lookups. The cache is an
// optional fast path: a nil client disables it and every method degrades to a
// no-op, so the service runs without Redis.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(addr, password string, db int) *RedisService {
	if addr == "" {
		return &RedisService{client: nil}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis connection failed, token cache disabled: %v", err)
		return &RedisService{client: nil}
	}

	log.Printf("✅ Connected to Redis at %s", addr)
	return &RedisService{client: client}
}

func (r *RedisService) SetToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, "token:"+token, userID, ttl).Err()
}

func (r *RedisService) GetToken(ctx context.Context, token string) (string, error) {
	if r.client == nil {
		return "", redis.Nil
	}
	return r.client.Get(ctx, "token:"+token).Result()
}

func (r *RedisService) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
