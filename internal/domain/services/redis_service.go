package services

import (
	"context"
	"encoding/json"
	"time"

	"jalseva-http-service/internal/infrastructure/config"
	"jalseva-http-service/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// Cache keys and lifetimes for the hot read paths.
const (
	cacheKeyNotifications  = "notifications:all"
	cacheKeyGrampanchayats = "grampanchayats:all"
	cacheTTLNotifications  = 30 * time.Second
	cacheTTLGrampanchayats = time.Minute
)

// InterfaceRedisService defines the Redis cache interface.
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	HealthCheck() error
}

// RedisService handles Redis operations.
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service.
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warning("Redis unavailable at %s, caching disabled: %v", cfg.GetRedisAddr(), err)
	}

	return &RedisService{
		Client: client,
		Ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis with expiration.
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key.
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis.
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// HealthCheck pings the Redis server.
func (s *RedisService) HealthCheck() error {
	ctx, cancel := context.WithTimeout(s.Ctx, 2*time.Second)
	defer cancel()
	return s.Client.Ping(ctx).Err()
}
