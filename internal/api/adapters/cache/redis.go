// Package cache содержит кэш профилей на Redis и декораторы репозиториев поверх него.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"mesto/internal/api/config"
	"mesto/internal/api/ports/cache"
	"mesto/pkg/logger"
)

// Сообщения об ошибках Redis.
const (
	ErrorFailedToConnect = "failed to connect to redis"
	ErrorFailedToGet     = "failed to get value from redis"
	ErrorFailedToSet     = "failed to set value in redis"
	ErrorFailedToDelete  = "failed to delete value from redis"
	ErrorFailedToClose   = "failed to close redis connection"
)

// RedisCache хранит строковые значения в Redis.
type RedisCache struct {
	client     *redis.Client
	defaultTTL time.Duration
}

func redisOptions(cfg *config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:            cfg.GetAddress(),
		Password:        cfg.Password,
		DB:              cfg.DB,
		DialTimeout:     cfg.ConnectTimeout,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdle,
		ConnMaxIdleTime: cfg.IdleTimeout,
		ConnMaxLifetime: cfg.MaxConnLifetime,
	}
}

// NewRedisCache подключается к Redis и проверяет соединение PING.
func NewRedisCache(ctx context.Context, cfg *config.RedisConfig) (cache.Cache, error) {
	client := redis.NewClient(redisOptions(cfg))

	if err := client.Ping(ctx).Err(); err != nil {
		if closeErr := client.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
		return nil, fmt.Errorf("%s %s: %w", ErrorFailedToConnect, cfg.GetAddress(), err)
	}

	return &RedisCache{client: client, defaultTTL: cfg.DefaultTTL}, nil
}

// Get возвращает значение ключа или пустую строку, если ключа нет.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", nil
	case err != nil:
		return "", c.fail(ctx, ErrorFailedToGet, key, err)
	}
	return value, nil
}

// Set сохраняет значение на ttl, а при нулевом ttl на REDIS_DEFAULT_TTL.
func (c *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return c.fail(ctx, ErrorFailedToSet, key, err)
	}
	return nil
}

// SetNX сохраняет значение, если ключа еще нет. TTL выбирается так же, как в Set.
func (c *RedisCache) SetNX(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	stored, err := c.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, c.fail(ctx, ErrorFailedToSet, key, err)
	}
	return stored, nil
}

// Delete удаляет ключ. Удаление отсутствующего ключа успешно.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return c.fail(ctx, ErrorFailedToDelete, key, err)
	}
	return nil
}

// Close закрывает пул соединений.
func (c *RedisCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}

func (c *RedisCache) fail(ctx context.Context, msg, key string, err error) error {
	logger.Log(ctx).Warn(ctx, msg, zap.String("key", key), zap.Error(err))
	return fmt.Errorf("%s: %w", msg, err)
}
