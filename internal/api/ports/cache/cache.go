// Package cache определяет интерфейсы для кэширования.
package cache

import (
	"context"
	"time"
)

// Cache определяет интерфейс для работы с кэшем. Промах возвращает пустую строку без ошибки.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// SetNX сохраняет значение, только если ключа нет. true означает, что запись состоялась.
	SetNX(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)

	Delete(ctx context.Context, key string) error

	Close() error
}
