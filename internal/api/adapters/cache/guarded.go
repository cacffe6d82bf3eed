package cache

import (
	"context"
	"time"

	"mesto/internal/api/ports/cache"
	"mesto/pkg/resilience"
)

// GuardedCache пропускает чтение и запись через выключатель: после серии ошибок
// Redis запросы идут сразу в хранилище, пока выключатель не замкнется.
type GuardedCache struct {
	next    cache.Cache
	breaker *resilience.Breaker
}

// NewGuardedCache оборачивает next выключателем b.
func NewGuardedCache(next cache.Cache, b *resilience.Breaker) cache.Cache {
	return &GuardedCache{next: next, breaker: b}
}

// Get читает значение, если выключатель замкнут.
func (g *GuardedCache) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := g.breaker.Do(ctx, func() error {
		var err error
		value, err = g.next.Get(ctx, key)
		return err
	})
	return value, err
}

// Set записывает значение, если выключатель замкнут.
func (g *GuardedCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return g.breaker.Do(ctx, func() error {
		return g.next.Set(ctx, key, value, ttl)
	})
}

// SetNX записывает отсутствующее значение, если выключатель замкнут.
func (g *GuardedCache) SetNX(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	var stored bool
	err := g.breaker.Do(ctx, func() error {
		var err error
		stored, err = g.next.SetNX(ctx, key, value, ttl)
		return err
	})
	return stored, err
}

// Delete удаляет значение в обход выключателя.
func (g *GuardedCache) Delete(ctx context.Context, key string) error {
	return g.next.Delete(ctx, key)
}

// Close закрывает обернутый кэш.
func (g *GuardedCache) Close() error {
	return g.next.Close()
}
