// Package resilience содержит повтор операций с экспоненциальной задержкой
// и автоматический выключатель для ненадежных зависимостей.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"mesto/pkg/logger"
)

// Константы для логирования.
const (
	LogRetryAttempt     = "operation failed, retrying"
	LogRetrySuccess     = "operation succeeded after retry"
	LogRetryMaxAttempts = "retry attempts exhausted"
)

// ErrRetryCanceled возвращается, если контекст отменен во время ожидания следующей попытки.
var ErrRetryCanceled = errors.New("retry canceled")

// RetryConfig содержит настройки повторов.
type RetryConfig struct {
	// MaxAttempts - количество попыток, включая первую.
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Factor         float64

	// Retryable решает, стоит ли повторять операцию после ошибки. nil - повторять всегда,
	// кроме отмены контекста.
	Retryable func(error) bool
}

// DefaultRetryConfig возвращает настройки по умолчанию.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     5 * time.Second,
		Factor:         2,
	}
}

func (c RetryConfig) retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if c.Retryable == nil {
		return true
	}
	return c.Retryable(err)
}

// Retry выполняет op, пока она не завершится успешно, не вернет неповторяемую ошибку
// или не закончатся попытки. Возвращается последняя ошибка op.
func Retry(ctx context.Context, name string, cfg RetryConfig, op func(context.Context) error) error {
	log := logger.Log(ctx).With(zap.String("operation", name))

	attempts := max(cfg.MaxAttempts, 1)
	backoff := cfg.InitialBackoff

	var err error
	for attempt := 1; ; attempt++ {
		if err = op(ctx); err == nil {
			if attempt > 1 {
				log.Info(ctx, LogRetrySuccess, zap.Int("attempts", attempt))
			}
			return nil
		}

		if !cfg.retryable(err) {
			return err
		}
		if attempt >= attempts {
			log.Warn(ctx, LogRetryMaxAttempts, zap.Int("attempts", attempt), zap.Error(err))
			return err
		}

		log.Info(ctx, LogRetryAttempt,
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err))

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w: %w", ErrRetryCanceled, errors.Join(ctx.Err(), err))
		}

		backoff = nextBackoff(backoff, cfg)
	}
}

func nextBackoff(current time.Duration, cfg RetryConfig) time.Duration {
	if cfg.Factor <= 1 {
		return current
	}
	next := time.Duration(float64(current) * cfg.Factor)
	if cfg.MaxBackoff > 0 && next > cfg.MaxBackoff {
		return cfg.MaxBackoff
	}
	return next
}
