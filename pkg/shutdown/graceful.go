// Package shutdown предоставляет функциональность для корректного завершения приложения
// путем ожидания и обработки сигналов SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"mesto/pkg/logger"
)

// Hook освобождает ресурс при завершении работы.
type Hook func(context.Context) error

const (
	logSignalReceived = "shutdown signal received"
	logHookFailed     = "shutdown hook failed"
	logTimeoutReached = "shutdown timeout reached, some hooks did not finish"
)

// Wait блокирует выполнение до получения SIGINT/SIGTERM или отмены ctx,
// затем параллельно выполняет все хуки в рамках timeout.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		logger.Log(ctx).Info(ctx, logSignalReceived, zap.String("signal", sig.String()))
	case <-ctx.Done():
		logger.Log(ctx).Info(ctx, logSignalReceived, zap.Error(ctx.Err()))
	}

	Run(context.WithoutCancel(ctx), timeout, hooks...)
}

// Run выполняет хуки параллельно и возвращается, когда все завершены или истек timeout.
func Run(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	hookCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, hook := range hooks {
		wg.Add(1)
		go func(fn Hook) {
			defer wg.Done()
			if err := fn(hookCtx); err != nil {
				logger.Log(ctx).Error(ctx, logHookFailed, zap.Error(err))
			}
		}(hook)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-hookCtx.Done():
		logger.Log(ctx).Warn(ctx, logTimeoutReached)
	}
}
