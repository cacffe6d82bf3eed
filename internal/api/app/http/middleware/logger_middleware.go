package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"mesto/pkg/logger"
)

// Константы для логирования.
const (
	LogRequestStarted   = "request started"
	LogRequestCompleted = "request completed"
	LogRequestFailed    = "request failed"
	LogErrorHandler     = "error handler failed"
)

// NewLoggerMiddleware логирует запросы. Ошибка цепочки передается в ErrorHandler
// приложения здесь, чтобы в лог попал итоговый статус ответа.
func NewLoggerMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		ctx := RequestContext(c)
		start := time.Now()

		log := logger.Log(ctx).With(
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
			zap.String("ip", c.IP()),
		)
		log.Debug(ctx, LogRequestStarted)

		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				log.Error(ctx, LogErrorHandler, zap.Error(err))
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		fields := []zap.Field{
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}
		if chainErr != nil {
			log.Info(ctx, LogRequestFailed, append(fields, zap.Error(chainErr))...)
			return nil
		}

		log.Info(ctx, LogRequestCompleted, fields...)
		return nil
	}
}
