package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"mesto/internal/api/domain/apperr"
	"mesto/pkg/logger"
)

// LogServerPanic - сообщение о перехваченной панике.
const LogServerPanic = "server panic"

// NewRecoveryMiddleware превращает панику обработчика в ошибку Internal.
func NewRecoveryMiddleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				ctx := RequestContext(c)
				logger.Log(ctx).Error(ctx, LogServerPanic,
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(debug.Stack())),
				)
				err = apperr.Internal(fmt.Errorf("panic: %v", r))
			}
		}()

		return c.Next()
	}
}
