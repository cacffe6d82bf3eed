package middleware

import (
	"github.com/gofiber/fiber/v3"

	"mesto/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// NewRequestIDMiddleware берет X-Request-ID из запроса или генерирует новый
// и возвращает его в ответе.
func NewRequestIDMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		ctx := logger.NewRequestIDContext(c.Context(), c.Get(HeaderRequestID))
		id, _ := logger.GetRequestID(ctx)

		c.Locals(requestCtxKey, ctx)
		c.Set(HeaderRequestID, id)

		return c.Next()
	}
}
