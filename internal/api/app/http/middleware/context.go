// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

type localsKey int

const (
	requestCtxKey localsKey = iota
	userIDKey
	bodyKey
)

// RequestContext возвращает контекст запроса с request_id.
func RequestContext(c fiber.Ctx) context.Context {
	if ctx, ok := c.Locals(requestCtxKey).(context.Context); ok {
		return ctx
	}
	return c.Context()
}

// UserID возвращает идентификатор пользователя, установленный NewAuthMiddleware.
func UserID(c fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
