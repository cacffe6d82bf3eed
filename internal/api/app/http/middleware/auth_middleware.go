package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"mesto/internal/api/domain/apperr"
	"mesto/internal/api/ports/api"
	"mesto/pkg/logger"
)

// Константы для логирования.
const (
	BearerPrefix = "Bearer "

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
)

// NewAuthMiddleware проверяет заголовок Authorization и сохраняет идентификатор
// пользователя для следующих обработчиков. Любой отказ возвращает Unauthorized.
func NewAuthMiddleware(auth api.AuthUseCase) fiber.Handler {
	return func(c fiber.Ctx) error {
		ctx := RequestContext(c)
		log := logger.Log(ctx).With(zap.String("middleware", "auth"))

		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			log.Debug(ctx, ErrorNoAuthHeader)
			return apperr.Unauthorized(apperr.MsgUnauthorized)
		}

		token, ok := strings.CutPrefix(header, BearerPrefix)
		if !ok {
			log.Debug(ctx, ErrorInvalidTokenFormat)
			return apperr.Unauthorized(apperr.MsgUnauthorized)
		}

		userID, err := auth.Authenticate(ctx, token)
		if err != nil {
			return apperr.Wrap(apperr.KindUnauthorized, apperr.MsgUnauthorized, err)
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}
