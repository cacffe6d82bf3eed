package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"mesto/internal/api/app/dto"
	"mesto/internal/api/app/http/middleware"
	"mesto/internal/api/domain/apperr"
	"mesto/pkg/logger"
)

// Константы для логирования.
const (
	LogServerError = "request failed with server error"
	LogClientError = "request rejected"
)

// ErrorHandler - единственное место, где ошибка превращается в ответ { "message": ... }.
// Неизвестные ошибки отдаются как 500 без подробностей.
func ErrorHandler(c fiber.Ctx, err error) error {
	ctx := middleware.RequestContext(c)
	status, message := Normalize(err)

	log := logger.Log(ctx).With(zap.Int("status", status), zap.String("path", c.Path()))
	if status >= fiber.StatusInternalServerError {
		log.Error(ctx, LogServerError, zap.Error(err))
	} else {
		log.Debug(ctx, LogClientError, zap.Error(err))
	}

	if err := c.Status(status).JSON(dto.MessageResponse{Message: message}); err != nil {
		return fmt.Errorf("sending error response: %w", err)
	}
	return nil
}

// Normalize возвращает HTTP-статус и сообщение для клиента.
func Normalize(err error) (int, string) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return appErr.Status(), appErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch {
		case fiberErr.Code == fiber.StatusNotFound:
			return fiber.StatusNotFound, apperr.MsgRouteNotFound
		case fiberErr.Code >= fiber.StatusBadRequest && fiberErr.Code < fiber.StatusInternalServerError:
			return fiberErr.Code, fiberErr.Message
		}
	}

	return fiber.StatusInternalServerError, apperr.MsgInternal
}
