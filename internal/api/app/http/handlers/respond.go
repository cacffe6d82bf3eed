// Package handlers содержит HTTP обработчики пользователей и карточек.
package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
)

func respond(c fiber.Ctx, status int, body any) error {
	if err := c.Status(status).JSON(body); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
