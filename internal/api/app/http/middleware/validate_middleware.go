package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"mesto/internal/api/app/dto"
	"mesto/internal/api/domain/apperr"
)

// ErrMissingBody возвращается, если обработчик запрошен без ValidateBody.
var ErrMissingBody = errors.New("validated body is missing")

// ValidateBody разбирает JSON-тело в T и проверяет его правилами валидатора.
// При ошибке обработчик не вызывается.
func ValidateBody[T any](v *validator.Validate) fiber.Handler {
	return func(c fiber.Ctx) error {
		req := new(T)
		if err := c.Bind().JSON(req); err != nil {
			return apperr.Wrap(apperr.KindBadRequest, apperr.MsgBadRequest, err)
		}
		if err := v.Struct(req); err != nil {
			return violation(err)
		}

		c.Locals(bodyKey, req)
		return c.Next()
	}
}

// ValidateObjectID проверяет, что параметр пути name - 24 шестнадцатеричных символа.
func ValidateObjectID(v *validator.Validate, name string) fiber.Handler {
	rule := "required," + dto.TagObjectID
	return func(c fiber.Ctx) error {
		if err := v.Var(c.Params(name), rule); err != nil {
			return apperr.Wrap(apperr.KindBadRequest,
				fmt.Sprintf("%s: %s (%s)", apperr.MsgBadRequest, name, dto.TagObjectID), err)
		}
		return c.Next()
	}
}

// Body возвращает тело, проверенное ValidateBody.
func Body[T any](c fiber.Ctx) (*T, error) {
	req, ok := c.Locals(bodyKey).(*T)
	if !ok {
		return nil, apperr.Internal(ErrMissingBody)
	}
	return req, nil
}

func violation(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperr.Wrap(apperr.KindBadRequest, apperr.MsgBadRequest, err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}

	return apperr.Wrap(apperr.KindBadRequest, apperr.MsgBadRequest+": "+strings.Join(fields, ", "), err)
}
