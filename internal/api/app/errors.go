// Package app содержит сценарии использования сервиса mesto.
package app

import (
	"errors"

	"mesto/internal/api/domain/apperr"
	"mesto/internal/api/domain/entities"
)

// classify переводит доменные ошибки хранилища в классифицированные ошибки приложения.
// notFound - сообщение для отсутствующей сущности.
func classify(err error, notFound string) error {
	var appErr *apperr.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, entities.ErrUserNotFound), errors.Is(err, entities.ErrCardNotFound):
		return apperr.Wrap(apperr.KindNotFound, notFound, err)
	case errors.Is(err, entities.ErrInvalidID):
		return apperr.Wrap(apperr.KindBadRequest, apperr.MsgInvalidID, err)
	case errors.Is(err, entities.ErrInvalidData):
		return apperr.Wrap(apperr.KindBadRequest, apperr.MsgBadRequest, err)
	case errors.Is(err, entities.ErrEmailAlreadyExists):
		return apperr.Wrap(apperr.KindConflict, apperr.MsgEmailConflict, err)
	case errors.Is(err, entities.ErrNotCardOwner):
		return apperr.Wrap(apperr.KindForbidden, apperr.MsgForbiddenCard, err)
	default:
		return apperr.Internal(err)
	}
}
