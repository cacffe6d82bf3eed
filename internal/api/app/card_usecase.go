package app

import (
	"context"

	"go.uber.org/zap"

	"mesto/internal/api/domain/apperr"
	"mesto/internal/api/domain/entities"
	"mesto/internal/api/ports/api"
	"mesto/internal/api/ports/repositories"
	"mesto/pkg/logger"
)

const (
	msgCardCreated = "card created"
	msgCardDeleted = "card deleted"
)

// CardUseCaseImpl реализует интерфейс CardUseCase.
type CardUseCaseImpl struct {
	cardRepo repositories.CardRepository
}

// NewCardUseCase создает новый экземпляр сервиса карточек.
func NewCardUseCase(cardRepo repositories.CardRepository) api.CardUseCase {
	return &CardUseCaseImpl{cardRepo: cardRepo}
}

// List возвращает все карточки.
func (c *CardUseCaseImpl) List(ctx context.Context) ([]*entities.Card, error) {
	cards, err := c.cardRepo.FindAll(ctx)
	if err != nil {
		return nil, classify(err, apperr.MsgCardNotFound)
	}
	return cards, nil
}

// Create создает карточку от имени ownerID.
func (c *CardUseCaseImpl) Create(ctx context.Context, ownerID, name, link string) (*entities.Card, error) {
	card, err := c.cardRepo.Create(ctx, &entities.Card{Name: name, Link: link, Owner: ownerID})
	if err != nil {
		return nil, classify(err, apperr.MsgCardNotFound)
	}

	logger.Log(ctx).Info(ctx, msgCardCreated, zap.String("cardID", card.ID), zap.String("owner", ownerID))
	return card, nil
}

// Delete удаляет карточку, если callerID ее владелец.
func (c *CardUseCaseImpl) Delete(ctx context.Context, cardID, callerID string) error {
	if err := c.cardRepo.DeleteOwned(ctx, cardID, callerID); err != nil {
		return classify(err, apperr.MsgCardNotFound)
	}

	logger.Log(ctx).Info(ctx, msgCardDeleted, zap.String("cardID", cardID), zap.String("owner", callerID))
	return nil
}

// Like ставит лайк. Повторный лайк не меняет карточку.
func (c *CardUseCaseImpl) Like(ctx context.Context, cardID, userID string) (*entities.Card, error) {
	card, err := c.cardRepo.AddLike(ctx, cardID, userID)
	if err != nil {
		return nil, classify(err, apperr.MsgCardNotFound)
	}
	return card, nil
}

// Unlike снимает лайк. Снятие отсутствующего лайка не является ошибкой.
func (c *CardUseCaseImpl) Unlike(ctx context.Context, cardID, userID string) (*entities.Card, error) {
	card, err := c.cardRepo.RemoveLike(ctx, cardID, userID)
	if err != nil {
		return nil, classify(err, apperr.MsgCardNotFound)
	}
	return card, nil
}
