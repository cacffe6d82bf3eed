package api

import (
	"context"

	"mesto/internal/api/domain/entities"
)

// CardUseCase - операции с карточками.
type CardUseCase interface {
	List(ctx context.Context) ([]*entities.Card, error)

	Create(ctx context.Context, ownerID, name, link string) (*entities.Card, error)

	Delete(ctx context.Context, cardID, callerID string) error

	Like(ctx context.Context, cardID, userID string) (*entities.Card, error)

	Unlike(ctx context.Context, cardID, userID string) (*entities.Card, error)
}
