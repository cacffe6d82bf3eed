package repositories

import (
	"context"

	"mesto/internal/api/domain/entities"
)

// CardRepository определяет операции хранения карточек.
// Реализации возвращают entities.ErrCardNotFound, entities.ErrNotCardOwner,
// entities.ErrInvalidID и entities.ErrInvalidData.
type CardRepository interface {
	Create(ctx context.Context, card *entities.Card) (*entities.Card, error)

	FindAll(ctx context.Context) ([]*entities.Card, error)

	// DeleteOwned атомарно удаляет карточку, только если ее владелец ownerID.
	DeleteOwned(ctx context.Context, id, ownerID string) error

	// AddLike добавляет userID в множество лайков. Повторный лайк ничего не меняет.
	AddLike(ctx context.Context, id, userID string) (*entities.Card, error)

	// RemoveLike убирает userID из множества лайков. Отсутствующий лайк ничего не меняет.
	RemoveLike(ctx context.Context, id, userID string) (*entities.Card, error)
}
