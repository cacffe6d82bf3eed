package api

import (
	"context"

	"mesto/internal/api/domain/entities"
)

// UserUseCase - операции с профилями.
type UserUseCase interface {
	List(ctx context.Context) ([]*entities.User, error)

	Get(ctx context.Context, id string) (*entities.User, error)

	UpdateProfile(ctx context.Context, id, name, about string) (*entities.User, error)

	UpdateAvatar(ctx context.Context, id, avatar string) (*entities.User, error)
}
