// Package repositories определяет интерфейсы хранилищ.
package repositories

import (
	"context"

	"mesto/internal/api/domain/entities"
)

// UserRepository определяет операции хранения пользователей.
// Реализации возвращают entities.ErrUserNotFound, entities.ErrInvalidID,
// entities.ErrEmailAlreadyExists и entities.ErrInvalidData.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindAll(ctx context.Context) ([]*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	// FindByEmail возвращает пользователя вместе с хэшем пароля.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	UpdateProfile(ctx context.Context, id, name, about string) (*entities.User, error)

	UpdateAvatar(ctx context.Context, id, avatar string) (*entities.User, error)
}
