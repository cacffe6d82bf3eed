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

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
}

// NewUserUseCase создает новый экземпляр сервиса пользователей.
func NewUserUseCase(userRepo repositories.UserRepository) api.UserUseCase {
	return &UserUseCaseImpl{userRepo: userRepo}
}

// List возвращает всех пользователей.
func (u *UserUseCaseImpl) List(ctx context.Context) ([]*entities.User, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		return nil, classify(err, apperr.MsgUserNotFound)
	}
	return users, nil
}

// Get возвращает профиль по идентификатору.
func (u *UserUseCaseImpl) Get(ctx context.Context, id string) (*entities.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Log(ctx).Debug(ctx, "user lookup failed", zap.String("id", id), zap.Error(err))
		return nil, classify(err, apperr.MsgUserNotFound)
	}
	return user, nil
}

// UpdateProfile меняет имя и описание.
func (u *UserUseCaseImpl) UpdateProfile(ctx context.Context, id, name, about string) (*entities.User, error) {
	user, err := u.userRepo.UpdateProfile(ctx, id, name, about)
	if err != nil {
		return nil, classify(err, apperr.MsgUserNotFound)
	}
	return user, nil
}

// UpdateAvatar меняет ссылку на аватар.
func (u *UserUseCaseImpl) UpdateAvatar(ctx context.Context, id, avatar string) (*entities.User, error) {
	user, err := u.userRepo.UpdateAvatar(ctx, id, avatar)
	if err != nil {
		return nil, classify(err, apperr.MsgUserNotFound)
	}
	return user, nil
}
