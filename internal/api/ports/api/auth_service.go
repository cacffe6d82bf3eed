// Package api определяет интерфейсы сценариев использования.
package api

import (
	"context"

	"mesto/internal/api/domain/entities"
)

// SignUpInput - данные регистрации. Пустые поля профиля заполняются значениями по умолчанию.
type SignUpInput struct {
	Name     string
	About    string
	Avatar   string
	Email    string
	Password string
}

// Session - результат успешного входа.
type Session struct {
	UserID string
	Token  string
}

// AuthUseCase - регистрация, вход и проверка токена.
type AuthUseCase interface {
	SignUp(ctx context.Context, in SignUpInput) (*entities.User, error)

	SignIn(ctx context.Context, email, password string) (*Session, error)

	// Authenticate возвращает идентификатор пользователя из токена или ошибку Unauthorized.
	Authenticate(ctx context.Context, token string) (string, error)
}
