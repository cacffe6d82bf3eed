// Package entities содержит сущности домена и их ограничения.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidID          = errors.New("invalid object id")
	ErrInvalidData        = errors.New("invalid entity data")
)

// User представляет пользователя.
type User struct {
	ID           string
	Name         string
	About        string
	Avatar       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Validate проверяет поля профиля. Пароль здесь не проверяется: хранится только хэш.
func (u *User) Validate() error {
	switch {
	case !ValidUserName(u.Name),
		!ValidUserAbout(u.About),
		!ValidURL(u.Avatar),
		!ValidEmail(u.Email):
		return ErrInvalidData
	}
	return nil
}

// ApplyDefaults заполняет пустые поля профиля значениями по умолчанию.
func (u *User) ApplyDefaults() {
	if u.Name == "" {
		u.Name = DefaultUserName
	}
	if u.About == "" {
		u.About = DefaultUserAbout
	}
	if u.Avatar == "" {
		u.Avatar = DefaultUserAvatar
	}
}
