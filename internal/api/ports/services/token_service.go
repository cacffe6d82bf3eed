// Package services определяет интерфейсы сервисов токенов и паролей.
package services

import (
	"context"
	"time"
)

// TokenService выпускает и проверяет токены идентичности.
type TokenService interface {
	// Issue подписывает токен с единственным утверждением _id.
	Issue(ctx context.Context, userID string) (string, time.Time, error)

	// Verify проверяет подпись и срок действия и возвращает _id.
	Verify(ctx context.Context, token string) (string, error)
}
