package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxRequestIDLength - предельная длина принимаемого извне идентификатора запроса.
const MaxRequestIDLength = 64

type requestIDKey struct{}

// NewRequestIDContext кладет идентификатор запроса в контекст. Пустой или
// недопустимый идентификатор заменяется новым UUID.
func NewRequestIDContext(ctx context.Context, requestID string) context.Context {
	if !validRequestID(requestID) {
		requestID = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestID извлекает идентификатор запроса из контекста.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// WithRequestID возвращает logger с полем request_id, если оно есть в контексте.
func (l *Logger) WithRequestID(ctx context.Context) *Logger {
	id, ok := GetRequestID(ctx)
	if !ok {
		return l
	}
	return l.With(zap.String(RequestID, id))
}

// validRequestID допускает только печатные ASCII символы без пробелов.
func validRequestID(id string) bool {
	if id == "" || len(id) > MaxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
