package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"mesto/internal/api/domain/entities"
	"mesto/internal/api/ports/cache"
	"mesto/internal/api/ports/repositories"
	"mesto/pkg/logger"
)

const userKeyPrefix = "user:"

type cachedUser struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	About     string    `json:"about"`
	Avatar    string    `json:"avatar"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserRepository кэширует профили поверх другого репозитория.
// Кэшируется только FindByID; хэш пароля в кэш не попадает.
type UserRepository struct {
	repositories.UserRepository

	cache cache.Cache
	ttl   time.Duration
}

// NewUserRepository оборачивает next кэшем. Нулевой ttl означает TTL кэша по умолчанию.
func NewUserRepository(next repositories.UserRepository, c cache.Cache, ttl time.Duration) repositories.UserRepository {
	return &UserRepository{UserRepository: next, cache: c, ttl: ttl}
}

// UserKey возвращает ключ кэша для профиля. Регистр шестнадцатеричного id не различается.
func UserKey(id string) string {
	return userKeyPrefix + strings.ToLower(id)
}

// FindByID читает профиль из кэша, а при промахе из хранилища.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "CachedUserRepository.FindByID"), zap.String("id", id))

	raw, err := r.cache.Get(ctx, UserKey(id))
	if err != nil {
		log.Warn(ctx, "cache read failed, falling back to storage", zap.Error(err))
	} else if raw != "" {
		var cu cachedUser
		decodeErr := json.Unmarshal([]byte(raw), &cu)
		if decodeErr == nil {
			log.Debug(ctx, "cache hit")
			return cu.toEntity(), nil
		}
		log.Warn(ctx, "corrupted cache entry", zap.Error(decodeErr))
	}

	user, err := r.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.fill(ctx, user)
	return user, nil
}

// UpdateProfile обновляет профиль и кэш.
func (r *UserRepository) UpdateProfile(ctx context.Context, id, name, about string) (*entities.User, error) {
	return r.refresh(ctx, id, func() (*entities.User, error) {
		return r.UserRepository.UpdateProfile(ctx, id, name, about)
	})
}

// UpdateAvatar обновляет аватар и кэш.
func (r *UserRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*entities.User, error) {
	return r.refresh(ctx, id, func() (*entities.User, error) {
		return r.UserRepository.UpdateAvatar(ctx, id, avatar)
	})
}

func (r *UserRepository) refresh(ctx context.Context, id string, update func() (*entities.User, error)) (*entities.User, error) {
	if err := r.cache.Delete(ctx, UserKey(id)); err != nil {
		logger.Log(ctx).Warn(ctx, "cache invalidation failed", zap.String("id", id), zap.Error(err))
	}

	user, err := update()
	if err != nil {
		return nil, err
	}

	r.store(ctx, user)
	return user, nil
}

// store перезаписывает запись после обновления профиля.
func (r *UserRepository) store(ctx context.Context, user *entities.User) {
	payload, ok := encode(ctx, user)
	if !ok {
		return
	}
	if err := r.cache.Set(ctx, UserKey(user.ID), payload, r.ttl); err != nil {
		logger.Log(ctx).Warn(ctx, "cache write failed", zap.String("id", user.ID), zap.Error(err))
	}
}

// fill кэширует прочитанный профиль через SETNX: запись, положенная обновлением, не затирается.
func (r *UserRepository) fill(ctx context.Context, user *entities.User) {
	payload, ok := encode(ctx, user)
	if !ok {
		return
	}
	stored, err := r.cache.SetNX(ctx, UserKey(user.ID), payload, r.ttl)
	switch {
	case err != nil:
		logger.Log(ctx).Warn(ctx, "cache write failed", zap.String("id", user.ID), zap.Error(err))
	case !stored:
		logger.Log(ctx).Debug(ctx, "cache entry already present", zap.String("id", user.ID))
	}
}

func encode(ctx context.Context, user *entities.User) (string, bool) {
	payload, err := json.Marshal(cachedUser{
		ID:        user.ID,
		Name:      user.Name,
		About:     user.About,
		Avatar:    user.Avatar,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
	if err != nil {
		logger.Log(ctx).Warn(ctx, "encoding cache entry", zap.Error(err))
		return "", false
	}
	return string(payload), true
}

func (cu *cachedUser) toEntity() *entities.User {
	return &entities.User{
		ID:        cu.ID,
		Name:      cu.Name,
		About:     cu.About,
		Avatar:    cu.Avatar,
		Email:     cu.Email,
		CreatedAt: cu.CreatedAt,
	}
}
