package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"mesto/internal/api/domain/entities"
	"mesto/internal/api/ports/repositories"
	"mesto/pkg/logger"
)

const (
	insertUserSQL = `INSERT INTO users (id, name, about, avatar, email, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`

	selectUsersSQL = `SELECT id, name, about, avatar, email, created_at FROM users ORDER BY created_at`

	selectUserSQL = `SELECT id, name, about, avatar, email, created_at FROM users WHERE id = $1`

	selectUserByEmailSQL = `SELECT id, name, about, avatar, email, password_hash, created_at
		FROM users WHERE email = $1`

	updateProfileSQL = `UPDATE users SET name = $2, about = $3 WHERE id = $1
		RETURNING id, name, about, avatar, email, created_at`

	updateAvatarSQL = `UPDATE users SET avatar = $2 WHERE id = $1
		RETURNING id, name, about, avatar, email, created_at`
)

// UserRepository реализует repositories.UserRepository для PostgreSQL.
type UserRepository struct {
	pool Pool
}

// NewUserRepository создает репозиторий пользователей.
func NewUserRepository(pool Pool) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// Create сохраняет нового пользователя.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.Create"))

	if err := user.Validate(); err != nil {
		return nil, err
	}

	created := *user
	created.ID = newID()
	created.PasswordHash = ""

	err := r.pool.QueryRow(ctx, insertUserSQL,
		created.ID, user.Name, user.About, user.Avatar, user.Email, user.PasswordHash,
	).Scan(&created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "duplicate email", zap.String("email", user.Email))
			return nil, entities.ErrEmailAlreadyExists
		}
		log.Error(ctx, "failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &created, nil
}

// FindAll возвращает всех пользователей.
func (r *UserRepository) FindAll(ctx context.Context) ([]*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.FindAll"))

	rows, err := r.pool.Query(ctx, selectUsersSQL)
	if err != nil {
		log.Error(ctx, "failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.CreatedAt); err != nil {
			log.Error(ctx, "failed to scan user", zap.Error(err))
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return users, nil
}

// FindByID находит пользователя по идентификатору.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	return r.scanOne(ctx, "FindByID", selectUserSQL, id)
}

// FindByEmail находит пользователя по email вместе с хэшем пароля.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.FindByEmail"))

	var u entities.User
	err := r.pool.QueryRow(ctx, selectUserByEmailSQL, email).
		Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("email", email))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "failed to get user by email", zap.Error(err))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &u, nil
}

// UpdateProfile обновляет имя и описание.
func (r *UserRepository) UpdateProfile(ctx context.Context, id, name, about string) (*entities.User, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	if !entities.ValidUserName(name) || !entities.ValidUserAbout(about) {
		return nil, entities.ErrInvalidData
	}
	return r.scanOne(ctx, "UpdateProfile", updateProfileSQL, id, name, about)
}

// UpdateAvatar обновляет ссылку на аватар.
func (r *UserRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*entities.User, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	if !entities.ValidURL(avatar) {
		return nil, entities.ErrInvalidData
	}
	return r.scanOne(ctx, "UpdateAvatar", updateAvatarSQL, id, avatar)
}

func (r *UserRepository) scanOne(ctx context.Context, method, sql string, args ...any) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository."+method))

	var u entities.User
	err := r.pool.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.Any("id", args[0]))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "failed to query user", zap.Error(err))
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}
