// Package db подключает выбранное хранилище и собирает репозитории сервиса.
package db

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	cacheadapter "mesto/internal/api/adapters/cache"
	mongoadapter "mesto/internal/api/adapters/mongo"
	pgadapter "mesto/internal/api/adapters/postgres"
	"mesto/internal/api/config"
	"mesto/internal/api/ports/cache"
	"mesto/internal/api/ports/repositories"
	"mesto/pkg/db/mongo"
	"mesto/pkg/db/postgres"
	"mesto/pkg/logger"
	"mesto/pkg/resilience"
)

// Константы для логирования.
const (
	LogStorageReady   = "storage ready"
	LogCacheEnabled   = "profile cache enabled"
	LogCacheDisabled  = "profile cache unavailable, continuing without it"
	LogClosingStorage = "closing storage"

	ErrConnectMongo    = "failed to connect to mongo"
	ErrEnsureIndexes   = "failed to create mongo indexes"
	ErrMigrationsPath  = "failed to resolve migrations"
	ErrRunMigrations   = "failed to run migrations"
	ErrConnectPostgres = "failed to connect to postgres"
)

// Storage содержит репозитории и освобождает ресурсы хранилища.
type Storage struct {
	Users repositories.UserRepository
	Cards repositories.CardRepository

	closers []func(context.Context) error
}

// Open подключается к хранилищу cfg.Storage.Driver и, если включено, к кэшу профилей.
// Подключение повторяется с экспоненциальной задержкой.
func Open(ctx context.Context, cfg *config.Config) (*Storage, error) {
	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = cfg.Storage.ConnectAttempts
	retry.InitialBackoff = cfg.Storage.ConnectBackoff

	var (
		s   *Storage
		err error
	)
	switch cfg.Storage.Driver {
	case config.DriverMongo:
		s, err = openMongo(ctx, &cfg.Mongo, retry)
	case config.DriverPostgres:
		s, err = openPostgres(ctx, &cfg.Postgres, retry)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownStorageDriver, cfg.Storage.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Redis.Enabled {
		s.attachCache(ctx, &cfg.Redis, retry)
	}

	logger.Log(ctx).Info(ctx, LogStorageReady,
		zap.String("driver", cfg.Storage.Driver),
		zap.Bool("cache", cfg.Redis.Enabled))
	return s, nil
}

func openMongo(ctx context.Context, cfg *config.MongoConfig, retry resilience.RetryConfig) (*Storage, error) {
	var database *mongo.Database
	err := resilience.Retry(ctx, "mongo.connect", retry, func(ctx context.Context) error {
		var err error
		database, err = mongo.New(ctx, cfg.URL, cfg.Database, cfg.ConnectTimeout)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrConnectMongo, err)
	}

	if err := mongoadapter.EnsureUserIndexes(ctx, database.DB()); err != nil {
		_ = database.Close(ctx)
		return nil, fmt.Errorf("%s: %w", ErrEnsureIndexes, err)
	}

	repos := mongoadapter.NewRepositoryFactory(database.DB())
	return &Storage{
		Users:   repos.UserRepository(),
		Cards:   repos.CardRepository(),
		closers: []func(context.Context) error{database.Close},
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.PostgresConfig, retry resilience.RetryConfig) (*Storage, error) {
	source, err := postgres.MigrationsSource(cfg.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMigrationsPath, err)
	}

	err = resilience.Retry(ctx, "postgres.migrate", retry, func(ctx context.Context) error {
		return postgres.MigrateDSN(ctx, cfg.GetConnectionURL(), source)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrRunMigrations, err)
	}

	var database *postgres.Database
	err = resilience.Retry(ctx, "postgres.connect", retry, func(ctx context.Context) error {
		var err error
		database, err = postgres.New(ctx, cfg.GetDSN(), cfg.MinConn, cfg.MaxConn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrConnectPostgres, err)
	}

	closePool := func(ctx context.Context) error {
		database.Close(ctx)
		return nil
	}

	repos := pgadapter.NewRepositoryFactory(database.Pool())
	return &Storage{
		Users:   repos.UserRepository(),
		Cards:   repos.CardRepository(),
		closers: []func(context.Context) error{closePool},
	}, nil
}

// attachCache оборачивает репозиторий пользователей кэшем. Недоступный Redis не мешает запуску.
func (s *Storage) attachCache(ctx context.Context, cfg *config.RedisConfig, retry resilience.RetryConfig) {
	var redisCache cache.Cache
	err := resilience.Retry(ctx, "redis.connect", retry, func(ctx context.Context) error {
		var err error
		redisCache, err = cacheadapter.NewRedisCache(ctx, cfg)
		return err
	})
	if err != nil {
		logger.Log(ctx).Warn(ctx, LogCacheDisabled, zap.Error(err))
		return
	}

	breaker := resilience.NewBreaker("redis", resilience.BreakerConfig{
		FailThreshold: cfg.FailThreshold,
		OpenTimeout:   cfg.OpenTimeout,
	})
	s.Users = cacheadapter.NewUserRepository(s.Users, cacheadapter.NewGuardedCache(redisCache, breaker), cfg.DefaultTTL)
	s.closers = append([]func(context.Context) error{func(context.Context) error {
		return redisCache.Close()
	}}, s.closers...)

	logger.Log(ctx).Info(ctx, LogCacheEnabled, zap.String("address", cfg.GetAddress()))
}

// Close закрывает кэш, затем хранилище.
func (s *Storage) Close(ctx context.Context) error {
	logger.Log(ctx).Info(ctx, LogClosingStorage)

	var errs []error
	for _, closeFn := range s.closers {
		if err := closeFn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
